package instrument

type Condition string

const (
	ConditionNew       Condition = "new"
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
)

func (c Condition) String() string {
	return string(c)
}

func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionExcellent, ConditionGood, ConditionFair:
		return true
	default:
		return false
	}
}

func NewCondition(s string) (Condition, error) {
	cond := Condition(s)
	if !cond.IsValid() {
		return "", ErrInvalidCondition
	}
	return cond, nil
}
