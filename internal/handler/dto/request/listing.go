package request

type CreateListingRequest struct {
	Name              string `json:"name" binding:"required"`
	InstrumentType    string `json:"instrument_type" binding:"required"`
	Category          string `json:"category" binding:"required"`
	Condition         string `json:"condition" binding:"required,oneof=new excellent good fair"`
	Description       string `json:"description"`
	Location          string `json:"location"`
	DailyPriceCents   int64  `json:"daily_price_cents" binding:"required,gt=0"`
	WeeklyPriceCents  *int64 `json:"weekly_price_cents,omitempty"`
	MonthlyPriceCents *int64 `json:"monthly_price_cents,omitempty"`
}
