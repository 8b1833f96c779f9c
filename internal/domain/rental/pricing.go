package rental

import "errors"

var ErrNegativePrice = errors.New("price cannot be negative")

// PriceSnapshot freezes the listing's tier prices at rental creation so
// later listing edits never change what the renter agreed to pay.
type PriceSnapshot struct {
	DailyCents   int64
	WeeklyCents  *int64
	MonthlyCents *int64
}

// CalculateTotalCents prices the window against the snapshot.
// Daily charges per day; weekly and monthly charge per started block,
// falling back to 7 or 30 daily rates when the tier has no price.
func CalculateTotalCents(period Period, snap PriceSnapshot, days int) (int64, error) {
	if snap.DailyCents < 0 {
		return 0, ErrNegativePrice
	}
	if days < 1 {
		days = 1
	}

	switch period {
	case PeriodDaily:
		return snap.DailyCents * int64(days), nil
	case PeriodWeekly:
		rate := snap.DailyCents * 7
		if snap.WeeklyCents != nil {
			rate = *snap.WeeklyCents
		}
		return rate * int64(ceilDiv(days, 7)), nil
	case PeriodMonthly:
		rate := snap.DailyCents * 30
		if snap.MonthlyCents != nil {
			rate = *snap.MonthlyCents
		}
		return rate * int64(ceilDiv(days, 30)), nil
	default:
		return 0, ErrInvalidPeriod
	}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
