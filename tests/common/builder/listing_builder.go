//go:build unit || e2e

package builder

import (
	dominstrument "tarumbeta-server/internal/domain/instrument"
	"tarumbeta-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	OwnerID           uuid.UUID
	Name              string
	InstrumentType    string
	Category          string
	Condition         dominstrument.Condition
	Description       string
	Location          string
	DailyPriceCents   int64
	WeeklyPriceCents  *int64
	MonthlyPriceCents *int64
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		OwnerID:         uuid.New(),
		Name:            "Yamaha FG800 Acoustic Guitar",
		InstrumentType:  "guitar",
		Category:        "string",
		Condition:       dominstrument.ConditionExcellent,
		Description:     "Well maintained dreadnought, new strings.",
		Location:        "Nairobi",
		DailyPriceCents: 500,
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

func (l *ListingBuilder) BuildDomain() (*dominstrument.Listing, error) {
	return dominstrument.NewListing(
		l.OwnerID,
		l.Name, l.InstrumentType, l.Category,
		l.Condition,
		l.Description, l.Location,
		l.DailyPriceCents,
		l.WeeklyPriceCents, l.MonthlyPriceCents,
	)
}

func (l *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:              uuid.New(),
		OwnerID:         l.OwnerID,
		Name:            l.Name,
		InstrumentType:  l.InstrumentType,
		Category:        l.Category,
		Condition:       l.Condition.String(),
		Description:     l.Description,
		Location:        l.Location,
		DailyPriceCents: l.DailyPriceCents,
		IsAvailable:     true,
	}
}

// Fluent builder methods
func (l *ListingBuilder) WithName(name string) *ListingBuilder {
	l.Name = name
	return l
}

func (l *ListingBuilder) WithInstrumentType(t string) *ListingBuilder {
	l.InstrumentType = t
	return l
}

func (l *ListingBuilder) WithCondition(c dominstrument.Condition) *ListingBuilder {
	l.Condition = c
	return l
}

func (l *ListingBuilder) WithDailyPrice(cents int64) *ListingBuilder {
	l.DailyPriceCents = cents
	return l
}

func (l *ListingBuilder) WithWeeklyPrice(cents int64) *ListingBuilder {
	l.WeeklyPriceCents = &cents
	return l
}

func (l *ListingBuilder) WithMonthlyPrice(cents int64) *ListingBuilder {
	l.MonthlyPriceCents = &cents
	return l
}
