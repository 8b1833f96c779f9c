package response

import (
	"time"

	"tarumbeta-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingResponse struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	Name              string    `json:"name"`
	InstrumentType    string    `json:"instrument_type"`
	Category          string    `json:"category"`
	Condition         string    `json:"condition"`
	Description       string    `json:"description"`
	Location          string    `json:"location"`
	DailyPriceCents   int64     `json:"daily_price_cents"`
	WeeklyPriceCents  *int64    `json:"weekly_price_cents,omitempty"`
	MonthlyPriceCents *int64    `json:"monthly_price_cents,omitempty"`
	IsAvailable       bool      `json:"is_available"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CreateListingResponse struct {
	ListingID uuid.UUID `json:"listing_id"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	return &ListingResponse{
		ID:                v.ID,
		OwnerID:           v.OwnerID,
		Name:              v.Name,
		InstrumentType:    v.InstrumentType,
		Category:          v.Category,
		Condition:         v.Condition,
		Description:       v.Description,
		Location:          v.Location,
		DailyPriceCents:   v.DailyPriceCents,
		WeeklyPriceCents:  v.WeeklyPriceCents,
		MonthlyPriceCents: v.MonthlyPriceCents,
		IsAvailable:       v.IsAvailable,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromListingViews(views []*queries.ListingView) []*ListingResponse {
	responses := make([]*ListingResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromListingView(v))
	}
	return responses
}
