package response

import (
	"time"

	"tarumbeta-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalResponse struct {
	ID              uuid.UUID  `json:"id"`
	InstrumentID    uuid.UUID  `json:"instrument_id"`
	InstrumentName  string     `json:"instrument_name"`
	RenterID        uuid.UUID  `json:"renter_id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	Period          string     `json:"period"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	TotalPriceCents int64      `json:"total_price_cents"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	PickedUpAt      *time.Time `json:"picked_up_at,omitempty"`
	ReturnedAt      *time.Time `json:"returned_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CreateRentalResponse struct {
	RentalID        uuid.UUID `json:"rental_id"`
	TotalPriceCents int64     `json:"total_price_cents"`
}

type OwnerEarningsResponse struct {
	TotalEarningsCents int64 `json:"total_earnings_cents"`
}

func FromRentalView(v *queries.RentalView) *RentalResponse {
	return &RentalResponse{
		ID:              v.ID,
		InstrumentID:    v.InstrumentID,
		InstrumentName:  v.InstrumentName,
		RenterID:        v.RenterID,
		OwnerID:         v.OwnerID,
		Period:          v.Period,
		StartDate:       v.StartDate,
		EndDate:         v.EndDate,
		TotalPriceCents: v.TotalPriceCents,
		Status:          v.Status,
		RejectionReason: v.RejectionReason,
		PickedUpAt:      v.PickedUpAt,
		ReturnedAt:      v.ReturnedAt,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromRentalViews(views []*queries.RentalView) []*RentalResponse {
	responses := make([]*RentalResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromRentalView(v))
	}
	return responses
}
