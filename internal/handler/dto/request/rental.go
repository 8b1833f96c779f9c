package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	InstrumentID uuid.UUID `json:"instrument_id" binding:"required"`
	Period       string    `json:"period" binding:"required,oneof=daily weekly monthly"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
}

type RejectRentalRequest struct {
	Reason string `json:"reason" binding:"required"`
}
