package rental

import (
	"time"

	"github.com/google/uuid"
)

// Rental is the booking aggregate. The owner id is denormalized from
// the listing so transition authorization never needs a join.
type Rental struct {
	id              uuid.UUID
	instrumentID    uuid.UUID
	renterID        uuid.UUID
	ownerID         uuid.UUID
	period          Period
	dates           DateRange
	priceSnapshot   PriceSnapshot
	totalPriceCents int64
	status          Status
	rejectionReason *string
	pickedUpAt      *time.Time
	returnedAt      *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRental(
	instrumentID, renterID, ownerID uuid.UUID,
	period Period,
	dates DateRange,
	snap PriceSnapshot,
) (*Rental, error) {
	if !period.IsValid() {
		return nil, ErrInvalidPeriod
	}

	total, err := CalculateTotalCents(period, snap, dates.Days())
	if err != nil {
		return nil, err
	}

	return &Rental{
		id:              uuid.New(),
		instrumentID:    instrumentID,
		renterID:        renterID,
		ownerID:         ownerID,
		period:          period,
		dates:           dates,
		priceSnapshot:   snap,
		totalPriceCents: total,
		status:          StatusPending,
	}, nil
}

func ReconstructRental(
	id, instrumentID, renterID, ownerID uuid.UUID,
	period Period,
	dates DateRange,
	snap PriceSnapshot,
	totalPriceCents int64,
	status Status,
	rejectionReason *string,
	pickedUpAt, returnedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Rental {
	return &Rental{
		id:              id,
		instrumentID:    instrumentID,
		renterID:        renterID,
		ownerID:         ownerID,
		period:          period,
		dates:           dates,
		priceSnapshot:   snap,
		totalPriceCents: totalPriceCents,
		status:          status,
		rejectionReason: rejectionReason,
		pickedUpAt:      pickedUpAt,
		returnedAt:      returnedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Rental) ID() uuid.UUID                { return r.id }
func (r *Rental) InstrumentID() uuid.UUID      { return r.instrumentID }
func (r *Rental) RenterID() uuid.UUID          { return r.renterID }
func (r *Rental) OwnerID() uuid.UUID           { return r.ownerID }
func (r *Rental) Period() Period               { return r.period }
func (r *Rental) Dates() DateRange             { return r.dates }
func (r *Rental) PriceSnapshot() PriceSnapshot { return r.priceSnapshot }
func (r *Rental) TotalPriceCents() int64       { return r.totalPriceCents }
func (r *Rental) Status() Status               { return r.status }
func (r *Rental) RejectionReason() *string     { return r.rejectionReason }
func (r *Rental) PickedUpAt() *time.Time       { return r.pickedUpAt }
func (r *Rental) ReturnedAt() *time.Time       { return r.returnedAt }
func (r *Rental) CreatedAt() time.Time         { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time         { return r.updatedAt }

// IsParty reports whether the user is the renter or the owner.
func (r *Rental) IsParty(userID uuid.UUID) bool {
	return r.renterID == userID || r.ownerID == userID
}
