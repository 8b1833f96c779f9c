package instrument

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("listing name must not be empty")
	ErrEmptyType        = errors.New("instrument type must not be empty")
	ErrInvalidCondition = errors.New("invalid instrument condition")
	ErrInvalidPrice     = errors.New("daily price must be positive")
	ErrInvalidTierPrice = errors.New("tier price must be positive when set")
)

// Listing is an instrument offered for rent. New listings are created
// unavailable and become rentable once an admin approves them.
type Listing struct {
	id                uuid.UUID
	ownerID           uuid.UUID
	name              string
	instrumentType    string
	category          string
	condition         Condition
	description       string
	location          string
	dailyPriceCents   int64
	weeklyPriceCents  *int64
	monthlyPriceCents *int64
	isAvailable       bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewListing(
	ownerID uuid.UUID,
	name, instrumentType, category string,
	condition Condition,
	description, location string,
	dailyPriceCents int64,
	weeklyPriceCents, monthlyPriceCents *int64,
) (*Listing, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(instrumentType) == "" {
		return nil, ErrEmptyType
	}
	if !condition.IsValid() {
		return nil, ErrInvalidCondition
	}
	if dailyPriceCents <= 0 {
		return nil, ErrInvalidPrice
	}
	if weeklyPriceCents != nil && *weeklyPriceCents <= 0 {
		return nil, ErrInvalidTierPrice
	}
	if monthlyPriceCents != nil && *monthlyPriceCents <= 0 {
		return nil, ErrInvalidTierPrice
	}

	return &Listing{
		id:                uuid.New(),
		ownerID:           ownerID,
		name:              name,
		instrumentType:    instrumentType,
		category:          category,
		condition:         condition,
		description:       description,
		location:          location,
		dailyPriceCents:   dailyPriceCents,
		weeklyPriceCents:  weeklyPriceCents,
		monthlyPriceCents: monthlyPriceCents,
		isAvailable:       false,
	}, nil
}

func ReconstructListing(
	id, ownerID uuid.UUID,
	name, instrumentType, category string,
	condition Condition,
	description, location string,
	dailyPriceCents int64,
	weeklyPriceCents, monthlyPriceCents *int64,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:                id,
		ownerID:           ownerID,
		name:              name,
		instrumentType:    instrumentType,
		category:          category,
		condition:         condition,
		description:       description,
		location:          location,
		dailyPriceCents:   dailyPriceCents,
		weeklyPriceCents:  weeklyPriceCents,
		monthlyPriceCents: monthlyPriceCents,
		isAvailable:       isAvailable,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (l *Listing) ID() uuid.UUID              { return l.id }
func (l *Listing) OwnerID() uuid.UUID         { return l.ownerID }
func (l *Listing) Name() string               { return l.name }
func (l *Listing) InstrumentType() string     { return l.instrumentType }
func (l *Listing) Category() string           { return l.category }
func (l *Listing) Condition() Condition       { return l.condition }
func (l *Listing) Description() string        { return l.description }
func (l *Listing) Location() string           { return l.location }
func (l *Listing) DailyPriceCents() int64     { return l.dailyPriceCents }
func (l *Listing) WeeklyPriceCents() *int64   { return l.weeklyPriceCents }
func (l *Listing) MonthlyPriceCents() *int64  { return l.monthlyPriceCents }
func (l *Listing) IsAvailable() bool          { return l.isAvailable }
func (l *Listing) CreatedAt() time.Time       { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time       { return l.updatedAt }
