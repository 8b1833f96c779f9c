//go:build unit || e2e

package builder

import (
	dominstructor "tarumbeta-server/internal/domain/instructor"

	"github.com/google/uuid"
)

type ApplicationBuilder struct {
	UserID          uuid.UUID
	Instrument      string
	Bio             string
	ExperienceYears int
	HourlyRateCents int64
	Genres          []string
	Certifications  string
}

func NewApplicationBuilder() *ApplicationBuilder {
	return &ApplicationBuilder{
		UserID:          uuid.New(),
		Instrument:      "piano",
		Bio:             "Conservatory-trained pianist, ten years of teaching.",
		ExperienceYears: 10,
		HourlyRateCents: 4500,
		Genres:          []string{"classical", "jazz"},
		Certifications:  "ABRSM Grade 8",
	}
}

func (a *ApplicationBuilder) With(mutate func(*ApplicationBuilder)) *ApplicationBuilder {
	mutate(a)
	return a
}

func (a *ApplicationBuilder) BuildDomain() (*dominstructor.Application, error) {
	return dominstructor.NewApplication(
		a.UserID,
		a.Instrument, a.Bio,
		a.ExperienceYears,
		a.HourlyRateCents,
		a.Genres,
		a.Certifications,
	)
}

// Fluent builder methods
func (a *ApplicationBuilder) WithInstrument(instrument string) *ApplicationBuilder {
	a.Instrument = instrument
	return a
}

func (a *ApplicationBuilder) WithExperienceYears(years int) *ApplicationBuilder {
	a.ExperienceYears = years
	return a
}

func (a *ApplicationBuilder) WithHourlyRate(cents int64) *ApplicationBuilder {
	a.HourlyRateCents = cents
	return a
}
