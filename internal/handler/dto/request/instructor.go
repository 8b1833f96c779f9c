package request

type SubmitApplicationRequest struct {
	Instrument      string   `json:"instrument" binding:"required"`
	Bio             string   `json:"bio" binding:"required"`
	ExperienceYears int      `json:"experience_years" binding:"gte=0"`
	HourlyRateCents int64    `json:"hourly_rate_cents" binding:"required,gt=0"`
	Genres          []string `json:"genres"`
	Certifications  string   `json:"certifications"`
}
