package response

import (
	"tarumbeta-server/internal/usecase/queries"
)

type AdminStatsResponse struct {
	TotalUsers        int64 `json:"total_users"`
	TotalInstructors  int64 `json:"total_instructors"`
	TotalListings     int64 `json:"total_listings"`
	TotalRentals      int64 `json:"total_rentals"`
	ActiveRentals     int64 `json:"active_rentals"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
}

func FromAdminStatsView(v *queries.AdminStatsView) *AdminStatsResponse {
	return &AdminStatsResponse{
		TotalUsers:        v.TotalUsers,
		TotalInstructors:  v.TotalInstructors,
		TotalListings:     v.TotalListings,
		TotalRentals:      v.TotalRentals,
		ActiveRentals:     v.ActiveRentals,
		TotalRevenueCents: v.TotalRevenueCents,
	}
}
