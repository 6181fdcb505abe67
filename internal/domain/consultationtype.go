package domain

import "time"

// ConsultationType a bookable consultation product with its fee split
type ConsultationType struct {
	ID            string
	Name          string
	Fee           float64
	DoctorEarning float64
	PlatformFee   float64
	IsSpecialist  bool
	IsFollowUp    bool
	Description   string

	CreatedAt time.Time
}
