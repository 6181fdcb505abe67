package domain

import "time"

// Patient represents a registered patient
// Identity is the phone number; there is no password credential
type Patient struct {
	ID             string
	PhoneNumber    string
	Name           *string
	Language       string
	ReferralSource *string
	WhatsappOptIn  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
