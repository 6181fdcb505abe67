package domain

import "time"

// Doctor represents a practitioner offering consultations
// A doctor owns exactly one AvailabilityTemplate, replaced wholesale on
// update (no merge semantics)
type Doctor struct {
	ID              string
	FullName        string
	PhoneNumber     string
	Email           *string
	Location        string
	Specialty       string
	ExperienceYears int
	LanguagesSpoken []string
	Gender          *string
	Bio             *string
	Focus           *string

	ConsultationMode string // chat | voice | both
	IsActive         bool

	// Availability is nil when the doctor has never set a template;
	// distinct from a template with no open days
	Availability *AvailabilityTemplate

	MDCNLicenseNumber  *string
	MDCNCertificateURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OffersMode returns true if the doctor supports the consultation mode
func (d *Doctor) OffersMode(mode string) bool {
	return d.ConsultationMode == ModeBoth || d.ConsultationMode == mode
}

// DoctorsFilter filter for the doctor directory listing
type DoctorsFilter struct {
	Specialty     *string // exact match, set for specialist consultation types
	Language      *string // member of languages_spoken
	Mode          *string // chat | voice | both
	Gender        *string
	MinExperience *int
	Location      *string // substring match, case-insensitive
}
