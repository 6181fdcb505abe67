package domain

// DateFormat wire format for calendar dates (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// PaymentPending payment status recorded at booking; settlement is external
const PaymentPending = "pending"

// User roles carried in access tokens
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// Consultation modes a doctor can offer
const (
	ModeChat  = "chat"
	ModeVoice = "voice"
	ModeBoth  = "both"
)

// Business validation constants
const (
	MaxSymptomsLength = 2000
	MaxBioLength      = 2000
	DefaultLanguage   = "English"
	DefaultTimezone   = "UTC"
)

// ValidStatuses the six-member consultation status enumeration
// Any transition request naming a status outside this list is rejected
// before any mutation
var ValidStatuses = []ConsultationStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// TerminalStatuses statuses that admit no outgoing transition
var TerminalStatuses = []ConsultationStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
