package models

// Request модели

// RegisterPatientRequest запрос на регистрацию пациента
type RegisterPatientRequest struct {
	PhoneNumber    string  `json:"phoneNumber"`
	Name           *string `json:"name,omitempty"`
	Language       *string `json:"language,omitempty"`
	ReferralSource *string `json:"referralSource,omitempty"`
	WhatsappOptIn  bool    `json:"whatsappOptIn,omitempty"`
}

// RegisterDoctorRequest запрос на регистрацию доктора
type RegisterDoctorRequest struct {
	PhoneNumber        string   `json:"phoneNumber"`
	FullName           string   `json:"fullName"`
	Email              *string  `json:"email,omitempty"`
	Location           string   `json:"location"`
	Specialty          string   `json:"specialty"`
	ExperienceYears    int      `json:"experienceYears"`
	LanguagesSpoken    []string `json:"languagesSpoken"`
	Gender             *string  `json:"gender,omitempty"`
	Bio                *string  `json:"bio,omitempty"`
	Focus              *string  `json:"focus,omitempty"`
	ConsultationMode   string   `json:"consultationMode"`
	MDCNLicenseNumber  *string  `json:"mdcnLicenseNumber,omitempty"`
	MDCNCertificateURL *string  `json:"mdcnCertificateUrl,omitempty"`
}

// LoginRequest запрос на вход по номеру телефона
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// Response модели

// AuthResponse ответ с парой токенов
type AuthResponse struct {
	UserID       string `json:"userId"`
	Role         string `json:"role"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"` // Время жизни access-токена в секундах
}
