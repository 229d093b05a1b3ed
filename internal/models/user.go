package models

// Role of a registered account.
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Pet belongs to a patient user.
type Pet struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Species        string   `json:"species"`
	Breed          string   `json:"breed,omitempty"`
	Age            int      `json:"age"`
	Weight         float64  `json:"weight,omitempty"`
	MedicalHistory []string `json:"medicalHistory,omitempty"`
	Allergies      []string `json:"allergies,omitempty"`
}

// User is a registered account, doctor or patient. The password is kept in
// plaintext: authentication is an exact string comparison against the
// registry and nothing here pretends to be secure.
//
// JSON keys are camelCase so the persisted snapshot keeps the shape the
// mobile client already wrote to disk.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar,omitempty"`

	// Doctor fields
	PetSpecialization []string `json:"petSpecialization,omitempty"`
	MedicalSpecialty  []string `json:"medicalSpecialty,omitempty"`
	Languages         []string `json:"languages,omitempty"`
	LicenseNumber     string   `json:"licenseNumber,omitempty"`
	ClinicName        string   `json:"clinicName,omitempty"`
	ClinicAddress     string   `json:"clinicAddress,omitempty"`
	Experience        int      `json:"experience,omitempty"`
	ConsultationFee   float64  `json:"consultationFee,omitempty"`

	// Patient fields
	DateOfBirth      string   `json:"dateOfBirth,omitempty"`
	Gender           string   `json:"gender,omitempty"`
	EmergencyContact string   `json:"emergencyContact,omitempty"`
	MedicalHistory   []string `json:"medicalHistory,omitempty"`
	Pets             []Pet    `json:"pets,omitempty"`
}
