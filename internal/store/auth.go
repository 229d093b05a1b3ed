package store

import (
	"github.com/vetbook/vet-scheduler/internal/clock"
	"github.com/vetbook/vet-scheduler/internal/httperr"
	"github.com/vetbook/vet-scheduler/internal/models"
	"github.com/vetbook/vet-scheduler/internal/validators"
)

// ======================================================
// REGISTRY + SESSION
// ======================================================

// EmailRegistered reports whether any registered user already has this email,
// case-insensitively. The signup path checks this before calling SignUp and
// surfaces the conflict; the registry itself stays permissive.
func (s *Store) EmailRegistered(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findByEmail(email) != nil
}

func (s *Store) findByEmail(email string) *models.User {
	norm := validators.NormalizeEmail(email)
	for i := range s.auth.RegisteredUsers {
		if validators.NormalizeEmail(s.auth.RegisteredUsers[i].Email) == norm {
			return &s.auth.RegisteredUsers[i]
		}
	}
	return nil
}

// SignUp inserts the user if the email is free (insert-if-absent, first
// writer wins) and establishes the session. The assigned ID and token are
// returned on the user copy.
func (s *Store) SignUp(user models.User) (models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findByEmail(user.Email); existing == nil {
		if user.ID == "" {
			user.ID = clock.NewID(s.now())
		}
		s.auth.RegisteredUsers = append(s.auth.RegisteredUsers, user)
	} else {
		// Permissive no-op on duplicate; the caller is expected to have
		// pre-checked. The existing record wins.
		user = *existing
	}

	token := "token-" + user.ID
	u := user
	s.auth.User = &u
	s.auth.Token = token
	s.auth.IsAuthenticated = true
	s.auth.Loading = false
	s.auth.Error = ""

	s.persist()
	return user, token, nil
}

// Authenticate scans the registry for a lowercased-email plus exact password
// match. Failure is one generic error with no hint of which part was wrong.
func (s *Store) Authenticate(email, password string) (models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findByEmail(email)
	if u == nil || u.Password != password {
		s.auth.Error = "Invalid email or password"
		s.auth.Loading = false
		s.persist()
		return models.User{}, "", httperr.ErrBusiness("invalid_credentials")
	}

	user := *u
	token := "token-" + user.ID

	s.auth.User = &user
	s.auth.Token = token
	s.auth.IsAuthenticated = true
	s.auth.Loading = false
	s.auth.Error = ""

	s.persist()
	return user, token, nil
}

// Logout clears the session. The registry and doctor-owned slots are
// intentionally retained so re-authentication restores prior state.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auth.User = nil
	s.auth.Token = ""
	s.auth.IsAuthenticated = false
	s.auth.Loading = false
	s.auth.Error = ""
	s.auth.AvailableSlots = []models.TimeSlot{}

	s.persist()
}

// ProfileUpdate carries the partial fields a profile edit may change. Nil
// means "leave as is".
type ProfileUpdate struct {
	Name   *string
	Phone  *string
	Avatar *string

	PetSpecialization *[]string
	MedicalSpecialty  *[]string
	Languages         *[]string
	LicenseNumber     *string
	ClinicName        *string
	ClinicAddress     *string
	Experience        *int
	ConsultationFee   *float64

	DateOfBirth      *string
	Gender           *string
	EmergencyContact *string
	MedicalHistory   *[]string
	Pets             *[]models.Pet
}

// UpdateProfile merges the patch into the registry record of the current
// session user, then refreshes the session from it. The registry is the
// source of truth; the session is a view.
func (s *Store) UpdateProfile(patch ProfileUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auth.User == nil {
		return models.User{}, httperr.ErrBusiness("not_authenticated")
	}

	var target *models.User
	for i := range s.auth.RegisteredUsers {
		if s.auth.RegisteredUsers[i].ID == s.auth.User.ID {
			target = &s.auth.RegisteredUsers[i]
			break
		}
	}
	if target == nil {
		return models.User{}, httperr.ErrBusiness("user_not_found")
	}

	applyProfileUpdate(target, patch)

	refreshed := *target
	s.auth.User = &refreshed

	s.persist()
	return refreshed, nil
}

func applyProfileUpdate(u *models.User, p ProfileUpdate) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.PetSpecialization != nil {
		u.PetSpecialization = *p.PetSpecialization
	}
	if p.MedicalSpecialty != nil {
		u.MedicalSpecialty = *p.MedicalSpecialty
	}
	if p.Languages != nil {
		u.Languages = *p.Languages
	}
	if p.LicenseNumber != nil {
		u.LicenseNumber = *p.LicenseNumber
	}
	if p.ClinicName != nil {
		u.ClinicName = *p.ClinicName
	}
	if p.ClinicAddress != nil {
		u.ClinicAddress = *p.ClinicAddress
	}
	if p.Experience != nil {
		u.Experience = *p.Experience
	}
	if p.ConsultationFee != nil {
		u.ConsultationFee = *p.ConsultationFee
	}
	if p.DateOfBirth != nil {
		u.DateOfBirth = *p.DateOfBirth
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.EmergencyContact != nil {
		u.EmergencyContact = *p.EmergencyContact
	}
	if p.MedicalHistory != nil {
		u.MedicalHistory = *p.MedicalHistory
	}
	if p.Pets != nil {
		u.Pets = *p.Pets
	}
}

// ======================================================
// READS
// ======================================================

func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auth.User == nil {
		return models.User{}, false
	}
	return *s.auth.User, true
}

func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.auth.RegisteredUsers {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) RegisteredUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, len(s.auth.RegisteredUsers))
	copy(out, s.auth.RegisteredUsers)
	return out
}

// Doctors lists every registered doctor, for the booking flow's picker.
func (s *Store) Doctors() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.User{}
	for _, u := range s.auth.RegisteredUsers {
		if u.Role == models.RoleDoctor {
			out = append(out, u)
		}
	}
	return out
}
