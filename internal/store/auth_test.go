package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetbook/vet-scheduler/internal/httperr"
	"github.com/vetbook/vet-scheduler/internal/models"
)

// advancingClock returns a clock that moves forward a bit on every read, so
// timestamps and timestamp-derived IDs are strictly increasing.
func advancingClock() func() time.Time {
	t := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(37 * time.Millisecond)
		return t
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(nil, nil, WithClock(advancingClock()))
}

func doctorUser(email string) models.User {
	return models.User{
		Name:             "Dr. Alice Vet",
		Email:            email,
		Phone:            "555-0100",
		Password:         "secret1",
		Role:             models.RoleDoctor,
		MedicalSpecialty: []string{"general", "surgery"},
		LicenseNumber:    "VET-1234",
	}
}

func patientUser(email string) models.User {
	return models.User{
		Name:     "Bob Owner",
		Email:    email,
		Phone:    "555-0200",
		Password: "hunter22",
		Role:     models.RolePatient,
		Pets: []models.Pet{
			{ID: "p1", Name: "Rex", Species: "dog", Age: 3},
		},
	}
}

func TestSignUpEstablishesSession(t *testing.T) {
	s := newTestStore(t)

	u, token, err := s.SignUp(doctorUser("d@x.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "token-"+u.ID, token)

	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, u.ID, current.ID)
}

func TestDuplicateEmailCaseInsensitive(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.SignUp(doctorUser("d@x.com"))
	require.NoError(t, err)

	// The pre-check the signup path must run.
	assert.True(t, s.EmailRegistered("D@X.com"))
	assert.True(t, s.EmailRegistered("d@x.com"))
	assert.False(t, s.EmailRegistered("other@x.com"))

	// The registry itself is permissive: a duplicate insert is a no-op and
	// the first writer's record wins.
	second := doctorUser("D@X.COM")
	second.Name = "Dr. Impostor"
	got, _, err := s.SignUp(second)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Alice Vet", got.Name)
	assert.Len(t, s.RegisteredUsers(), 1)
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	registered, _, err := s.SignUp(patientUser("bob@pets.io"))
	require.NoError(t, err)
	s.Logout()

	t.Run("success with mixed-case email", func(t *testing.T) {
		u, token, err := s.Authenticate("BOB@Pets.IO", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
		assert.Equal(t, "token-"+registered.ID, token)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, _, errWrongPass := s.Authenticate("bob@pets.io", "nope")
		_, _, errNoUser := s.Authenticate("ghost@pets.io", "hunter22")

		assert.True(t, httperr.IsBusiness(errWrongPass, "invalid_credentials"))
		assert.True(t, httperr.IsBusiness(errNoUser, "invalid_credentials"))
		assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
	})
}

func TestLogoutPreservesRegistryAndSlots(t *testing.T) {
	s := newTestStore(t)
	doc, _, err := s.SignUp(doctorUser("d@x.com"))
	require.NoError(t, err)

	_, added := s.AddTimeSlot(models.TimeSlot{
		Date: "2025-08-15", StartTime: "09:00", EndTime: "09:30", Duration: 30,
	})
	require.True(t, added)

	s.Logout()

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Len(t, s.RegisteredUsers(), 1)
	assert.Len(t, s.DoctorSlots(doc.ID), 1)

	// Re-authentication restores prior state.
	_, _, err = s.Authenticate("d@x.com", "secret1")
	require.NoError(t, err)
	assert.Len(t, s.AvailableSlots(doc.ID), 1)
}

func TestUpdateProfileUpdatesRegistry(t *testing.T) {
	s := newTestStore(t)
	_, _, err := s.SignUp(doctorUser("d@x.com"))
	require.NoError(t, err)

	name := "Dr. Alice Renamed"
	fee := 75.0
	_, err = s.UpdateProfile(ProfileUpdate{Name: &name, ConsultationFee: &fee})
	require.NoError(t, err)

	// Session view reflects the patch.
	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Dr. Alice Renamed", current.Name)

	// The registry is the source of truth: a fresh authenticate returns the
	// updated record, not a stale copy.
	s.Logout()
	u, _, err := s.Authenticate("d@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Alice Renamed", u.Name)
	assert.Equal(t, 75.0, u.ConsultationFee)
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	s := newTestStore(t)
	name := "Nobody"
	_, err := s.UpdateProfile(ProfileUpdate{Name: &name})
	assert.True(t, httperr.IsBusiness(err, "not_authenticated"))
}

func TestResetAllWipesEverything(t *testing.T) {
	s := newTestStore(t)
	_, _, err := s.SignUp(doctorUser("d@x.com"))
	require.NoError(t, err)
	_, added := s.AddTimeSlot(models.TimeSlot{Date: "2025-08-15", StartTime: "09:00", EndTime: "09:30"})
	require.True(t, added)

	s.ResetAll()

	assert.Empty(t, s.RegisteredUsers())
	_, ok := s.CurrentUser()
	assert.False(t, ok)
	auth, appts := s.State()
	assert.Empty(t, auth.DoctorSlots)
	assert.Empty(t, appts.Appointments)
}
