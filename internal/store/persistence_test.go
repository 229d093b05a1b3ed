package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetbook/vet-scheduler/internal/models"
	"github.com/vetbook/vet-scheduler/internal/snapshot"
)

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	snapStore := snapshot.NewFileStore(dir)

	s := New(snapStore, nil, WithClock(advancingClock()))

	doc, _, err := s.SignUp(doctorUser("d@x.com"))
	require.NoError(t, err)
	slot, added := s.AddTimeSlot(models.TimeSlot{
		Date: "2025-08-15", StartTime: "09:00", EndTime: "09:30", Duration: 30,
	})
	require.True(t, added)

	ap := sampleAppointment()
	ap.DoctorID = doc.ID
	ap.SlotID = slot.ID
	created := s.AddAppointment(ap)
	_, err = s.SendMessage(created.ID, doc.ID, doc.Name, models.RoleDoctor, "bring his records")
	require.NoError(t, err)
	s.SetSelectedDate("2025-08-15")

	wantAuth, wantAppts := s.State()

	// A fresh process: new store over the same backend, hydrated at startup.
	reloaded := New(snapshot.NewFileStore(dir), nil, WithClock(advancingClock()))
	require.NoError(t, reloaded.Hydrate(context.Background()))

	gotAuth, gotAppts := reloaded.State()
	assert.Equal(t, wantAuth, gotAuth)
	assert.Equal(t, wantAppts, gotAppts)
}

func TestHydrateMissingSnapshotIsFirstRun(t *testing.T) {
	s := New(snapshot.NewFileStore(t.TempDir()), nil)
	require.NoError(t, s.Hydrate(context.Background()))

	auth, _ := s.State()
	assert.Empty(t, auth.RegisteredUsers)
}

// End-to-end walk through the core booking scenario.
func TestBookingScenario(t *testing.T) {
	s := newTestStore(t)

	// Register doctor D and publish slot S.
	doc, _, err := s.SignUp(doctorUser("d@x.com"))
	require.NoError(t, err)
	slot, added := s.AddTimeSlot(models.TimeSlot{
		Date: "2025-08-15", StartTime: "09:00", EndTime: "09:30", Duration: 30,
	})
	require.True(t, added)
	s.Logout()

	// Register patient P and book S.
	pat, _, err := s.SignUp(patientUser("p@x.com"))
	require.NoError(t, err)
	require.True(t, s.BookSlot(slot.ID))

	a := s.AddAppointment(models.Appointment{
		Title:       "Checkup",
		Date:        slot.Date,
		Time:        slot.StartTime,
		DoctorID:    doc.ID,
		DoctorName:  doc.Name,
		ClientName:  pat.Name,
		ClientPhone: pat.Phone,
		ClientEmail: pat.Email,
		ServiceType: "checkup",
		Duration:    slot.Duration,
		SlotID:      slot.ID,
	})
	assert.Equal(t, "scheduled", a.Status)

	gotSlot, _ := s.SlotByID(slot.ID)
	assert.False(t, gotSlot.IsAvailable)

	// Complete the appointment.
	completed, found, err := s.UpdateAppointmentStatus(a.ID, "completed")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "completed", completed.Status)
	assert.NotEqual(t, a.UpdatedAt, completed.UpdatedAt)

	// A second doctor with the same email in different case is a duplicate.
	assert.True(t, s.EmailRegistered("D@X.com"))
}
