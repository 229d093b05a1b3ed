package store

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/vetbook/vet-scheduler/internal/models"
)

// Property: for any interleaving of doctor/patient messages, each viewer's
// unread count equals the number of messages the other party sent since that
// viewer last opened the thread, and mark-read always drops it to zero.
func TestProperty_UnreadCountTracksOtherPartysMessages(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("unread count matches a reference model", prop.ForAll(
		func(steps []int) bool {
			s := New(nil, nil, WithClock(advancingClock()))
			ap := s.AddAppointment(sampleAppointment())

			const doctor, patient = "doc-1", "pat-1"
			expectDoctor, expectPatient := 0, 0

			for _, step := range steps {
				switch step % 4 {
				case 0: // doctor sends
					if _, err := s.SendMessage(ap.ID, doctor, "Dr. Alice Vet", models.RoleDoctor, "msg"); err != nil {
						return false
					}
					expectPatient++
				case 1: // patient sends
					if _, err := s.SendMessage(ap.ID, patient, "Bob Owner", models.RolePatient, "msg"); err != nil {
						return false
					}
					expectDoctor++
				case 2: // doctor opens the thread
					s.MarkMessagesRead(ap.ID, doctor)
					expectDoctor = 0
				case 3: // patient opens the thread
					s.MarkMessagesRead(ap.ID, patient)
					expectPatient = 0
				}

				if s.UnreadCount(ap.ID, doctor) != expectDoctor {
					return false
				}
				if s.UnreadCount(ap.ID, patient) != expectPatient {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.TestingRun(t)
}
