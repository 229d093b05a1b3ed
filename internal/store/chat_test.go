package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetbook/vet-scheduler/internal/httperr"
	"github.com/vetbook/vet-scheduler/internal/models"
)

func TestSendMessage(t *testing.T) {
	s := newTestStore(t)
	ap := s.AddAppointment(sampleAppointment())

	msg, err := s.SendMessage(ap.ID, "doc-1", "Dr. Alice Vet", models.RoleDoctor, "Rex is due for shots")
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, ap.ID, msg.AppointmentID)
	assert.False(t, msg.IsRead)
	assert.NotEmpty(t, msg.Timestamp)
}

func TestSendMessageUnknownAppointment(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SendMessage("missing", "u", "U", models.RolePatient, "hi")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUnreadCountAroundSendAndMarkRead(t *testing.T) {
	s := newTestStore(t)
	ap := s.AddAppointment(sampleAppointment())

	const doctor, patient = "doc-1", "pat-1"

	before := s.UnreadCount(ap.ID, patient)

	// A message from the other party raises the viewer's count by one.
	_, err := s.SendMessage(ap.ID, doctor, "Dr. Alice Vet", models.RoleDoctor, "see you at 9")
	require.NoError(t, err)
	assert.Equal(t, before+1, s.UnreadCount(ap.ID, patient))

	// One's own messages never count as unread for oneself.
	_, err = s.SendMessage(ap.ID, patient, "Bob Owner", models.RolePatient, "on my way")
	require.NoError(t, err)
	assert.Equal(t, before+1, s.UnreadCount(ap.ID, patient))
	assert.Equal(t, 1, s.UnreadCount(ap.ID, doctor))

	// Opening the thread returns the count to the prior value.
	marked := s.MarkMessagesRead(ap.ID, patient)
	assert.Equal(t, 1, marked)
	assert.Equal(t, before, s.UnreadCount(ap.ID, patient))

	// The doctor's unread message is untouched by the patient's mark-read.
	assert.Equal(t, 1, s.UnreadCount(ap.ID, doctor))
}

func TestEmbeddedViewMatchesFlatList(t *testing.T) {
	s := newTestStore(t)
	ap := s.AddAppointment(sampleAppointment())

	_, err := s.SendMessage(ap.ID, "doc-1", "Dr. Alice Vet", models.RoleDoctor, "first")
	require.NoError(t, err)
	_, err = s.SendMessage(ap.ID, "pat-1", "Bob Owner", models.RolePatient, "second")
	require.NoError(t, err)

	// The per-appointment view is derived from the flat list, so the two can
	// never diverge: after a mark-read both reads see the same flags.
	s.MarkMessagesRead(ap.ID, "pat-1")

	flat := s.MessagesFor(ap.ID)
	withChat, ok := s.AppointmentByID(ap.ID)
	require.True(t, ok)
	assert.Equal(t, flat, withChat.ChatMessages)

	require.Len(t, flat, 2)
	assert.True(t, flat[0].IsRead)
	assert.False(t, flat[1].IsRead, "reader's own message stays unread for the other side")
}

func TestMessagesOrderedByTimestampThenID(t *testing.T) {
	s := newTestStore(t)
	ap := s.AddAppointment(sampleAppointment())

	texts := []string{"one", "two", "three", "four"}
	for _, txt := range texts {
		_, err := s.SendMessage(ap.ID, "doc-1", "Dr. Alice Vet", models.RoleDoctor, txt)
		require.NoError(t, err)
	}

	got := s.MessagesFor(ap.ID)
	require.Len(t, got, len(texts))
	for i, txt := range texts {
		assert.Equal(t, txt, got[i].Message)
	}
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Timestamp, got[i].Timestamp)
	}
}

func TestClearAllMessages(t *testing.T) {
	s := newTestStore(t)
	ap := s.AddAppointment(sampleAppointment())
	other := s.AddAppointment(sampleAppointment())

	_, err := s.SendMessage(ap.ID, "a", "A", models.RoleDoctor, "x")
	require.NoError(t, err)
	_, err = s.SendMessage(other.ID, "b", "B", models.RolePatient, "y")
	require.NoError(t, err)

	s.ClearAllMessages()
	assert.Empty(t, s.MessagesFor(ap.ID))
	assert.Empty(t, s.MessagesFor(other.ID))
}
