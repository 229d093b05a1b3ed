package store

import (
	"sort"

	"github.com/vetbook/vet-scheduler/internal/clock"
	"github.com/vetbook/vet-scheduler/internal/httperr"
	"github.com/vetbook/vet-scheduler/internal/models"
)

// ======================================================
// CHAT
// ======================================================
//
// Messages are stored once, in the flat list keyed by appointmentId. The
// per-appointment view every read returns is derived from that list, so the
// embedded copy can never drift from the global one.

// SendMessage appends an unread message to the target appointment's thread.
func (s *Store) SendMessage(appointmentID, senderID, senderName string, senderRole models.Role, text string) (models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.appointmentExistsLocked(appointmentID) {
		return models.ChatMessage{}, httperr.ErrBusiness("appointment_not_found")
	}

	now := s.now()
	msg := models.ChatMessage{
		ID:            clock.NewID(now),
		AppointmentID: appointmentID,
		SenderID:      senderID,
		SenderName:    senderName,
		SenderRole:    senderRole,
		Message:       text,
		Timestamp:     clock.ISO(now),
		IsRead:        false,
	}

	s.appts.ChatMessages = append(s.appts.ChatMessages, msg)
	s.persist()
	return msg, nil
}

// MarkMessagesRead flips isRead on every message of the appointment authored
// by someone other than the reader.
func (s *Store) MarkMessagesRead(appointmentID, readerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	marked := 0
	for i := range s.appts.ChatMessages {
		m := &s.appts.ChatMessages[i]
		if m.AppointmentID == appointmentID && m.SenderID != readerID && !m.IsRead {
			m.IsRead = true
			marked++
		}
	}

	if marked > 0 {
		s.persist()
	}
	return marked
}

// UnreadCount counts messages on the appointment not authored by the viewer
// and not yet read.
func (s *Store) UnreadCount(appointmentID, viewerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, m := range s.appts.ChatMessages {
		if m.AppointmentID == appointmentID && m.SenderID != viewerID && !m.IsRead {
			count++
		}
	}
	return count
}

// MessagesFor returns the appointment's thread, timestamp ascending with the
// message ID as tie-break (IDs are millisecond-monotonic, so this is
// insertion order).
func (s *Store) MessagesFor(appointmentID string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messagesForLocked(appointmentID)
}

func (s *Store) messagesForLocked(appointmentID string) []models.ChatMessage {
	out := []models.ChatMessage{}
	for _, m := range s.appts.ChatMessages {
		if m.AppointmentID == appointmentID {
			out = append(out, m)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].ID < out[j].ID
	})

	if len(out) == 0 {
		return nil
	}
	return out
}

// ClearAllMessages drops every chat thread. Individual messages are never
// deleted; this is the only removal operation.
func (s *Store) ClearAllMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appts.ChatMessages = []models.ChatMessage{}
	s.persist()
}

func (s *Store) appointmentExistsLocked(id string) bool {
	for _, ap := range s.appts.Appointments {
		if ap.ID == id {
			return true
		}
	}
	return false
}
