package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Appointment status values after normalization
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// SourceAIAgent marks appointments created by the AI assistant rather than
// entered manually by the clinic staff.
const SourceAIAgent = "agendamento cora"

// Message represents one row of the clientemensagem table. A row with a
// non-empty received text is inbound, a non-empty sent text is outbound;
// both can be set on the same row (one exchange turn).
type Message struct {
	ID           int64      `json:"id" db:"id"`
	Contact      *string    `json:"contact" db:"whatsapp"`
	ReceivedText *string    `json:"received_text" db:"mensagemrecebida"`
	SentText     *string    `json:"sent_text" db:"mensagemenviada"`
	Timestamp    *time.Time `json:"timestamp" db:"datahoramensagem"`
}

// ContactID returns the contact identifier, or "" when the row has none.
func (m Message) ContactID() string {
	if m.Contact == nil {
		return ""
	}
	return strings.TrimSpace(*m.Contact)
}

// Inbound reports whether the row carries text received from the contact.
func (m Message) Inbound() bool {
	return m.ReceivedText != nil && strings.TrimSpace(*m.ReceivedText) != ""
}

// Outbound reports whether the row carries text sent by the responder.
func (m Message) Outbound() bool {
	return m.SentText != nil && strings.TrimSpace(*m.SentText) != ""
}

// Appointment represents one row of the clienteagendamento table.
type Appointment struct {
	ID          int64      `json:"id" db:"id"`
	Contact     *string    `json:"contact" db:"whatsapp"`
	ClientName  *string    `json:"client_name" db:"nomecliente"`
	ScheduledAt *time.Time `json:"scheduled_at" db:"dataagendamento"`
	Status      string     `json:"status" db:"status"`
	CreatedAt   *time.Time `json:"created_at" db:"datacriacao"`
	ExternalID  *string    `json:"external_id" db:"idagendahd"`
	Source      *string    `json:"source" db:"agendei"`
}

// NormalizedStatus folds the free-text status label into the closed enum.
// Upstream data entry is inconsistent: labels vary in casing and sometimes
// arrive pluralized ("Desmarcados"), so the label is case-folded and a
// trailing "s" is dropped before matching.
func (a Appointment) NormalizedStatus() string {
	return NormalizeStatus(a.Status)
}

// AISourced reports whether the appointment was created by the AI assistant.
func (a Appointment) AISourced() bool {
	if a.Source == nil {
		return false
	}
	return cases.Fold().String(strings.TrimSpace(*a.Source)) == SourceAIAgent
}

// ContactID returns the contact identifier, or "" when the row has none.
func (a Appointment) ContactID() string {
	if a.Contact == nil {
		return ""
	}
	return strings.TrimSpace(*a.Contact)
}

// NormalizeStatus maps a raw status label to scheduled, confirmed or
// cancelled. Unknown labels fall back to scheduled.
func NormalizeStatus(raw string) string {
	label := cases.Fold().String(strings.TrimSpace(raw))
	label = strings.TrimSuffix(label, "s")
	switch label {
	case "confirmado":
		return StatusConfirmed
	case "desmarcado":
		return StatusCancelled
	default:
		return StatusScheduled
	}
}

// Snapshot is the immutable point-in-time view of the event store that all
// report pipelines read. Pipelines never mutate it.
type Snapshot struct {
	Messages     []Message
	Appointments []Appointment
}

// Contact is one row of the distinct-contacts listing.
type Contact struct {
	Whatsapp      *string    `json:"whatsapp" db:"whatsapp"`
	LastMessageAt *time.Time `json:"last_message_date" db:"last_message_date"`
}
