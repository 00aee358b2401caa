package reports

import (
	"time"

	"copilot/internal/models"
)

const testTimeLayout = "2006-01-02T15:04:05"

// msg builds a message row for tests. Empty strings become NULL columns.
func msg(id int64, contact, received, sent, ts string) models.Message {
	m := models.Message{ID: id}
	if contact != "" {
		m.Contact = &contact
	}
	if received != "" {
		m.ReceivedText = &received
	}
	if sent != "" {
		m.SentText = &sent
	}
	if ts != "" {
		parsed, err := time.Parse(testTimeLayout, ts)
		if err != nil {
			panic(err)
		}
		m.Timestamp = &parsed
	}
	return m
}

// appt builds an appointment row for tests. Empty strings become NULL
// columns.
func appt(id int64, contact, status, createdAt, source string) models.Appointment {
	a := models.Appointment{ID: id, Status: status}
	if contact != "" {
		a.Contact = &contact
	}
	if createdAt != "" {
		parsed, err := time.Parse(testTimeLayout, createdAt)
		if err != nil {
			panic(err)
		}
		a.CreatedAt = &parsed
	}
	if source != "" {
		a.Source = &source
	}
	return a
}

func mustTime(ts string) time.Time {
	parsed, err := time.Parse(testTimeLayout, ts)
	if err != nil {
		panic(err)
	}
	return parsed
}
