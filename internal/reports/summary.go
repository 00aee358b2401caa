package reports

import (
	"math"

	"copilot/internal/models"
)

// UniqueContactTotal counts distinct contacts across all messages.
func UniqueContactTotal(messages []models.Message) models.UniqueContactsRow {
	contacts := make(map[string]struct{})
	for _, m := range messages {
		if id := m.ContactID(); id != "" {
			contacts[id] = struct{}{}
		}
	}
	return models.UniqueContactsRow{UniqueContacts: len(contacts)}
}

// ContactAverage divides per-contact message volume by the number of
// distinct contacts. Zero contacts yield a zero average, never an error.
func ContactAverage(messages []models.Message) models.ContactAverageRow {
	contacts := make(map[string]struct{})
	total := 0
	for _, m := range messages {
		id := m.ContactID()
		if id == "" {
			continue
		}
		contacts[id] = struct{}{}
		total++
	}
	if len(contacts) == 0 {
		return models.ContactAverageRow{}
	}
	return models.ContactAverageRow{
		AvgMessagesPerContact: round2(float64(total) / float64(len(contacts))),
	}
}

// ExecutiveSummaryReport condenses the snapshot into headline figures:
// total messages, distinct active days and the rounded messages-per-active-day
// ratio. Zero active days yield a zero ratio.
func ExecutiveSummaryReport(messages []models.Message) models.ExecutiveSummary {
	days := make(map[string]struct{})
	for _, m := range messages {
		if m.Timestamp != nil {
			days[m.Timestamp.Format(dateLayout)] = struct{}{}
		}
	}

	summary := models.ExecutiveSummary{
		TotalMessages: len(messages),
		ActiveDays:    len(days),
	}
	if summary.ActiveDays > 0 {
		summary.AvgMessagesPerActiveDay = int(math.Round(float64(summary.TotalMessages) / float64(summary.ActiveDays)))
	}
	return summary
}
