package reports

import "copilot/internal/models"

// RetentionReport counts distinct active calendar dates per contact. A
// contact active on more than one date is returning.
func RetentionReport(messages []models.Message) models.Retention {
	activeDays := make(map[string]map[string]struct{})
	for _, m := range messages {
		id := m.ContactID()
		if id == "" || m.Timestamp == nil {
			continue
		}
		if activeDays[id] == nil {
			activeDays[id] = make(map[string]struct{})
		}
		activeDays[id][m.Timestamp.Format(dateLayout)] = struct{}{}
	}

	result := models.Retention{TotalContacts: len(activeDays)}
	for _, days := range activeDays {
		if len(days) > 1 {
			result.ReturningContacts++
		}
	}
	if result.TotalContacts > 0 {
		result.ReturningRate = round2(float64(result.ReturningContacts) / float64(result.TotalContacts))
	}
	return result
}
