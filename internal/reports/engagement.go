package reports

import (
	"sort"

	"copilot/internal/models"
)

const (
	rankingLimit            = 20
	longConversationMinimum = 5
)

// contactTotals tallies message volume and first/last seen per contact.
// Message counts include rows without a timestamp; first/last seen only
// consider usable timestamps.
func contactTotals(messages []models.Message) []models.EngagementRow {
	byContact := make(map[string]*models.EngagementRow)
	for _, m := range messages {
		id := m.ContactID()
		if id == "" {
			continue
		}
		row, ok := byContact[id]
		if !ok {
			row = &models.EngagementRow{Contact: id}
			byContact[id] = row
		}
		row.TotalMessages++
		if m.Timestamp == nil {
			continue
		}
		if row.FirstSeen.IsZero() || m.Timestamp.Before(row.FirstSeen) {
			row.FirstSeen = *m.Timestamp
		}
		if row.LastSeen.IsZero() || m.Timestamp.After(row.LastSeen) {
			row.LastSeen = *m.Timestamp
		}
	}

	rows := make([]models.EngagementRow, 0, len(byContact))
	for _, row := range byContact {
		rows = append(rows, *row)
	}
	return rows
}

// rankEngagement sorts by total messages descending with a deterministic
// tie-break on the contact identifier ascending, keeping the top entries.
func rankEngagement(rows []models.EngagementRow) []models.EngagementRow {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalMessages != rows[j].TotalMessages {
			return rows[i].TotalMessages > rows[j].TotalMessages
		}
		return rows[i].Contact < rows[j].Contact
	})
	if len(rows) > rankingLimit {
		rows = rows[:rankingLimit]
	}
	return rows
}

// EngagementRanking returns the top contacts by total message volume.
func EngagementRanking(messages []models.Message) []models.EngagementRow {
	return rankEngagement(contactTotals(messages))
}

// LongConversations ranks only contacts whose conversation reached the
// long-conversation threshold.
func LongConversations(messages []models.Message) []models.EngagementRow {
	all := contactTotals(messages)
	long := all[:0]
	for _, row := range all {
		if row.TotalMessages >= longConversationMinimum {
			long = append(long, row)
		}
	}
	return rankEngagement(long)
}
