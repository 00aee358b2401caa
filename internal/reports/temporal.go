package reports

import (
	"math"
	"sort"

	"copilot/internal/models"
)

const dateLayout = "2006-01-02"

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DailyMessageCounts groups messages by calendar date of their timestamp and
// counts rows per date, ascending. Rows without a usable timestamp are
// skipped.
func DailyMessageCounts(messages []models.Message) []models.DailyCount {
	counts := make(map[string]int)
	for _, m := range messages {
		if m.Timestamp == nil {
			continue
		}
		counts[m.Timestamp.Format(dateLayout)]++
	}

	rows := make([]models.DailyCount, 0, len(counts))
	for date, count := range counts {
		rows = append(rows, models.DailyCount{Date: date, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// ContactsPerDay counts distinct contacts with at least one message per
// calendar date, ascending.
func ContactsPerDay(messages []models.Message) []models.DailyContacts {
	contacts := make(map[string]map[string]struct{})
	for _, m := range messages {
		if m.Timestamp == nil {
			continue
		}
		id := m.ContactID()
		if id == "" {
			continue
		}
		date := m.Timestamp.Format(dateLayout)
		if contacts[date] == nil {
			contacts[date] = make(map[string]struct{})
		}
		contacts[date][id] = struct{}{}
	}

	rows := make([]models.DailyContacts, 0, len(contacts))
	for date, set := range contacts {
		rows = append(rows, models.DailyContacts{Date: date, UniqueContacts: len(set)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

// HourlyActivity groups messages by hour-of-day across all dates, counting
// rows and distinct contacts per hour. Only hours with activity appear,
// ordered ascending by hour.
func HourlyActivity(messages []models.Message) []models.HourlyCount {
	var counts [24]int
	var contacts [24]map[string]struct{}

	for _, m := range messages {
		if m.Timestamp == nil {
			continue
		}
		h := m.Timestamp.Hour()
		counts[h]++
		if id := m.ContactID(); id != "" {
			if contacts[h] == nil {
				contacts[h] = make(map[string]struct{})
			}
			contacts[h][id] = struct{}{}
		}
	}

	rows := make([]models.HourlyCount, 0, 24)
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		rows = append(rows, models.HourlyCount{
			Hour:           h,
			Count:          counts[h],
			UniqueContacts: len(contacts[h]),
		})
	}
	return rows
}

// peakDemandLimit caps the peakDemand report at the busiest hours.
const peakDemandLimit = 5

// PeakDemand reorders the hourly activity by message count descending, ties
// by hour ascending, and keeps the busiest hours.
func PeakDemand(messages []models.Message) []models.HourlyCount {
	rows := HourlyActivity(messages)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Hour < rows[j].Hour
	})
	if len(rows) > peakDemandLimit {
		rows = rows[:peakDemandLimit]
	}
	return rows
}

// ServiceWindowBreakdown partitions messages into business-hours and
// off-hours windows with counts, distinct contacts and the share of total
// messages. Windows with no messages are omitted.
func ServiceWindowBreakdown(messages []models.Message) []models.ServiceWindowCount {
	counts := make(map[string]int)
	contacts := make(map[string]map[string]struct{})
	total := 0

	for _, m := range messages {
		if m.Timestamp == nil {
			continue
		}
		window := ClassifyServiceWindow(*m.Timestamp)
		counts[window]++
		total++
		if id := m.ContactID(); id != "" {
			if contacts[window] == nil {
				contacts[window] = make(map[string]struct{})
			}
			contacts[window][id] = struct{}{}
		}
	}

	rows := make([]models.ServiceWindowCount, 0, 2)
	for _, window := range []string{WindowBusinessHours, WindowOffHours} {
		count := counts[window]
		if count == 0 {
			continue
		}
		rows = append(rows, models.ServiceWindowCount{
			Window:         window,
			Count:          count,
			UniqueContacts: len(contacts[window]),
			Percent:        round2(100 * float64(count) / float64(total)),
		})
	}
	return rows
}

// DailyComposite merges both event streams per calendar date: AI-created
// appointments and confirmed/cancelled manually-entered appointments by
// creation date, plus distinct contacts with at least one message that day.
// Dates are the union of the dates present in either stream.
func DailyComposite(messages []models.Message, appointments []models.Appointment) []models.DailyCompositeRow {
	type accum struct {
		ai       int
		resolved int
		contacts map[string]struct{}
	}
	days := make(map[string]*accum)
	day := func(date string) *accum {
		a, ok := days[date]
		if !ok {
			a = &accum{contacts: make(map[string]struct{})}
			days[date] = a
		}
		return a
	}

	for _, appt := range appointments {
		if appt.CreatedAt == nil {
			continue
		}
		a := day(appt.CreatedAt.Format(dateLayout))
		if appt.AISourced() {
			a.ai++
			continue
		}
		switch appt.NormalizedStatus() {
		case models.StatusConfirmed, models.StatusCancelled:
			a.resolved++
		}
	}

	for _, m := range messages {
		if m.Timestamp == nil {
			continue
		}
		a := day(m.Timestamp.Format(dateLayout))
		if id := m.ContactID(); id != "" {
			a.contacts[id] = struct{}{}
		}
	}

	rows := make([]models.DailyCompositeRow, 0, len(days))
	for date, a := range days {
		rows = append(rows, models.DailyCompositeRow{
			Date:                 date,
			AIAppointments:       a.ai,
			ResolvedAppointments: a.resolved,
			ActiveContacts:       len(a.contacts),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}
