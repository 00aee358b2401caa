package reports

import (
	"sort"

	"copilot/internal/models"
)

// responseWindowSeconds bounds a qualifying reply delay. Deltas at or above
// the bound, zero, or negative (clock skew) are not latency samples.
const responseWindowSeconds = 300

// contactHistories groups messages by contact and sorts each group by
// timestamp ascending, ties by id ascending. Rows without a contact or a
// usable timestamp are excluded.
func contactHistories(messages []models.Message) map[string][]models.Message {
	histories := make(map[string][]models.Message)
	for _, m := range messages {
		id := m.ContactID()
		if id == "" || m.Timestamp == nil {
			continue
		}
		histories[id] = append(histories[id], m)
	}
	for _, history := range histories {
		sort.SliceStable(history, func(i, j int) bool {
			if !history[i].Timestamp.Equal(*history[j].Timestamp) {
				return history[i].Timestamp.Before(*history[j].Timestamp)
			}
			return history[i].ID < history[j].ID
		})
	}
	return histories
}

// threadStats walks each contact's history once, pairing every inbound
// message with the immediately following row. The next row counts as a reply
// when it carries sent text, whatever else it carries; two back-to-back
// inbound messages leave the first unresponded even if a reply arrives
// later. Latency samples only come from replies within the response window.
func threadStats(messages []models.Message) (responded, totalInbound int, samples []float64) {
	for _, history := range contactHistories(messages) {
		for i, m := range history {
			if !m.Inbound() {
				continue
			}
			totalInbound++
			if i+1 >= len(history) {
				continue
			}
			next := history[i+1]
			if !next.Outbound() {
				continue
			}
			responded++
			delta := next.Timestamp.Sub(*m.Timestamp).Seconds()
			if delta > 0 && delta < responseWindowSeconds {
				samples = append(samples, delta)
			}
		}
	}
	return responded, totalInbound, samples
}

// ResponseCoverageReport counts inbound messages whose immediately following
// row was an automated reply, across all contacts.
func ResponseCoverageReport(messages []models.Message) models.ResponseCoverage {
	responded, totalInbound, _ := threadStats(messages)
	return models.ResponseCoverage{
		RespondedCount: responded,
		TotalInbound:   totalInbound,
	}
}

// ResponseLatencyReport averages qualifying reply delays across all
// contacts. AverageSeconds is nil when no qualifying pair exists.
func ResponseLatencyReport(messages []models.Message) models.ResponseLatency {
	_, _, samples := threadStats(messages)
	if len(samples) == 0 {
		return models.ResponseLatency{}
	}
	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	avg := round2(sum / float64(len(samples)))
	return models.ResponseLatency{AverageSeconds: &avg}
}
