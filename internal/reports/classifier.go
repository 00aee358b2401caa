package reports

import (
	"sort"
	"strings"
	"time"

	"copilot/internal/models"

	"golang.org/x/text/cases"
)

// Topic labels for inbound question classification
const (
	TopicPricing    = "pricing"
	TopicScheduling = "scheduling"
	TopicLocation   = "location"
	TopicProcedures = "procedures"
	TopicInsurance  = "insurance"
	TopicOther      = "other"
)

// Service window labels
const (
	WindowBusinessHours = "business_hours"
	WindowOffHours      = "off_hours"
)

// Business hours are Mon-Fri 08:00-18:59 on the stored clock, no timezone
// conversion.
const (
	businessHourStart = 8
	businessHourEnd   = 18
)

// topicRules is evaluated in order; the first rule with any matching keyword
// wins, so a text mentioning both prices and scheduling classifies as
// pricing.
var topicRules = []struct {
	topic    string
	keywords []string
}{
	{TopicPricing, []string{"preço", "valor", "custo"}},
	{TopicScheduling, []string{"agendar", "consulta", "horario"}},
	{TopicLocation, []string{"endereço", "localização", "onde"}},
	{TopicProcedures, []string{"exame", "procedimento"}},
	{TopicInsurance, []string{"convênio", "plano"}},
}

// ClassifyTopic maps inbound text to a topic by case-insensitive substring
// containment. Empty text and text matching no rule classify as other.
func ClassifyTopic(text string) string {
	folded := cases.Fold().String(strings.TrimSpace(text))
	if folded == "" {
		return TopicOther
	}
	for _, rule := range topicRules {
		for _, kw := range rule.keywords {
			if strings.Contains(folded, kw) {
				return rule.topic
			}
		}
	}
	return TopicOther
}

// ClassifyServiceWindow maps a timestamp to business_hours or off_hours.
func ClassifyServiceWindow(ts time.Time) string {
	switch ts.Weekday() {
	case time.Saturday, time.Sunday:
		return WindowOffHours
	}
	if h := ts.Hour(); h >= businessHourStart && h <= businessHourEnd {
		return WindowBusinessHours
	}
	return WindowOffHours
}

// TopicBreakdown classifies every inbound message with non-empty text and
// counts occurrences and distinct contacts per topic. Rows are ordered by
// count descending, ties by topic ascending.
func TopicBreakdown(messages []models.Message) []models.TopicCount {
	counts := make(map[string]int)
	contacts := make(map[string]map[string]struct{})

	for _, m := range messages {
		if !m.Inbound() {
			continue
		}
		topic := ClassifyTopic(*m.ReceivedText)
		counts[topic]++
		if id := m.ContactID(); id != "" {
			if contacts[topic] == nil {
				contacts[topic] = make(map[string]struct{})
			}
			contacts[topic][id] = struct{}{}
		}
	}

	rows := make([]models.TopicCount, 0, len(counts))
	for topic, count := range counts {
		rows = append(rows, models.TopicCount{
			Topic:          topic,
			Count:          count,
			UniqueContacts: len(contacts[topic]),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Topic < rows[j].Topic
	})
	return rows
}
