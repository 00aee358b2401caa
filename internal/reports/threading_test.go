package reports

import (
	"testing"

	"copilot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseCoverageReport(t *testing.T) {
	tests := []struct {
		name     string
		messages []models.Message
		expected models.ResponseCoverage
	}{
		{
			name:     "empty input",
			messages: nil,
			expected: models.ResponseCoverage{},
		},
		{
			name: "inbound followed by reply",
			messages: []models.Message{
				msg(1, "a", "oi", "", "2024-01-01T09:00:00"),
				msg(2, "a", "", "olá!", "2024-01-01T09:01:00"),
			},
			expected: models.ResponseCoverage{RespondedCount: 1, TotalInbound: 1},
		},
		{
			name: "next row is inbound, first stays unresponded even with a later reply",
			messages: []models.Message{
				msg(1, "a", "oi", "", "2024-01-01T09:00:00"),
				msg(2, "a", "tem horario?", "", "2024-01-01T09:00:30"),
				msg(3, "a", "", "temos sim", "2024-01-01T09:01:00"),
			},
			expected: models.ResponseCoverage{RespondedCount: 1, TotalInbound: 2},
		},
		{
			name: "next row carries both texts and counts as a reply",
			messages: []models.Message{
				msg(1, "a", "oi", "", "2024-01-01T09:00:00"),
				msg(2, "a", "obrigado", "de nada", "2024-01-01T09:01:00"),
			},
			// the second row is itself inbound with no candidate reply
			expected: models.ResponseCoverage{RespondedCount: 1, TotalInbound: 2},
		},
		{
			name: "trailing inbound has no candidate reply",
			messages: []models.Message{
				msg(1, "a", "oi", "", "2024-01-01T09:00:00"),
			},
			expected: models.ResponseCoverage{RespondedCount: 0, TotalInbound: 1},
		},
		{
			name: "contacts are threaded independently",
			messages: []models.Message{
				msg(1, "a", "oi", "", "2024-01-01T09:00:00"),
				msg(2, "b", "", "olá!", "2024-01-01T09:01:00"),
			},
			expected: models.ResponseCoverage{RespondedCount: 0, TotalInbound: 1},
		},
		{
			name: "rows without contact or timestamp are excluded",
			messages: []models.Message{
				msg(1, "", "oi", "", "2024-01-01T09:00:00"),
				msg(2, "a", "oi", "", ""),
			},
			expected: models.ResponseCoverage{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResponseCoverageReport(tt.messages))
		})
	}
}

func TestResponseCoverageReport_OrdersByTimestampThenID(t *testing.T) {
	// Delivered out of order; sorted by timestamp with id as tie-break the
	// inbound row (id 1) precedes the reply (id 2) sharing its timestamp.
	messages := []models.Message{
		msg(2, "a", "", "olá!", "2024-01-01T09:00:00"),
		msg(1, "a", "oi", "", "2024-01-01T09:00:00"),
	}

	result := ResponseCoverageReport(messages)

	assert.Equal(t, models.ResponseCoverage{RespondedCount: 1, TotalInbound: 1}, result)
}

func TestResponseLatencyReport(t *testing.T) {
	tests := []struct {
		name     string
		messages []models.Message
		expected *float64
	}{
		{
			name:     "no samples yields nil average",
			messages: nil,
			expected: nil,
		},
		{
			name: "delta just inside the window",
			messages: []models.Message{
				msg(1, "a", "oi", "", "2024-01-01T09:00:00"),
				msg(2, "a", "", "olá!", "2024-01-01T09:04:59"), // 299s
			},
			expected: floatPtr(299),
		},
		{
			name: "delta at the window bound is excluded",
			messages: []models.Message{
				msg(1, "a", "oi", "", "2024-01-01T09:00:00"),
				msg(2, "a", "", "olá!", "2024-01-01T09:05:00"), // 300s
			},
			expected: nil,
		},
		{
			name: "negative delta from clock skew is excluded",
			messages: []models.Message{
				msg(2, "a", "oi", "", "2024-01-01T09:00:05"),
				msg(1, "a", "", "olá!", "2024-01-01T09:00:00"),
			},
			expected: nil,
		},
		{
			name: "zero delta is excluded",
			messages: []models.Message{
				msg(1, "a", "oi", "", "2024-01-01T09:00:00"),
				msg(2, "a", "", "olá!", "2024-01-01T09:00:00"),
			},
			expected: nil,
		},
		{
			name: "mean across contacts rounds to two decimals",
			messages: []models.Message{
				msg(1, "a", "oi", "", "2024-01-01T09:00:00"),
				msg(2, "a", "", "olá!", "2024-01-01T09:00:10"), // 10s
				msg(3, "b", "oi", "", "2024-01-01T10:00:00"),
				msg(4, "b", "", "olá!", "2024-01-01T10:00:15"), // 15s
				msg(5, "c", "oi", "", "2024-01-01T11:00:00"),
				msg(6, "c", "", "olá!", "2024-01-01T11:00:15"), // 15s
			},
			expected: floatPtr(13.33),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResponseLatencyReport(tt.messages)
			if tt.expected == nil {
				assert.Nil(t, result.AverageSeconds)
				return
			}
			require.NotNil(t, result.AverageSeconds)
			assert.InDelta(t, *tt.expected, *result.AverageSeconds, 0.001)
		})
	}
}

// End-to-end scenario across the threading reports: contact A gets a reply
// within a minute, contact B's question is never followed by anything.
func TestThreading_Scenario(t *testing.T) {
	messages := []models.Message{
		msg(1, "A", "agendar consulta", "", "2024-01-01T09:00:00"),
		msg(2, "A", "", "ok, confirmado", "2024-01-01T09:01:00"),
		msg(3, "B", "qual o valor?", "", "2024-01-02T20:00:00"),
	}

	coverage := ResponseCoverageReport(messages)
	assert.Equal(t, models.ResponseCoverage{RespondedCount: 1, TotalInbound: 2}, coverage)

	latency := ResponseLatencyReport(messages)
	require.NotNil(t, latency.AverageSeconds)
	assert.Equal(t, 60.0, *latency.AverageSeconds)

	daily := DailyMessageCounts(messages)
	assert.Equal(t, []models.DailyCount{
		{Date: "2024-01-01", Count: 2},
		{Date: "2024-01-02", Count: 1},
	}, daily)

	topics := TopicBreakdown(messages)
	assert.Equal(t, []models.TopicCount{
		{Topic: TopicPricing, Count: 1, UniqueContacts: 1},
		{Topic: TopicScheduling, Count: 1, UniqueContacts: 1},
	}, topics)

	windows := ServiceWindowBreakdown(messages)
	assert.Equal(t, []models.ServiceWindowCount{
		{Window: WindowBusinessHours, Count: 2, UniqueContacts: 1, Percent: 66.67},
		{Window: WindowOffHours, Count: 1, UniqueContacts: 1, Percent: 33.33},
	}, windows)
}

func floatPtr(v float64) *float64 { return &v }
