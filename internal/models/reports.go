package models

import "time"

// DailyCount is one row of the daily message volume report.
type DailyCount struct {
	Date  string `json:"date" example:"2024-01-01"`
	Count int    `json:"count" example:"42"`
}

// DailyContacts is one row of the distinct-contacts-per-day report.
type DailyContacts struct {
	Date           string `json:"date" example:"2024-01-01"`
	UniqueContacts int    `json:"unique_contacts" example:"7"`
}

// HourlyCount is one row of the hour-of-day activity report. Hours are
// grouped across all dates.
type HourlyCount struct {
	Hour           int `json:"hour" example:"9"`
	Count          int `json:"count" example:"15"`
	UniqueContacts int `json:"unique_contacts" example:"4"`
}

// TopicCount is one row of the inbound question classification report.
type TopicCount struct {
	Topic          string `json:"topic" example:"pricing"`
	Count          int    `json:"count" example:"12"`
	UniqueContacts int    `json:"unique_contacts" example:"8"`
}

// ServiceWindowCount is one row of the business-hours breakdown report.
type ServiceWindowCount struct {
	Window         string  `json:"window" example:"business_hours"`
	Count          int     `json:"count" example:"30"`
	UniqueContacts int     `json:"unique_contacts" example:"10"`
	Percent        float64 `json:"percent" example:"75.5"`
}

// DailyCompositeRow is one row of the appointments-vs-messages report.
// AIAppointments counts AI-created appointments by creation date,
// ResolvedAppointments counts confirmed or cancelled manually-entered
// appointments, ActiveContacts counts distinct contacts that messaged.
type DailyCompositeRow struct {
	Date                 string `json:"date" example:"2024-01-01"`
	AIAppointments       int    `json:"ai_appointments" example:"3"`
	ResolvedAppointments int    `json:"resolved_appointments" example:"2"`
	ActiveContacts       int    `json:"active_contacts" example:"5"`
}

// EngagementRow is one row of the contact engagement ranking.
type EngagementRow struct {
	Contact       string    `json:"contact" example:"5511999990000"`
	TotalMessages int       `json:"total_messages" example:"27"`
	FirstSeen     time.Time `json:"first_seen"`
	LastSeen      time.Time `json:"last_seen"`
}

// ResponseCoverage reports how many inbound messages received an immediate
// automated reply.
type ResponseCoverage struct {
	RespondedCount int `json:"responded_count" example:"80"`
	TotalInbound   int `json:"total_inbound" example:"100"`
}

// ResponseLatency reports the mean reply delay in seconds. AverageSeconds is
// nil when no qualifying reply pairs exist.
type ResponseLatency struct {
	AverageSeconds *float64 `json:"average_seconds" example:"12.5"`
}

// Retention reports how many contacts came back on more than one day.
type Retention struct {
	TotalContacts     int     `json:"total_contacts" example:"50"`
	ReturningContacts int     `json:"returning_contacts" example:"18"`
	ReturningRate     float64 `json:"returning_rate" example:"0.36"`
}

// UniqueContactsRow is the single row of the totalUniqueContacts report.
type UniqueContactsRow struct {
	UniqueContacts int `json:"unique_contacts" example:"50"`
}

// ContactAverageRow is the single row of the avgMessagesPerClient report.
type ContactAverageRow struct {
	AvgMessagesPerContact float64 `json:"avg_messages_per_contact" example:"4.2"`
}

// ExecutiveSummary is the single row of the executiveSummary report.
type ExecutiveSummary struct {
	TotalMessages           int `json:"total_messages" example:"1200"`
	ActiveDays              int `json:"active_days" example:"30"`
	AvgMessagesPerActiveDay int `json:"avg_messages_per_active_day" example:"40"`
}

// RowSet is the uniform result of a report run: an ordered sequence of
// uniformly-shaped rows.
type RowSet struct {
	Report string `json:"report" example:"dailyMessages"`
	Rows   []any  `json:"rows"`
}

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Version   string    `json:"version" example:"1.0.0"`
}

// DBHealthResponse represents a database health check response
// @Description Database health check response
type DBHealthResponse struct {
	Status    string        `json:"status" example:"healthy"`
	Timestamp time.Time     `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Connected bool          `json:"connected" example:"true"`
	Latency   time.Duration `json:"latency" swaggertype:"string" example:"1ms"`
	Error     string        `json:"error,omitempty" example:""`
}

// ErrorResponse is the uniform error payload for API failures
// @Description Error payload
type ErrorResponse struct {
	Error string `json:"error" example:"report not found"`
}
