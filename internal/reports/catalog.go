package reports

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"copilot/internal/models"
)

// ErrReportNotFound is returned by Run for names outside the catalog.
var ErrReportNotFound = errors.New("report not found")

// Report names recognized by the catalog
const (
	ReportDailyMessages         = "dailyMessages"
	ReportTotalUniqueContacts   = "totalUniqueContacts"
	ReportMessagesPerContact    = "messagesPerContact"
	ReportContactsPerDay        = "contactsPerDay"
	ReportServiceHours          = "serviceHours"
	ReportHourlyActivity        = "hourlyActivity"
	ReportAvgMessagesPerClient  = "avgMessagesPerClient"
	ReportAppointmentMessages   = "appointmentMessages"
	ReportFrequentQuestionTypes = "frequentQuestionTypes"
	ReportLongConversations     = "longConversations"
	ReportAIResponseRate        = "aiResponseRate"
	ReportReturningClients      = "returningClients"
	ReportAIResponseSpeed       = "aiResponseSpeed"
	ReportPeakDemand            = "peakDemand"
	ReportExecutiveSummary      = "executiveSummary"
)

type pipeline func(snap *models.Snapshot) []any

// asRows boxes a typed row slice into the uniform rowset shape.
func asRows[T any](rows []T) []any {
	out := make([]any, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

// catalog maps every recognized report name to its pipeline. Each pipeline
// is a pure function of the snapshot, so any subset may run concurrently.
var catalog = map[string]pipeline{
	ReportDailyMessages: func(snap *models.Snapshot) []any {
		return asRows(DailyMessageCounts(snap.Messages))
	},
	ReportTotalUniqueContacts: func(snap *models.Snapshot) []any {
		return []any{UniqueContactTotal(snap.Messages)}
	},
	ReportMessagesPerContact: func(snap *models.Snapshot) []any {
		return asRows(EngagementRanking(snap.Messages))
	},
	ReportContactsPerDay: func(snap *models.Snapshot) []any {
		return asRows(ContactsPerDay(snap.Messages))
	},
	ReportServiceHours: func(snap *models.Snapshot) []any {
		return asRows(ServiceWindowBreakdown(snap.Messages))
	},
	ReportHourlyActivity: func(snap *models.Snapshot) []any {
		return asRows(HourlyActivity(snap.Messages))
	},
	ReportAvgMessagesPerClient: func(snap *models.Snapshot) []any {
		return []any{ContactAverage(snap.Messages)}
	},
	ReportAppointmentMessages: func(snap *models.Snapshot) []any {
		return asRows(DailyComposite(snap.Messages, snap.Appointments))
	},
	ReportFrequentQuestionTypes: func(snap *models.Snapshot) []any {
		return asRows(TopicBreakdown(snap.Messages))
	},
	ReportLongConversations: func(snap *models.Snapshot) []any {
		return asRows(LongConversations(snap.Messages))
	},
	ReportAIResponseRate: func(snap *models.Snapshot) []any {
		return []any{ResponseCoverageReport(snap.Messages)}
	},
	ReportReturningClients: func(snap *models.Snapshot) []any {
		return []any{RetentionReport(snap.Messages)}
	},
	ReportAIResponseSpeed: func(snap *models.Snapshot) []any {
		return []any{ResponseLatencyReport(snap.Messages)}
	},
	ReportPeakDemand: func(snap *models.Snapshot) []any {
		return asRows(PeakDemand(snap.Messages))
	},
	ReportExecutiveSummary: func(snap *models.Snapshot) []any {
		return []any{ExecutiveSummaryReport(snap.Messages)}
	},
}

// DashboardReports lists the reports the analytics dashboard loads in one
// batch.
var DashboardReports = []string{
	ReportExecutiveSummary,
	ReportDailyMessages,
	ReportHourlyActivity,
	ReportServiceHours,
	ReportFrequentQuestionTypes,
	ReportLongConversations,
	ReportAIResponseRate,
	ReportReturningClients,
	ReportAIResponseSpeed,
}

// Names returns all recognized report names, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes one report over the snapshot.
func Run(name string, snap *models.Snapshot) (models.RowSet, error) {
	p, ok := catalog[name]
	if !ok {
		return models.RowSet{}, fmt.Errorf("%w: %q", ErrReportNotFound, name)
	}
	return models.RowSet{Report: name, Rows: p(snap)}, nil
}

// RunMany executes several reports concurrently over the same snapshot.
// Names are validated before any pipeline starts; pipelines only read the
// snapshot, so the fan-out needs no coordination beyond collecting results.
func RunMany(names []string, snap *models.Snapshot) (map[string][]any, error) {
	for _, name := range names {
		if _, ok := catalog[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrReportNotFound, name)
		}
	}

	results := make(map[string][]any, len(names))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			rows := catalog[name](snap)
			mu.Lock()
			results[name] = rows
			mu.Unlock()
		}(name)
	}
	wg.Wait()
	return results, nil
}
