package database

import (
	"context"
	"fmt"
	"time"

	"copilot/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

const (
	selectMessages = `SELECT id, whatsapp, mensagemrecebida, mensagemenviada, datahoramensagem
		FROM clientemensagem`
	selectAppointments = `SELECT id, whatsapp, nomecliente, dataagendamento, status, datacriacao, idagendahd, agendei
		FROM clienteagendamento`
)

// Store reads the chatbot tables and materializes snapshots for the report
// pipelines. All access is read-only.
type Store struct {
	db      *sqlx.DB
	logger  zerolog.Logger
	timeout time.Duration
}

// NewStore creates a store over an existing connection pool.
func NewStore(db *sqlx.DB, logger zerolog.Logger, timeout time.Duration) *Store {
	return &Store{db: db, logger: logger, timeout: timeout}
}

func (s *Store) ready() error {
	if s == nil || s.db == nil {
		return fmt.Errorf("database connection not available")
	}
	return nil
}

func (s *Store) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// LoadSnapshot materializes all messages and appointments into an immutable
// snapshot. Rows with NULL timestamps stay in the snapshot; the pipelines
// skip them from temporal aggregations, so the load only warns about them.
func (s *Store) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	var messages []models.Message
	if err := ExecuteReadOnlyQuery(ctx, s.db, &messages, selectMessages); err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	var appointments []models.Appointment
	if err := ExecuteReadOnlyQuery(ctx, s.db, &appointments, selectAppointments); err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	malformed := 0
	for _, m := range messages {
		if m.Timestamp == nil {
			malformed++
		}
	}
	for _, a := range appointments {
		if a.CreatedAt == nil {
			malformed++
		}
	}
	if malformed > 0 {
		s.logger.Warn().
			Int("malformed_records", malformed).
			Msg("Snapshot contains records without timestamps; they are excluded from temporal aggregations")
	}

	return &models.Snapshot{Messages: messages, Appointments: appointments}, nil
}

// ListAppointments returns all appointments, newest creation first.
func (s *Store) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	appointments := []models.Appointment{}
	query := selectAppointments + ` ORDER BY datacriacao DESC`
	if err := ExecuteReadOnlyQuery(ctx, s.db, &appointments, query); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// ListContacts returns the distinct contacts with their most recent message
// date, newest first.
func (s *Store) ListContacts(ctx context.Context) ([]models.Contact, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	contacts := []models.Contact{}
	query := `SELECT whatsapp, MAX(datahoramensagem) AS last_message_date
		FROM clientemensagem
		GROUP BY whatsapp
		ORDER BY last_message_date DESC`
	if err := ExecuteReadOnlyQuery(ctx, s.db, &contacts, query); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// ListMessages returns one contact's messages chronologically when whatsapp
// is set, or every message newest-first for the dashboard.
func (s *Store) ListMessages(ctx context.Context, whatsapp string) ([]models.Message, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	messages := []models.Message{}
	if whatsapp != "" {
		query := s.db.Rebind(selectMessages + ` WHERE whatsapp = ? ORDER BY datahoramensagem ASC`)
		if err := ExecuteReadOnlyQuery(ctx, s.db, &messages, query, whatsapp); err != nil {
			return nil, fmt.Errorf("failed to list messages for contact: %w", err)
		}
		return messages, nil
	}

	query := selectMessages + ` ORDER BY datahoramensagem DESC`
	if err := ExecuteReadOnlyQuery(ctx, s.db, &messages, query); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
