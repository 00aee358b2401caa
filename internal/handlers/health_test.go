package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"copilot/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "returns healthy status", version: "1.0.0"},
		{name: "returns healthy with custom version", version: "2.5.3"},
		{name: "returns healthy with empty version", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runGET(HealthHandler(tt.version), "/healthz")

			assert.Equal(t, http.StatusOK, rec.Code)

			var resp models.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "healthy", resp.Status)
			assert.Equal(t, tt.version, resp.Version)
			assert.WithinDuration(t, time.Now().UTC(), resp.Timestamp, 5*time.Second)
		})
	}
}

func TestDBHealthHandler(t *testing.T) {
	t.Run("nil database connection", func(t *testing.T) {
		rec := runGET(DBHealthHandler(nil), "/healthz/db")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp models.DBHealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "unhealthy", resp.Status)
		assert.False(t, resp.Connected)
		assert.Equal(t, "Database connection not initialized", resp.Error)
	})

	t.Run("healthy database connection", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = mockDB.Close() }()
		db := sqlx.NewDb(mockDB, "sqlmock")

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
		mock.ExpectRollback()

		rec := runGET(DBHealthHandler(db), "/healthz/db")

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.DBHealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.True(t, resp.Connected)
		assert.Empty(t, resp.Error)
	})

	t.Run("database ping failure", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = mockDB.Close() }()
		db := sqlx.NewDb(mockDB, "sqlmock")

		mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

		rec := runGET(DBHealthHandler(db), "/healthz/db")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp models.DBHealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "unhealthy", resp.Status)
		assert.False(t, resp.Connected)
		assert.NotEmpty(t, resp.Error)
	})
}
