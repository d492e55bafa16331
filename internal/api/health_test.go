package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyops/crewdeck/internal/db"
	"skyops/crewdeck/internal/models/entities"
)

func healthResponse(t *testing.T, deps *Dependencies) (*httptest.ResponseRecorder, entities.HealthCheckResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthCheck", nil)
	HealthCheckHandler(deps)(rec, req)

	var body entities.HealthCheckResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec, body
}

func TestHealthCheckHandler_Healthy(t *testing.T) {
	conn, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer conn.Close()
	db.DB = conn

	rec, body := healthResponse(t, &Dependencies{StartTime: time.Now()})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "up", body.Services["postgres"].Status)
}

func TestHealthCheckHandler_DegradedStatusAgreesWithCode(t *testing.T) {
	conn, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	require.NoError(t, conn.Close()) // dead handle: every ping fails
	db.DB = conn

	rec, body := healthResponse(t, &Dependencies{StartTime: time.Now()})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "down", body.Services["postgres"].Status)
	assert.NotEmpty(t, body.Services["postgres"].Details)
}
