package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimtrack/training-tracker/internal/repository/localmirror"
	"swimtrack/training-tracker/internal/repository/selector"
	"swimtrack/training-tracker/internal/service"
)

const testJWTSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := localmirror.NewStore(t.TempDir())
	require.NoError(t, err)
	sel := selector.New(nil, localmirror.NewProvider(store), false, nil)
	errLog := service.NewErrorLog()

	router := gin.New()
	SetupRoutes(router, testJWTSecret, Services{
		Auth:         service.NewAuthService(sel, errLog, testJWTSecret, 0),
		Sessions:     service.NewSessionService(sel, errLog),
		Exercises:    service.NewExerciseService(sel, nil, errLog),
		Strength:     service.NewStrengthService(sel, errLog),
		Catalog:      service.NewCatalogService(sel, errLog),
		Assignments:  service.NewAssignmentService(sel, errLog),
		Notification: service.NewNotificationService(sel, errLog),
		Records:      service.NewRecordsService(sel, errLog),
		Timesheet:    service.NewTimesheetService(sel, errLog),
		Selector:     sel,
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, router *gin.Engine, role string) string {
	t.Helper()
	email := fmt.Sprintf("%s@club.fr", role)
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Testeur", "email": email, "password": "motdepasse", "role": role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": email, "password": "motdepasse",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func TestStatusReportsLocalMode(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/status", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mode":"local"}`, rec.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/sessions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/sessions", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "athlete")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/sessions", token, gin.H{
		"athleteName": "Léa",
		"date":        "2024-05-12",
		"slot":        "morning",
		"effort":      4,
		"feeling":     3,
		"distance":    3200,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/sessions?athlete=Léa", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2024-05-12")

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/sessions/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/sessions/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/sessions/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCoachOnlyRoutes(t *testing.T) {
	router := newTestRouter(t)
	athleteToken := registerAndLogin(t, router, "athlete")
	coachToken := registerAndLogin(t, router, "coach")

	exercise := gin.H{"name": "Squat"}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/exercises", athleteToken, exercise)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/exercises", coachToken, exercise)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// both roles can read the catalog
	rec = doJSON(t, router, http.MethodGet, "/api/v1/exercises", athleteToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRunEndpoints(t *testing.T) {
	router := newTestRouter(t)
	coachToken := registerAndLogin(t, router, "coach")
	athleteToken := registerAndLogin(t, router, "athlete")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/strength/sessions", coachToken, gin.H{
		"title": "Force",
		"cycle": "force",
		"items": []gin.H{{"exerciseId": 101, "sets": 5, "reps": 3, "position": 0}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var session struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))

	rec = doJSON(t, router, http.MethodPost, "/api/v1/strength/runs", athleteToken, gin.H{
		"sessionId": session.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var run struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/strength/runs/%d/logs", run.ID), athleteToken, gin.H{
		"exerciseId": 101, "reps": 3, "weight": 90,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/strength/runs/%d/save", run.ID), athleteToken, gin.H{
		"logs": []gin.H{{"exerciseId": 101, "reps": 3, "weight": 90}},
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	// saving again hits the terminal state
	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/strength/runs/%d/save", run.ID), athleteToken, gin.H{
		"logs": []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/strength/onerm", athleteToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"max":99`)
}
