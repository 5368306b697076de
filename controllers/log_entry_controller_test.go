package controllers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/blogem/logentry-manager/database"
	"github.com/blogem/logentry-manager/models"
	"github.com/blogem/logentry-manager/repositories"
	"github.com/blogem/logentry-manager/services"
)

// LogEntryControllerTestSuite exercises the handlers against a real SQLite store
type LogEntryControllerTestSuite struct {
	suite.Suite
	db     *sql.DB
	router *chi.Mux
	logs   *observer.ObservedLogs
}

func (s *LogEntryControllerTestSuite) SetupTest() {
	db, err := database.InitializeDatabase(context.Background(), filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.T().Cleanup(func() { db.Close() })
	s.db = db

	core, logs := observer.New(zapcore.InfoLevel)
	s.logs = logs

	ctrl := NewControllers(services.NewServices(repositories.NewRepositories(db)), zap.New(core))
	s.router = chi.NewRouter()
	s.router.Get("/health", ctrl.System.Health)
	s.router.Route("/logentries", ctrl.LogEntry.Routes)
}

func (s *LogEntryControllerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *LogEntryControllerTestSuite) decode(rec *httptest.ResponseRecorder, v interface{}) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (s *LogEntryControllerTestSuite) errorMessage(rec *httptest.ResponseRecorder) string {
	var body map[string]interface{}
	s.decode(rec, &body)
	msg, _ := body["error"].(string)
	return msg
}

func (s *LogEntryControllerTestSuite) create(name string) models.LogEntry {
	body := fmt.Sprintf(`{"name":%q,"description":"hike","date":"2025-01-01","location":"Trailhead"}`, name)
	rec := s.do(http.MethodPost, "/logentries", body)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var entry models.LogEntry
	s.decode(rec, &entry)
	return entry
}

func (s *LogEntryControllerTestSuite) rowCount() int {
	var n int
	s.Require().NoError(s.db.QueryRow("SELECT COUNT(*) FROM log_entries").Scan(&n))
	return n
}

func (s *LogEntryControllerTestSuite) TestCreate() {
	entry := s.create("Alice")

	s.NotZero(entry.ID)
	s.False(entry.CreatedAt.IsZero())
	s.Equal("Alice", entry.Name)
	s.Equal("hike", entry.Description)
	s.Equal("2025-01-01", entry.Date)
	s.Equal("Trailhead", entry.Location)
	s.Equal(1, s.logs.FilterMessage("Log entry created").Len())
}

func (s *LogEntryControllerTestSuite) TestCreateMissingField() {
	for _, field := range []string{"name", "description", "date", "location"} {
		payload := map[string]string{"name": "Alice", "description": "hike", "date": "2025-01-01", "location": "Trailhead"}
		delete(payload, field)
		body, _ := json.Marshal(payload)

		rec := s.do(http.MethodPost, "/logentries", string(body))
		s.Equal(http.StatusBadRequest, rec.Code, field)
		s.Contains(s.errorMessage(rec), field)
	}

	s.Equal(0, s.rowCount())
}

func (s *LogEntryControllerTestSuite) TestCreateInvalidJSON() {
	rec := s.do(http.MethodPost, "/logentries", `{"name":`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(msgInvalidBody, s.errorMessage(rec))

	rec = s.do(http.MethodPost, "/logentries", "")
	s.Equal(http.StatusBadRequest, rec.Code, "an empty body has no fields")
	s.Equal(0, s.rowCount())
}

func (s *LogEntryControllerTestSuite) TestTrailingDataIsRejected() {
	body := `{"name":"Alice","description":"hike","date":"2025-01-01","location":"Trailhead"} trailing-garbage`
	rec := s.do(http.MethodPost, "/logentries", body)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(msgInvalidBody, s.errorMessage(rec))

	rec = s.do(http.MethodPost, "/logentries", `{"name":"Alice","description":"hike","date":"2025-01-01","location":"Trailhead"}{"name":"Bob"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(0, s.rowCount())

	created := s.create("Alice")
	rec = s.do(http.MethodPut, fmt.Sprintf("/logentries/%d", created.ID), `{"name":"Bob"} x`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/logentries", "{\"name\":\"Carol\",\"description\":\"d\",\"date\":\"2025-01-02\",\"location\":\"l\"}\n")
	s.Equal(http.StatusCreated, rec.Code, "trailing whitespace is allowed")
}

func (s *LogEntryControllerTestSuite) TestWhitespaceStoredAsSubmitted() {
	rec := s.do(http.MethodPost, "/logentries", `{"name":" Alice ","description":"hike","date":"2025-01-01","location":"Trailhead"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var created models.LogEntry
	s.decode(rec, &created)
	s.Equal(" Alice ", created.Name)

	path := fmt.Sprintf("/logentries/%d", created.ID)
	rec = s.do(http.MethodPut, path, `{"name":" Bob "}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var updated models.LogEntry
	s.decode(rec, &updated)
	s.Equal(" Bob ", updated.Name)

	var stored models.LogEntry
	s.decode(s.do(http.MethodGet, path, ""), &stored)
	s.Equal(updated, stored)

	rec = s.do(http.MethodPost, "/logentries", `{"name":"\t","description":"hike","date":"2025-01-01","location":"Trailhead"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.errorMessage(rec), "name")
}

func (s *LogEntryControllerTestSuite) TestList() {
	rec := s.do(http.MethodGet, "/logentries", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())

	first := s.create("Alice")
	second := s.create("Bob")

	rec = s.do(http.MethodGet, "/logentries", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))

	var entries []models.LogEntry
	s.decode(rec, &entries)
	s.Require().Len(entries, 2)
	s.Equal(second.ID, entries[0].ID)
	s.Equal(first.ID, entries[1].ID)
}

func (s *LogEntryControllerTestSuite) TestGet() {
	created := s.create("Alice")

	rec := s.do(http.MethodGet, fmt.Sprintf("/logentries/%d", created.ID), "")
	s.Equal(http.StatusOK, rec.Code)

	var got models.LogEntry
	s.decode(rec, &got)
	s.Equal(created.ID, got.ID)
	s.True(created.CreatedAt.Equal(got.CreatedAt))

	for _, path := range []string{"/logentries/999", "/logentries/abc", "/logentries/0"} {
		rec = s.do(http.MethodGet, path, "")
		s.Equal(http.StatusNotFound, rec.Code, path)
		s.Equal(msgNotFound, s.errorMessage(rec))
	}
}

func (s *LogEntryControllerTestSuite) TestRecent() {
	rec := s.do(http.MethodGet, "/logentries/user/recent", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"name":""}`, rec.Body.String())

	s.create("Alice")
	bob := s.create("Bob")

	rec = s.do(http.MethodGet, "/logentries/user/recent", "")
	s.JSONEq(`{"name":"Bob"}`, rec.Body.String())

	s.Equal(http.StatusOK, s.do(http.MethodDelete, fmt.Sprintf("/logentries/%d", bob.ID), "").Code)

	rec = s.do(http.MethodGet, "/logentries/user/recent", "")
	s.JSONEq(`{"name":"Alice"}`, rec.Body.String())
}

func (s *LogEntryControllerTestSuite) TestUpdate() {
	created := s.create("Alice")
	path := fmt.Sprintf("/logentries/%d", created.ID)

	rec := s.do(http.MethodPut, path, `{"location":"Summit","unknown":"ignored"}`)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	var updated models.LogEntry
	s.decode(rec, &updated)
	s.Equal("Summit", updated.Location)
	s.Equal(created.Name, updated.Name)
	s.Equal(created.Description, updated.Description)
	s.Equal(created.Date, updated.Date)
	s.True(created.CreatedAt.Equal(updated.CreatedAt))
}

func (s *LogEntryControllerTestSuite) TestUpdateNoFields() {
	created := s.create("Alice")
	path := fmt.Sprintf("/logentries/%d", created.ID)

	for _, body := range []string{`{}`, `{"color":"red"}`, ""} {
		rec := s.do(http.MethodPut, path, body)
		s.Equal(http.StatusBadRequest, rec.Code, body)
		s.Equal("No fields to update", s.errorMessage(rec))
	}

	rec := s.do(http.MethodGet, path, "")
	var stored models.LogEntry
	s.decode(rec, &stored)
	s.Equal(created.Location, stored.Location)
}

func (s *LogEntryControllerTestSuite) TestUpdateBlankField() {
	created := s.create("Alice")

	rec := s.do(http.MethodPut, fmt.Sprintf("/logentries/%d", created.ID), `{"name":"  "}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *LogEntryControllerTestSuite) TestUpdateUnknownID() {
	for _, body := range []string{`{"name":"Bob"}`, `{}`, `not json`} {
		rec := s.do(http.MethodPut, "/logentries/999", body)
		s.Equal(http.StatusNotFound, rec.Code, body)
		s.Equal(msgNotFound, s.errorMessage(rec))
	}
}

func (s *LogEntryControllerTestSuite) TestUpdateInvalidJSONOnExistingEntry() {
	created := s.create("Alice")

	rec := s.do(http.MethodPut, fmt.Sprintf("/logentries/%d", created.ID), `[1,2]`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(msgInvalidBody, s.errorMessage(rec))
}

func (s *LogEntryControllerTestSuite) TestDelete() {
	created := s.create("Alice")
	path := fmt.Sprintf("/logentries/%d", created.ID)

	rec := s.do(http.MethodDelete, path, "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Log entry deleted successfully"}`, rec.Body.String())

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, path, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, path, "").Code)
}

func (s *LogEntryControllerTestSuite) TestStorageFailureIsGeneric() {
	s.Require().NoError(s.db.Close())

	cases := []struct {
		method, path, body, message string
	}{
		{http.MethodGet, "/logentries", "", msgFailedList},
		{http.MethodGet, "/logentries/1", "", msgFailedGet},
		{http.MethodGet, "/logentries/user/recent", "", msgFailedRecent},
		{http.MethodPost, "/logentries", `{"name":"a","description":"b","date":"c","location":"d"}`, msgFailedCreate},
		{http.MethodPut, "/logentries/1", `{"name":"a"}`, msgFailedUpdate},
		{http.MethodDelete, "/logentries/1", "", msgFailedDelete},
	}

	for _, tc := range cases {
		rec := s.do(tc.method, tc.path, tc.body)
		s.Equal(http.StatusInternalServerError, rec.Code, tc.path)
		s.Equal(tc.message, s.errorMessage(rec))
		s.NotContains(rec.Body.String(), "sql")
	}

	s.Equal(len(cases), s.logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func (s *LogEntryControllerTestSuite) TestHealth() {
	s.create("Alice")

	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"healthy","service":"logentry-manager","entries":1}`, rec.Body.String())

	s.Require().NoError(s.db.Close())
	rec = s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func TestLogEntryControllerTestSuite(t *testing.T) {
	suite.Run(t, new(LogEntryControllerTestSuite))
}

func TestEntryID(t *testing.T) {
	tests := map[string]struct {
		id int
		ok bool
	}{
		"12":  {12, true},
		"0":   {0, false},
		"-3":  {0, false},
		"abc": {0, false},
		"1.5": {0, false},
	}

	for param, want := range tests {
		r := chi.NewRouter()
		var gotID int
		var gotOK bool
		r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			gotID, gotOK = entryID(req)
		})
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/"+param, nil))

		assert.Equal(t, want.ok, gotOK, param)
		assert.Equal(t, want.id, gotID, param)
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, http.StatusTeapot, "short and stout")

	require.Equal(t, http.StatusTeapot, rec.Code)
	assert.JSONEq(t, `{"error":"short and stout"}`, rec.Body.String())
}
