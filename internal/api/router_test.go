// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package api

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinescribe/internal/chat"
	"github.com/tomtom215/cinescribe/internal/config"
	"github.com/tomtom215/cinescribe/internal/database"
	"github.com/tomtom215/cinescribe/internal/recommend"
)

// testEnvelope mirrors models.APIResponse for decoding in tests.
type testEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// setupTestServer wires the full stack against an in-memory database.
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            3861,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: config.DatabaseConfig{
			Path:         ":memory:",
			MaxMemory:    "512MB",
			MaxOpenConns: 1,
		},
		Recommend: config.RecommendConfig{DefaultLimit: 20, MaxLimit: 50},
		Security:  config.SecurityConfig{RateLimitDisabled: true},
		Logging:   config.LoggingConfig{Level: "error", Format: "json"},
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	logger := zerolog.Nop()
	chatSvc := chat.NewService(database.NewChatStore(db), logger)

	engine, err := recommend.NewEngine(&recommend.Config{
		DefaultLimit: cfg.Recommend.DefaultLimit,
		MaxLimit:     cfg.Recommend.MaxLimit,
	}, logger)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	engine.SetDataProvider(database.NewRecommendationDataProvider(db))

	handler := NewHandler(db, chatSvc, engine, cfg)
	router := NewRouter(handler, NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		CORSMaxAge:         86400,
		RateLimitDisabled:  true,
	}))

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv
}

// doRequest performs a request with identity headers and decodes the
// response envelope.
func doRequest(t *testing.T, srv *httptest.Server, method, path string, userID int, role string, body interface{}) (int, *testEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set("X-User-ID", fmt.Sprintf("%d", userID))
	}
	if role != "" {
		req.Header.Set("X-User-Role", role)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, &testEnvelope{}
	}

	var envelope testEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, &envelope
}

// seedMovie ingests a movie through the admin endpoint.
func seedMovie(t *testing.T, srv *httptest.Server, id int, title string, year int, rating float64, genres string) {
	t.Helper()

	status, env := doRequest(t, srv, http.MethodPut, fmt.Sprintf("/api/v1/movies/%d", id), 1, RoleAdmin, map[string]interface{}{
		"title":  title,
		"year":   year,
		"rating": rating,
		"genres": genres,
	})
	if status != http.StatusOK {
		t.Fatalf("seed movie %d: status %d, error %+v", id, status, env.Error)
	}
}

func createSession(t *testing.T, srv *httptest.Server, userID int, title string) string {
	t.Helper()

	status, env := doRequest(t, srv, http.MethodPost, "/api/v1/sessions", userID, "", map[string]string{"title": title})
	if status != http.StatusCreated {
		t.Fatalf("create session: status %d, error %+v", status, env.Error)
	}
	var session struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &session); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return session.ID
}

func TestHealthEndpoints(t *testing.T) {
	srv := setupTestServer(t)

	for _, path := range []string{"/api/v1/health", "/api/v1/health/live", "/api/v1/health/ready"} {
		status, env := doRequest(t, srv, http.MethodGet, path, 0, "", nil)
		if status != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, status)
		}
		if env.Status != "success" {
			t.Errorf("%s: expected success envelope, got %q", path, env.Status)
		}
	}
}

func TestRequestIDPropagation(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/health/live")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	defer resp.Body.Close()
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID response header")
	}

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/health/live", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("X-Request-ID", "req-test-1234")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("health request with id: %v", err)
	}
	defer resp2.Body.Close()
	if got := resp2.Header.Get("X-Request-ID"); got != "req-test-1234" {
		t.Errorf("expected caller's request id echoed back, got %q", got)
	}
}

func TestIdentityRequired(t *testing.T) {
	srv := setupTestServer(t)

	status, env := doRequest(t, srv, http.MethodGet, "/api/v1/sessions", 0, "", nil)
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401 without identity, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "UNAUTHORIZED" {
		t.Errorf("expected UNAUTHORIZED error, got %+v", env.Error)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/sessions", nil)
	req.Header.Set("X-User-ID", "not-a-number")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed user ID, got %d", resp.StatusCode)
	}
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	srv := setupTestServer(t)

	sessionID := createSession(t, srv, 7, "Movie night")

	status, env := doRequest(t, srv, http.MethodGet, "/api/v1/sessions", 7, "", nil)
	if status != http.StatusOK {
		t.Fatalf("list sessions: status %d", status)
	}
	var sessions []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &sessions); err != nil {
		t.Fatalf("decode sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != sessionID || sessions[0].Title != "Movie night" {
		t.Errorf("unexpected session list: %+v", sessions)
	}

	// Another user sees nothing.
	status, env = doRequest(t, srv, http.MethodGet, "/api/v1/sessions", 9, "", nil)
	if status != http.StatusOK {
		t.Fatalf("list sessions other user: status %d", status)
	}
	if err := json.Unmarshal(env.Data, &sessions); err != nil {
		t.Fatalf("decode sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected empty list for other user, got %+v", sessions)
	}

	status, _ = doRequest(t, srv, http.MethodPost, "/api/v1/sessions/"+sessionID+"/end", 7, "", nil)
	if status != http.StatusOK {
		t.Errorf("end session: expected 200, got %d", status)
	}

	// Ending someone else's session is forbidden.
	status, env = doRequest(t, srv, http.MethodPost, "/api/v1/sessions/"+sessionID+"/end", 9, "", nil)
	if status != http.StatusForbidden {
		t.Errorf("expected 403 ending foreign session, got %d (%+v)", status, env.Error)
	}
}

func TestPostMessageExtractsSignals(t *testing.T) {
	srv := setupTestServer(t)
	sessionID := createSession(t, srv, 7, "")

	status, env := doRequest(t, srv, http.MethodPost, "/api/v1/sessions/"+sessionID+"/messages", 7, "", map[string]string{
		"role":    "user",
		"content": "I love sci-fi movies after 2000 but I hate horror",
	})
	if status != http.StatusCreated {
		t.Fatalf("post message: status %d, error %+v", status, env.Error)
	}

	var result struct {
		Message struct {
			Role string `json:"role"`
		} `json:"message"`
		Signals []struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"signals"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	// Polarity is message-wide and negative wins, so the hate marker turns
	// every genre mention in this message into a dislike.
	want := []struct{ typ, value string }{
		{"dislike_genre", "Science Fiction"},
		{"dislike_genre", "Horror"},
		{"year_min", "2000"},
	}
	if len(result.Signals) != len(want) {
		t.Fatalf("expected %d signals, got %+v", len(want), result.Signals)
	}
	for i, w := range want {
		if result.Signals[i].Type != w.typ || result.Signals[i].Value != w.value {
			t.Errorf("signal %d: got (%s, %s), want (%s, %s)",
				i, result.Signals[i].Type, result.Signals[i].Value, w.typ, w.value)
		}
	}

	// A purely positive follow-up inserts the new (like_genre, label) pair;
	// the dislike recorded earlier does not shadow it.
	status, env = doRequest(t, srv, http.MethodPost, "/api/v1/sessions/"+sessionID+"/messages", 7, "", map[string]string{
		"role":    "user",
		"content": "like I said, I love sci-fi",
	})
	if status != http.StatusCreated {
		t.Fatalf("post follow-up message: status %d", status)
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode follow-up result: %v", err)
	}
	if len(result.Signals) != 1 {
		t.Fatalf("expected 1 new signal on follow-up, got %+v", result.Signals)
	}
	if result.Signals[0].Type != "like_genre" || result.Signals[0].Value != "Science Fiction" {
		t.Errorf("unexpected follow-up signal: %+v", result.Signals)
	}

	// Repeating the same preference adds nothing.
	status, env = doRequest(t, srv, http.MethodPost, "/api/v1/sessions/"+sessionID+"/messages", 7, "", map[string]string{
		"role":    "user",
		"content": "seriously, I love science fiction",
	})
	if status != http.StatusCreated {
		t.Fatalf("post repeat message: status %d", status)
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode repeat result: %v", err)
	}
	if len(result.Signals) != 0 {
		t.Errorf("expected no new signals on repeat, got %+v", result.Signals)
	}

	// History shows all three messages in order.
	status, env = doRequest(t, srv, http.MethodGet, "/api/v1/sessions/"+sessionID+"/messages", 7, "", nil)
	if status != http.StatusOK {
		t.Fatalf("list messages: status %d", status)
	}
	var messages []struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(env.Data, &messages); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(messages) != 3 {
		t.Errorf("expected 3 messages, got %d", len(messages))
	}
}

func TestPostMessageValidation(t *testing.T) {
	srv := setupTestServer(t)
	sessionID := createSession(t, srv, 7, "")

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "bad role", body: map[string]string{"role": "system", "content": "hi"}},
		{name: "empty content", body: map[string]string{"role": "user", "content": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doRequest(t, srv, http.MethodPost, "/api/v1/sessions/"+sessionID+"/messages", 7, "", tt.body)
			if status != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", status)
			}
			if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("expected VALIDATION_ERROR, got %+v", env.Error)
			}
		})
	}

	// Unknown session is 404; malformed session ID is 400.
	status, _ := doRequest(t, srv, http.MethodPost,
		"/api/v1/sessions/00000000-0000-0000-0000-000000000000/messages", 7, "",
		map[string]string{"role": "user", "content": "hi"})
	if status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown session, got %d", status)
	}
	status, _ = doRequest(t, srv, http.MethodPost, "/api/v1/sessions/not-a-uuid/messages", 7, "",
		map[string]string{"role": "user", "content": "hi"})
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed session ID, got %d", status)
	}
}

func TestRecommendationFlow(t *testing.T) {
	srv := setupTestServer(t)

	seedMovie(t, srv, 1, "Orbital Drift", 2010, 8.8, "Action, Science Fiction, Thriller")
	seedMovie(t, srv, 2, "Counterweight", 1999, 9.2, "Action, Science Fiction")
	seedMovie(t, srv, 3, "Harbor Lights", 1972, 9.2, "Crime, Drama")
	seedMovie(t, srv, 4, "Stardrift", 2014, 8.6, "Adventure, Drama, Science Fiction")

	sessionID := createSession(t, srv, 7, "")

	// No signals yet: cold start returns the whole catalog by rating.
	status, env := doRequest(t, srv, http.MethodGet, "/api/v1/sessions/"+sessionID+"/recommendations", 7, "", nil)
	if status != http.StatusOK {
		t.Fatalf("cold start recommendations: status %d", status)
	}
	var rec struct {
		Basis struct {
			LikedGenres []string `json:"liked_genres"`
		} `json:"basis"`
		Movies []struct {
			ID int `json:"id"`
		} `json:"movies"`
		ColdStart bool `json:"cold_start"`
	}
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		t.Fatalf("decode recommendations: %v", err)
	}
	if !rec.ColdStart {
		t.Error("expected cold start with no signals")
	}
	if len(rec.Movies) != 4 || rec.Movies[0].ID != 2 {
		t.Errorf("unexpected cold start movies: %+v", rec.Movies)
	}

	// State a preference, then recommendations follow it.
	status, _ = doRequest(t, srv, http.MethodPost, "/api/v1/sessions/"+sessionID+"/messages", 7, "", map[string]string{
		"role":    "user",
		"content": "I love science fiction after 2005",
	})
	if status != http.StatusCreated {
		t.Fatalf("post message: status %d", status)
	}

	status, env = doRequest(t, srv, http.MethodGet, "/api/v1/sessions/"+sessionID+"/recommendations", 7, "", nil)
	if status != http.StatusOK {
		t.Fatalf("recommendations: status %d", status)
	}
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		t.Fatalf("decode recommendations: %v", err)
	}
	if rec.ColdStart {
		t.Error("expected personalized result after signals")
	}
	if len(rec.Basis.LikedGenres) != 1 || rec.Basis.LikedGenres[0] != "Science Fiction" {
		t.Errorf("unexpected basis: %+v", rec.Basis)
	}
	if len(rec.Movies) != 2 || rec.Movies[0].ID != 1 || rec.Movies[1].ID != 4 {
		t.Errorf("expected movies [1 4], got %+v", rec.Movies)
	}

	// Rating a movie removes it from future recommendations.
	status, _ = doRequest(t, srv, http.MethodPut, "/api/v1/ratings/1", 7, "", map[string]float64{"score": 9})
	if status != http.StatusOK {
		t.Fatalf("rate movie: status %d", status)
	}

	status, env = doRequest(t, srv, http.MethodGet, "/api/v1/sessions/"+sessionID+"/recommendations", 7, "", nil)
	if status != http.StatusOK {
		t.Fatalf("recommendations after rating: status %d", status)
	}
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		t.Fatalf("decode recommendations: %v", err)
	}
	if len(rec.Movies) != 1 || rec.Movies[0].ID != 4 {
		t.Errorf("expected rated movie excluded, got %+v", rec.Movies)
	}

	// Another user cannot read this session's recommendations.
	status, env = doRequest(t, srv, http.MethodGet, "/api/v1/sessions/"+sessionID+"/recommendations", 9, "", nil)
	if status != http.StatusForbidden {
		t.Errorf("expected 403 for foreign session, got %d (%+v)", status, env.Error)
	}
}

func TestMovieEndpoints(t *testing.T) {
	srv := setupTestServer(t)

	// Non-admin cannot ingest.
	status, env := doRequest(t, srv, http.MethodPut, "/api/v1/movies/1", 7, "", map[string]interface{}{
		"title": "Harbor Lights", "year": 1972, "rating": 9.2, "genres": "Crime, Drama",
	})
	if status != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin ingest, got %d (%+v)", status, env.Error)
	}

	seedMovie(t, srv, 1, "Harbor Lights", 1972, 9.2, "Crime, Drama")

	status, env = doRequest(t, srv, http.MethodGet, "/api/v1/movies/1", 7, "", nil)
	if status != http.StatusOK {
		t.Fatalf("get movie: status %d", status)
	}
	var movie struct {
		Title string `json:"title"`
		Year  int    `json:"year"`
	}
	if err := json.Unmarshal(env.Data, &movie); err != nil {
		t.Fatalf("decode movie: %v", err)
	}
	if movie.Title != "Harbor Lights" || movie.Year != 1972 {
		t.Errorf("unexpected movie: %+v", movie)
	}

	status, env = doRequest(t, srv, http.MethodGet, "/api/v1/movies/999", 7, "", nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404 for missing movie, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND error, got %+v", env.Error)
	}

	// Rating a missing movie is 404; a bad score is 400.
	status, _ = doRequest(t, srv, http.MethodPut, "/api/v1/ratings/999", 7, "", map[string]float64{"score": 8})
	if status != http.StatusNotFound {
		t.Errorf("expected 404 rating missing movie, got %d", status)
	}
	status, env = doRequest(t, srv, http.MethodPut, "/api/v1/ratings/1", 7, "", map[string]float64{"score": 11})
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for out-of-range score, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %+v", env.Error)
	}

	// Rate then list.
	status, _ = doRequest(t, srv, http.MethodPut, "/api/v1/ratings/1", 7, "", map[string]float64{"score": 8})
	if status != http.StatusOK {
		t.Fatalf("rate movie: status %d", status)
	}
	status, env = doRequest(t, srv, http.MethodGet, "/api/v1/ratings", 7, "", nil)
	if status != http.StatusOK {
		t.Fatalf("list ratings: status %d", status)
	}
	var ratings []struct {
		MovieID int     `json:"movie_id"`
		Score   float64 `json:"score"`
	}
	if err := json.Unmarshal(env.Data, &ratings); err != nil {
		t.Fatalf("decode ratings: %v", err)
	}
	if len(ratings) != 1 || ratings[0].MovieID != 1 || ratings[0].Score != 8 {
		t.Errorf("unexpected ratings: %+v", ratings)
	}
}
