package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"biologia-quiz-client/internal/domain"
)

type staticTokens struct {
	user  string
	admin string
}

func (s staticTokens) Token() (string, bool) {
	return s.user, s.user != ""
}

func (s staticTokens) AdminToken() (string, bool) {
	return s.admin, s.admin != ""
}

func TestGenerateToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/generate-token" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var reg domain.Registration
		if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if reg.FullName != "Ana Torres" || reg.Email != "ana@colegio.edu" {
			t.Fatalf("unexpected registration %+v", reg)
		}
		json.NewEncoder(w).Encode(map[string]any{"token": "tok-1", "user_id": 42})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{})
	grant, err := client.GenerateToken(context.Background(), domain.Registration{
		FullName: "Ana Torres", Grade: "11", Group: "B", Email: "ana@colegio.edu",
	})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if grant.Token != "tok-1" || grant.UserID != 42 {
		t.Fatalf("unexpected grant %+v", grant)
	}
}

func TestSubmitAnswersSendsBearerAndStringKeys(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer user-tok" {
			t.Fatalf("expected user bearer header, got %q", got)
		}
		var body struct {
			Answers map[string]string `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Answers["1"] != "CODON" {
			t.Fatalf("expected string-keyed answers, got %+v", body.Answers)
		}
		json.NewEncoder(w).Encode(domain.ScoreResult{Success: true, Score: 94.12, CorrectAnswers: 16, TotalQuestions: 17})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{user: "user-tok"})
	result, err := client.SubmitAnswers(context.Background(), map[string]string{"1": "CODON"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 94.12 || result.CorrectAnswers != 16 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestUnauthorizedMapsToAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{user: "stale"})
	_, err := client.SubmitAnswers(context.Background(), map[string]string{"1": "CODON"})

	var authErr *domain.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Status != http.StatusUnauthorized || authErr.Message != "token expired" {
		t.Fatalf("unexpected auth error %+v", authErr)
	}
}

func TestServerErrorMapsToTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{user: "tok"})
	if _, err := client.SubmitAnswers(context.Background(), map[string]string{"1": "CODON"}); !domain.IsTransport(err) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestConnectionFailureMapsToTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, staticTokens{})
	if _, err := client.GenerateToken(context.Background(), domain.Registration{}); !domain.IsTransport(err) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestAdminEndpointsUseAdminToken(t *testing.T) {
	score := 95.0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer admin-tok" {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "admin access required"})
			return
		}
		switch r.URL.Path {
		case "/admin/results":
			json.NewEncoder(w).Encode([]domain.ResultRow{{FullName: "Ana Torres", Score: &score}})
		case "/admin/top-scores":
			json.NewEncoder(w).Encode([]domain.TopScore{{FullName: "Ana Torres", Score: 95}})
		case "/admin/stats":
			json.NewEncoder(w).Encode(domain.Stats{TotalUsers: 3, AverageScore: 81.4})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{admin: "admin-tok"})

	rows, err := client.Results(context.Background())
	if err != nil || len(rows) != 1 || rows[0].FullName != "Ana Torres" {
		t.Fatalf("results: %v %+v", err, rows)
	}
	top, err := client.TopScores(context.Background())
	if err != nil || len(top) != 1 {
		t.Fatalf("top scores: %v %+v", err, top)
	}
	stats, err := client.Stats(context.Background())
	if err != nil || stats.TotalUsers != 3 {
		t.Fatalf("stats: %v %+v", err, stats)
	}

	// Without the token the same calls are rejected as auth failures.
	anon := NewClient(server.URL, time.Second, staticTokens{})
	if _, err := anon.Results(context.Background()); !domain.IsAuth(err) {
		t.Fatalf("expected AuthError without admin token, got %v", err)
	}
}

func TestAdminLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds domain.AdminCredentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decode creds: %v", err)
		}
		if creds.Username != "admin" || creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "admin-tok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, staticTokens{})

	token, err := client.AdminLogin(context.Background(), domain.AdminCredentials{Username: "admin", Password: "secret"})
	if err != nil || token != "admin-tok" {
		t.Fatalf("admin login: %v token=%q", err, token)
	}

	if _, err := client.AdminLogin(context.Background(), domain.AdminCredentials{Username: "admin", Password: "wrong"}); !domain.IsAuth(err) {
		t.Fatalf("expected AuthError for bad credentials, got %v", err)
	}
}
