package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"biologia-quiz-client/internal/domain"
)

// TokenSource hands out the persisted bearer tokens. Implemented by
// app.SessionManager.
type TokenSource interface {
	Token() (string, bool)
	AdminToken() (string, bool)
}

// Client talks to the external quiz API over REST JSON with bearer tokens.
// It implements app.Backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// GenerateToken registers a participant and returns their token and ID.
func (c *Client) GenerateToken(ctx context.Context, reg domain.Registration) (domain.TokenGrant, error) {
	var grant domain.TokenGrant
	if err := c.post(ctx, "/generate-token", reg, "", &grant); err != nil {
		return domain.TokenGrant{}, err
	}
	return grant, nil
}

type submitRequest struct {
	Answers map[string]string `json:"answers"`
}

// SubmitAnswers sends the completed answer map under the user bearer token.
// Keys and values are already strings per the payload contract.
func (c *Client) SubmitAnswers(ctx context.Context, answers map[string]string) (domain.ScoreResult, error) {
	token, _ := c.tokens.Token()
	var result domain.ScoreResult
	if err := c.post(ctx, "/submit-answers", submitRequest{Answers: answers}, token, &result); err != nil {
		return domain.ScoreResult{}, err
	}
	return result, nil
}

type adminLoginResponse struct {
	Token string `json:"token"`
}

// AdminLogin exchanges credentials for an admin token.
func (c *Client) AdminLogin(ctx context.Context, creds domain.AdminCredentials) (string, error) {
	var resp adminLoginResponse
	if err := c.post(ctx, "/admin/login", creds, "", &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Results fetches the per-participant aggregates.
func (c *Client) Results(ctx context.Context) ([]domain.ResultRow, error) {
	var rows []domain.ResultRow
	if err := c.getAdmin(ctx, "/admin/results", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// TopScores fetches the top-scores board.
func (c *Client) TopScores(ctx context.Context) ([]domain.TopScore, error) {
	var top []domain.TopScore
	if err := c.getAdmin(ctx, "/admin/top-scores", &top); err != nil {
		return nil, err
	}
	return top, nil
}

// Stats fetches the aggregate dashboard numbers.
func (c *Client) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	if err := c.getAdmin(ctx, "/admin/stats", &stats); err != nil {
		return domain.Stats{}, err
	}
	return stats, nil
}

func (c *Client) post(ctx context.Context, path string, body any, bearer string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &domain.TransportError{Op: "POST " + path, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &domain.TransportError{Op: "POST " + path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return c.do(req, path, out)
}

func (c *Client) getAdmin(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &domain.TransportError{Op: "GET " + path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.tokens.AdminToken(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.TransportError{Op: req.Method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(req.Method+" "+path, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.TransportError{Op: req.Method + " " + path, Err: err}
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

// apiError maps a non-2xx response to the error taxonomy: 401/403 become
// AuthError, everything else TransportError with the backend's message when
// one is present.
func apiError(op string, resp *http.Response) error {
	var body errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &body)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &domain.AuthError{Status: resp.StatusCode, Message: body.Error}
	}

	msg := body.Error
	if msg == "" {
		msg = resp.Status
	}
	return &domain.TransportError{Op: op, Err: fmt.Errorf("unexpected response %d: %s", resp.StatusCode, msg)}
}
