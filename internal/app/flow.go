package app

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"sync/atomic"

	"biologia-quiz-client/internal/domain"
)

// Backend abstracts the external quiz API. The real implementation lives in
// transport/rest; tests use fakes.
type Backend interface {
	GenerateToken(ctx context.Context, reg domain.Registration) (domain.TokenGrant, error)
	SubmitAnswers(ctx context.Context, answers map[string]string) (domain.ScoreResult, error)
	AdminLogin(ctx context.Context, creds domain.AdminCredentials) (string, error)
	Results(ctx context.Context) ([]domain.ResultRow, error)
	TopScores(ctx context.Context) ([]domain.TopScore, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

// DashboardLoader fetches the admin aggregates, possibly through a cache.
type DashboardLoader interface {
	Load(ctx context.Context) (domain.Dashboard, error)
}

// Flow orchestrates the user-facing use cases: registration, taking the quiz,
// submission, admin login and the dashboard. All asynchronous failures are
// converted here into typed, user-reportable errors; none propagate as faults.
type Flow struct {
	backend   Backend
	session   *SessionManager
	dashboard DashboardLoader
	logger    *slog.Logger

	submitting atomic.Bool
}

// NewFlow wires the orchestration layer. dashboard may be nil when the admin
// surface is unused.
func NewFlow(backend Backend, session *SessionManager, dashboard DashboardLoader, logger *slog.Logger) *Flow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Flow{
		backend:   backend,
		session:   session,
		dashboard: dashboard,
		logger:    logger,
	}
}

// Session exposes the underlying manager for views that read cached state.
func (f *Flow) Session() *SessionManager {
	return f.session
}

// Register validates the form, exchanges it for a token and caches the
// profile. On success the quiz route is entered.
func (f *Flow) Register(ctx context.Context, reg domain.Registration) (domain.UserProfile, error) {
	if err := validateRegistration(reg); err != nil {
		return domain.UserProfile{}, err
	}

	grant, err := f.backend.GenerateToken(ctx, reg)
	if err != nil {
		f.logger.Warn("registration failed", "email", reg.Email, "error", err)
		return domain.UserProfile{}, err
	}

	f.session.SetToken(grant.Token)
	profile := domain.UserProfile{UserID: grant.UserID, Registration: reg}
	f.session.SetUserData(profile)
	f.logger.Info("registered", "userId", grant.UserID)
	f.session.navigate(RouteQuiz)
	return profile, nil
}

// StartQuiz guards entry into the quiz route and hands back a fresh navigator
// over the question list. Without a token the user is redirected to the entry
// route.
func (f *Flow) StartQuiz(questions []domain.Question) (*Navigator, error) {
	if !f.session.HasToken() {
		f.session.navigate(RouteEntry)
		return nil, domain.ErrNotAuthenticated
	}
	return NewNavigator(questions)
}

// Submit builds the payload and sends it. An incomplete answer set fails with
// a ValidationError before any network call. Duplicate submissions are gated
// by an in-flight flag. A rejected token triggers Logout; transport failures
// leave all state intact so the user can retry.
func (f *Flow) Submit(ctx context.Context, nav *Navigator) (domain.ScoreResult, error) {
	payload, err := nav.BuildSubmission()
	if err != nil {
		return domain.ScoreResult{}, err
	}

	if !f.submitting.CompareAndSwap(false, true) {
		return domain.ScoreResult{}, domain.ErrSubmissionInFlight
	}
	defer f.submitting.Store(false)

	result, err := f.backend.SubmitAnswers(ctx, payload)
	if err != nil {
		if domain.IsAuth(err) {
			f.logger.Warn("user token rejected, logging out", "error", err)
			f.session.Logout()
		}
		return domain.ScoreResult{}, err
	}

	f.session.SetScore(result)
	f.logger.Info("answers submitted", "score", result.Score, "correct", result.CorrectAnswers)
	f.session.navigate(RouteThankYou)
	return result, nil
}

// AdminLogin authenticates the administrator and enters the dashboard route.
func (f *Flow) AdminLogin(ctx context.Context, creds domain.AdminCredentials) error {
	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return domain.NewValidationError("username and password are required")
	}

	token, err := f.backend.AdminLogin(ctx, creds)
	if err != nil {
		f.logger.Warn("admin login failed", "username", creds.Username, "error", err)
		return err
	}

	f.session.SetAdminToken(token)
	f.session.navigate(RouteAdminDashboard)
	return nil
}

// LoadDashboard guards the dashboard route and fetches the aggregates. A
// rejected admin token triggers AdminLogout.
func (f *Flow) LoadDashboard(ctx context.Context) (domain.Dashboard, error) {
	if !f.session.HasAdminToken() {
		f.session.navigate(RouteAdminLogin)
		return domain.Dashboard{}, domain.ErrNotAuthenticated
	}

	board, err := f.dashboard.Load(ctx)
	if err != nil {
		if domain.IsAuth(err) {
			f.logger.Warn("admin token rejected, logging out", "error", err)
			f.session.AdminLogout()
		}
		return domain.Dashboard{}, err
	}
	return board, nil
}

// LastScore reads the cached result for the thank-you view. Absent means the
// user never submitted (or already went home).
func (f *Flow) LastScore() (domain.ScoreResult, bool) {
	return f.session.Score()
}

// FinishAndGoHome wipes all session state and returns to the entry route.
// This is the one path that destroys user and admin state together.
func (f *Flow) FinishAndGoHome() {
	f.session.ClearAll()
	f.session.navigate(RouteEntry)
}

func validateRegistration(reg domain.Registration) error {
	if strings.TrimSpace(reg.FullName) == "" || strings.TrimSpace(reg.Grade) == "" ||
		strings.TrimSpace(reg.Group) == "" || strings.TrimSpace(reg.Email) == "" {
		return domain.NewValidationError("all registration fields are required")
	}
	if len(strings.TrimSpace(reg.FullName)) < 3 {
		return domain.NewValidationError("full name must be at least 3 characters")
	}
	if _, err := mail.ParseAddress(reg.Email); err != nil {
		return domain.NewValidationError("invalid email address")
	}
	return nil
}
