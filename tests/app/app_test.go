package app_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/arbiter/internal/config"
	"github.com/JaimeStill/arbiter/internal/decisions"
	"github.com/JaimeStill/arbiter/internal/infrastructure"
	"github.com/JaimeStill/arbiter/pkg/database"
	"github.com/JaimeStill/arbiter/pkg/module"
	"github.com/JaimeStill/arbiter/pkg/pagination"
	"github.com/JaimeStill/arbiter/web/app"
)

func validConfig() *config.Config {
	return &config.Config{
		Agent: config.AgentConfig{
			Name: "test-agent",
			Provider: config.ProviderConfig{
				Name:    "ollama",
				BaseURL: "http://localhost:11434",
				Options: make(map[string]any),
			},
			Model: config.ModelConfig{
				Name:    "llama3.1:8b",
				Options: make(map[string]any),
			},
		},
		Database: database.Config{
			Host:            "localhost",
			Port:            5432,
			Name:            "arbiter",
			User:            "arbiter",
			Password:        "arbiter",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: "15m",
			ConnTimeout:     "5s",
		},
		API: config.APIConfig{
			BasePath: "/api",
			Pagination: pagination.Config{
				DefaultPageSize: 20,
				MaxPageSize:     100,
			},
		},
		ShutdownTimeout: "30s",
		Version:         "0.1.0",
	}
}

func setupModule(t *testing.T) http.Handler {
	t.Helper()

	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("infrastructure.New() error = %v", err)
	}

	m, err := app.NewModule(validConfig(), infra)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	if m.Prefix() != "/review" {
		t.Fatalf("prefix: got %s, want /review", m.Prefix())
	}

	router := module.NewRouter()
	router.Mount(m)
	return router
}

func TestNewModule(t *testing.T) {
	setupModule(t)
}

func TestStaticStylesheet(t *testing.T) {
	handler := setupModule(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/review/static/app.css", nil)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/css") {
		t.Errorf("content-type = %q, want text/css", ct)
	}
	if !strings.Contains(rec.Body.String(), "verdict") {
		t.Error("stylesheet should contain verdict classes")
	}
}

type mockSystem struct {
	findFn   func(ctx context.Context, id int64) (*decisions.Decision, error)
	recentFn func(ctx context.Context, limit int) ([]decisions.Decision, error)
}

func (m *mockSystem) Handler() *decisions.Handler { return nil }

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters decisions.Filters) (*pagination.PageResult[decisions.Decision], error) {
	return nil, nil
}

func (m *mockSystem) Find(ctx context.Context, id int64) (*decisions.Decision, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Recent(ctx context.Context, limit int) ([]decisions.Decision, error) {
	return m.recentFn(ctx, limit)
}

func (m *mockSystem) Evaluate(ctx context.Context, cmd decisions.EvaluateCommand) (*decisions.Decision, error) {
	return nil, nil
}

func (m *mockSystem) Dispose(ctx context.Context, id int64, cmd decisions.DisposeCommand) (*decisions.Decision, error) {
	return nil, nil
}

func (m *mockSystem) Dispositions(ctx context.Context, id int64) ([]decisions.Disposition, error) {
	return nil, nil
}

func renderPage(t *testing.T, sys decisions.System, target string) *httptest.ResponseRecorder {
	t.Helper()

	handler, err := app.Handler(sys, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("Handler() error = %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", target, nil)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	return rec
}

func reviewDecision(flags []string) *decisions.Decision {
	return &decisions.Decision{
		ID:                7,
		CreatedAt:         time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC),
		AIOutput:          "All customer records were migrated successfully.",
		TaskContext:       "Draft a status update for the migration.",
		PolicyMode:        decisions.ModeStrict,
		Verdict:           "REVIEW_REQUIRED",
		Confidence:        0.45,
		RiskFlags:         flags,
		Explanation:       "Unverified claim about customer data handling.",
		RecommendedAction: "Verify migration logs before publishing.",
		ModelName:         "llama3.1:8b",
		ProviderName:      "ollama",
	}
}

func TestPageRendersRiskFlags(t *testing.T) {
	sys := &mockSystem{
		findFn: func(ctx context.Context, id int64) (*decisions.Decision, error) {
			return reviewDecision([]string{"pii_exposure", "low_confidence"}), nil
		},
		recentFn: func(ctx context.Context, limit int) ([]decisions.Decision, error) {
			return nil, nil
		},
	}

	body := renderPage(t, sys, "/?id=7").Body.String()

	if !strings.Contains(body, "pii_exposure, low_confidence") {
		t.Error("page should list the risk flags")
	}
	if strings.Contains(body, "No risk flags detected") {
		t.Error("flagged decision should not show the empty-flags text")
	}
	if !strings.Contains(body, "verdict-review") {
		t.Error("page should color-code the REVIEW_REQUIRED verdict")
	}
	if !strings.Contains(body, "45%") {
		t.Error("page should render the confidence percentage")
	}
}

func TestPageRendersEmptyRiskFlags(t *testing.T) {
	sys := &mockSystem{
		findFn: func(ctx context.Context, id int64) (*decisions.Decision, error) {
			return reviewDecision([]string{}), nil
		},
		recentFn: func(ctx context.Context, limit int) ([]decisions.Decision, error) {
			return nil, nil
		},
	}

	body := renderPage(t, sys, "/?id=7").Body.String()

	if !strings.Contains(body, "No risk flags detected") {
		t.Error("page should render the empty-flags text")
	}
}

func TestPageEmptyState(t *testing.T) {
	sys := &mockSystem{
		recentFn: func(ctx context.Context, limit int) ([]decisions.Decision, error) {
			return nil, nil
		},
	}

	body := renderPage(t, sys, "/").Body.String()

	if !strings.Contains(body, "No decisions recorded yet.") {
		t.Error("page should render the empty recent-decisions text")
	}
	if !strings.Contains(body, "balanced") {
		t.Error("page should render the policy mode options")
	}
}
