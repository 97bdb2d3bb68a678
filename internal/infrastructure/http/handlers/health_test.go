package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("Liveness returned error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestReadiness(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	cases := []struct {
		name     string
		deps     []Dependency
		wantCode int
		wantBody []string
	}{
		{
			name:     "all healthy",
			deps:     []Dependency{{Name: "records", Pinger: ok}, {Name: "sessions", Pinger: ok}},
			wantCode: http.StatusOK,
			wantBody: []string{`"status":"ok"`, `"records":{"status":"ok"}`},
		},
		{
			name:     "one down",
			deps:     []Dependency{{Name: "records", Pinger: ok}, {Name: "redis", Pinger: down}},
			wantCode: http.StatusServiceUnavailable,
			wantBody: []string{`"status":"degraded"`, `"redis":{"status":"unhealthy","error":"connection refused"}`},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

			if err := NewHealthDependenciesHandler(tc.deps...).Readiness(c); err != nil {
				t.Fatalf("Readiness returned error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			for _, want := range tc.wantBody {
				if !strings.Contains(rec.Body.String(), want) {
					t.Fatalf("body %s missing %s", rec.Body.String(), want)
				}
			}
		})
	}
}
