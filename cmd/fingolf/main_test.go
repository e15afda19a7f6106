package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/AashmanShukla3223/Financial-Golf/internal/config"
	"github.com/AashmanShukla3223/Financial-Golf/internal/usecase/interest"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalcCmd(t *testing.T) {
	out, err := runCmd(t, "calc", "--principal", "1000", "--rate", "0.05", "--years", "10")
	if err != nil {
		t.Fatalf("calc error: %v; out=%s", err, out)
	}
	var dto interest.ResultDTO
	if err := json.Unmarshal([]byte(out), &dto); err != nil {
		t.Fatalf("bad json: %v; out=%s", err, out)
	}
	if dto.AmountAfterYears != 1628.89 || dto.InterestEarned != 628.89 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestCalcCmd_Defaults(t *testing.T) {
	out, err := runCmd(t, "calc")
	if err != nil {
		t.Fatalf("calc error: %v", err)
	}
	if !strings.Contains(out, `"amount_after_years": 0`) {
		t.Fatalf("out = %s", out)
	}
}

func TestCalcCmd_Errors(t *testing.T) {
	if _, err := runCmd(t, "calc", "--principal", "abc"); err == nil {
		t.Fatal("expected flag parse error")
	}
	if _, err := runCmd(t, "calc", "--principal", "100", "--rate", "-1", "--years", "-1"); err == nil {
		t.Fatal("expected non-finite error")
	}
}

func TestServeCmd_RejectsExternalHost(t *testing.T) {
	_, err := runCmd(t, "serve", "--host", "0.0.0.0")
	if err == nil || !strings.Contains(err.Error(), "loopback") {
		t.Fatalf("err = %v, want loopback rejection", err)
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(config.NewViper(), "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.SQLitePath = fmt.Sprintf("file:fingolf_%d?mode=memory&cache=shared", time.Now().UnixNano())
	return cfg
}

func TestNewApp_ServesEndpoints(t *testing.T) {
	a, err := newApp(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	t.Cleanup(a.Close)

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	a.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/quiz", nil))
	var qs []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &qs); err != nil || len(qs) != 10 {
		t.Fatalf("quiz: code=%d err=%v len=%d", rec.Code, err, len(qs))
	}

	req := httptest.NewRequest(http.MethodPost, "/api/compound-interest", strings.NewReader(`{"principal":500,"rate":0,"years":5}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	if got := strings.TrimSpace(rec.Body.String()); got != `{"principal":500,"amount_after_years":500,"interest_earned":0}` {
		t.Fatalf("compound = %d %s", rec.Code, got)
	}
}

func TestNewApp_RedisRateLimit(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.RedisAddr = s.Addr()
	// one request per hour: both requests share a window
	cfg.RateLimitRPS = 1.0 / 3600
	cfg.RateLimitBurst = 1

	a, err := newApp(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	t.Cleanup(a.Close)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		a.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/quiz", nil))
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v, want [200 429]", codes)
	}

	keys := s.Keys()
	if len(keys) != 1 {
		t.Fatalf("keys = %v, want one counter", keys)
	}
	if v, err := s.Get(keys[0]); err != nil || v != "2" {
		t.Fatalf("counter = %q (%v), want 2", v, err)
	}
	if ttl := s.TTL(keys[0]); ttl != 2*time.Hour {
		t.Fatalf("TTL = %v, want two one-hour windows", ttl)
	}
}

func TestNewApp_RedisUnavailable(t *testing.T) {
	cfg := testConfig(t)
	cfg.RedisAddr = "127.0.0.1:1"
	cfg.RateLimitRPS = 5
	cfg.RateLimitBurst = 5
	if _, err := newApp(context.Background(), cfg); err == nil {
		t.Fatal("expected redis connection error")
	}
}
