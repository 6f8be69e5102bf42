package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Paintersrp/skit/internal/metrics"
)

func TestRegistryExposesMetrics(t *testing.T) {
	metrics.EmitBuildInfo()
	metrics.RecordSpawnAttempt("bun", true)
	metrics.RecordSpawnAttempt("bun", false)
	metrics.RecordParseError(true)
	metrics.SessionStarted()
	metrics.SessionEnded(120 * time.Millisecond)
	metrics.RecordKill()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}).ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("unexpected status code from metrics handler: %d", rec.Code)
	}

	body := rec.Body.String()
	for _, line := range []string{
		`skit_spawn_attempts_total{outcome="success",runtime="bun"} 1`,
		`skit_spawn_attempts_total{outcome="failure",runtime="bun"} 1`,
		`skit_protocol_parse_errors_total{class="unknown_type"} 1`,
		`skit_kills_initiated_total 1`,
		"skit_build_info{",
	} {
		if !strings.Contains(body, line) {
			t.Fatalf("expected metric line %q in body:\n%s", line, body)
		}
	}
	if !strings.Contains(body, "go_version=") {
		t.Fatalf("expected go_version label on build info metric:\n%s", body)
	}
}
