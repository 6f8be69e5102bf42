package metrics

import (
	"runtime"
	"runtime/debug"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registry = prometheus.NewRegistry()

	spawnAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skit",
		Name:      "spawn_attempts_total",
		Help:      "Runtime spawn attempts, labeled by runtime and outcome.",
	}, []string{"runtime", "outcome"})

	sessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "skit",
		Name:      "sessions_active",
		Help:      "Script sessions currently running.",
	})

	sessionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "skit",
		Name:      "session_duration_seconds",
		Help:      "Lifetime of script sessions from spawn to exit.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 4, 10),
	})

	killsInitiated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "skit",
		Name:      "kills_initiated_total",
		Help:      "Process-group terminations initiated by the launcher.",
	})

	parseErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skit",
		Name:      "protocol_parse_errors_total",
		Help:      "Protocol lines that failed to decode, labeled by class.",
	}, []string{"class"})

	messagesRead = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "skit",
		Name:      "protocol_messages_read_total",
		Help:      "Protocol messages successfully decoded from scripts.",
	})

	buildInfo = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "skit",
		Name:      "build_info",
		Help:      "Build metadata for the running skit binary.",
	}, []string{"go_version", "vcs", "vcs_revision", "vcs_time", "vcs_modified"})

	buildInfoOnce sync.Once
)

func init() {
	registry.MustRegister(
		spawnAttempts,
		sessionsActive,
		sessionDuration,
		killsInitiated,
		parseErrors,
		messagesRead,
		buildInfo,
	)
}

// Registry returns the Prometheus registry containing all skit metrics.
func Registry() *prometheus.Registry {
	return registry
}

// RecordSpawnAttempt counts one spawn attempt for a runtime.
func RecordSpawnAttempt(runtimeName string, ok bool) {
	if runtimeName == "" {
		runtimeName = "unknown"
	}
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	spawnAttempts.WithLabelValues(runtimeName, outcome).Inc()
}

// SessionStarted marks a session as live.
func SessionStarted() {
	sessionsActive.Inc()
}

// SessionEnded marks a session as finished and records its lifetime.
func SessionEnded(d time.Duration) {
	sessionsActive.Dec()
	sessionDuration.Observe(d.Seconds())
}

// RecordKill counts one launcher-initiated termination.
func RecordKill() {
	killsInitiated.Inc()
}

// RecordParseError counts one undecodable protocol line. Unknown-type lines
// are classified separately from malformed JSON.
func RecordParseError(unknown bool) {
	class := "malformed"
	if unknown {
		class = "unknown_type"
	}
	parseErrors.WithLabelValues(class).Inc()
}

// RecordMessageRead counts one successfully decoded protocol message.
func RecordMessageRead() {
	messagesRead.Inc()
}

// EmitBuildInfo publishes build metadata about the running binary.
func EmitBuildInfo() {
	buildInfoOnce.Do(func() {
		labels := prometheus.Labels{
			"go_version":   runtime.Version(),
			"vcs":          "",
			"vcs_revision": "",
			"vcs_time":     "",
			"vcs_modified": "",
		}
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.GoVersion != "" {
				labels["go_version"] = info.GoVersion
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs":
					labels["vcs"] = setting.Value
				case "vcs.revision":
					labels["vcs_revision"] = setting.Value
				case "vcs.time":
					labels["vcs_time"] = setting.Value
				case "vcs.modified":
					labels["vcs_modified"] = setting.Value
				}
			}
		}
		buildInfo.With(labels).Set(1)
	})
}
