package observability

import (
	"context"

	"github.com/aretw0/chime/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a set of Prometheus collectors fed by engine lifecycle hooks.
type Metrics struct {
	sessionsTotal *prometheus.CounterVec
	notesTotal    *prometheus.CounterVec
	noteDuration  prometheus.Histogram
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chime_sessions_total",
				Help: "Playback sessions by outcome",
			},
			[]string{"outcome"},
		),
		notesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chime_notes_total",
				Help: "Notes handed to the transport, by kind",
			},
			[]string{"kind"},
		),
		noteDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chime_note_duration_seconds",
				Help:    "Distribution of note durations",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			},
		),
	}
	reg.MustRegister(m.sessionsTotal, m.notesTotal, m.noteDuration)
	return m
}

// SessionsTotal exposes the session counter, mainly for tests.
func (m *Metrics) SessionsTotal() *prometheus.CounterVec {
	return m.sessionsTotal
}

// NotesTotal exposes the note counter, mainly for tests.
func (m *Metrics) NotesTotal() *prometheus.CounterVec {
	return m.notesTotal
}

// Hooks returns lifecycle hooks feeding the collectors. Combine with other
// hooks by hand if the host already observes the engine.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNoteStart: func(_ context.Context, e *domain.NoteEvent) {
			kind := "tone"
			if e.Note.IsRest() {
				kind = "rest"
			}
			m.notesTotal.WithLabelValues(kind).Inc()
			m.noteDuration.Observe(e.Note.Duration.Seconds())
		},
		OnSessionEnd: func(_ context.Context, e *domain.SessionEvent) {
			m.sessionsTotal.WithLabelValues(e.Outcome).Inc()
		},
	}
}
