package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/chime"
	"github.com/aretw0/chime/pkg/domain"
	"github.com/aretw0/chime/pkg/translate"
	"github.com/aretw0/chime/pkg/tunes"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Player defines the interface for the chime playback core.
type Player interface {
	Play(ctx context.Context, tune domain.Tune) (*chime.Session, error)
	Append(ctx context.Context, tune domain.Tune) (*chime.Session, error)
	Stop(ctx context.Context) error
	Status() domain.PlaybackStatus
}

// Server exposes a Player over HTTP.
type Server struct {
	Player   Player
	gatherer prometheus.Gatherer
}

// Option configures the HTTP handler.
type Option func(*Server)

// WithMetrics mounts a Prometheus scrape endpoint at /metrics for the
// given gatherer.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// NewHandler creates a new HTTP handler for the player.
func NewHandler(player Player, opts ...Option) http.Handler {
	server := &Server{Player: player}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Post("/play", server.Play)
	r.Post("/append", server.Append)
	r.Post("/stop", server.Stop)
	r.Get("/status", server.GetStatus)
	r.Get("/tunes", server.GetTunes)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	if server.gatherer != nil {
		r.Get("/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}).ServeHTTP)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// PlayRequest is the body accepted by POST /play and POST /append.
// Format selects the translator: "tabs" (default), "morse", "say" for
// tunetalk speech, or "tune" for a canned melody named in Tune.
type PlayRequest struct {
	Format string `json:"format,omitempty"`
	Text   string `json:"text,omitempty"`
	Tune   string `json:"tune,omitempty"`
	UnitMs int    `json:"unit_ms,omitempty"`
	Volume int    `json:"volume,omitempty"`
	Octave int    `json:"octave,omitempty"`
	Wait   bool   `json:"wait,omitempty"`
}

// PlayResponse reports the session started by a play or append request.
type PlayResponse struct {
	SessionID  string `json:"session_id"`
	Notes      int    `json:"notes"`
	DurationMs int64  `json:"duration_ms"`
}

// Play handles the POST /play request.
func (s *Server) Play(w http.ResponseWriter, r *http.Request) {
	s.schedule(w, r, s.Player.Play)
}

// Append handles the POST /append request.
func (s *Server) Append(w http.ResponseWriter, r *http.Request) {
	s.schedule(w, r, s.Player.Append)
}

func (s *Server) schedule(w http.ResponseWriter, r *http.Request, submit func(context.Context, domain.Tune) (*chime.Session, error)) {
	var body PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("Play: Invalid request body", "error", err)
		return
	}

	tune, err := buildTune(body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid tune: %v", err), http.StatusBadRequest)
		slog.Warn("Play: Tune rejected", "error", err, "format", body.Format)
		return
	}

	session, err := submit(r.Context(), tune)
	if err != nil {
		var noteErr *domain.InvalidNoteError
		if errors.As(err, &noteErr) {
			http.Error(w, fmt.Sprintf("Invalid tune: %v", err), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Play error: %v", err), http.StatusInternalServerError)
		slog.Error("Play failed", "error", err)
		return
	}

	if body.Wait {
		if err := session.Wait(r.Context()); err != nil {
			http.Error(w, fmt.Sprintf("Playback interrupted: %v", err), http.StatusInternalServerError)
			return
		}
	}

	resp := PlayResponse{
		SessionID:  session.ID(),
		Notes:      len(tune),
		DurationMs: tune.Duration().Milliseconds(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Play response encode failed", "error", err)
	}
}

// Stop handles the POST /stop request.
func (s *Server) Stop(w http.ResponseWriter, r *http.Request) {
	if err := s.Player.Stop(r.Context()); err != nil {
		http.Error(w, fmt.Sprintf("Stop error: %v", err), http.StatusInternalServerError)
		slog.Error("Stop failed", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "stopped"})
}

// GetStatus handles the GET /status request.
func (s *Server) GetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Player.Status()); err != nil {
		slog.Error("Status response encode failed", "error", err)
	}
}

// GetTunes handles the GET /tunes request.
func (s *Server) GetTunes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"tunes": tunes.Names()})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"app":     "chime-http",
		"version": strings.TrimSpace(chime.Version),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func buildTune(req PlayRequest) (domain.Tune, error) {
	switch strings.ToLower(req.Format) {
	case "", "tabs":
		var opts []translate.TabsOption
		if req.UnitMs > 0 {
			opts = append(opts, translate.WithTabUnit(time.Duration(req.UnitMs)*time.Millisecond))
		}
		if req.Volume > 0 {
			opts = append(opts, translate.WithTabVolume(req.Volume))
		}
		return translate.Tabs(req.Text, opts...)
	case "morse":
		var opts []translate.MorseOption
		if req.UnitMs > 0 {
			opts = append(opts, translate.WithMorseUnit(time.Duration(req.UnitMs)*time.Millisecond))
		}
		if req.Volume > 0 {
			opts = append(opts, translate.WithMorseVolume(req.Volume))
		}
		return translate.Morse(req.Text, opts...)
	case "say":
		var opts []translate.TuneTalkOption
		if req.UnitMs > 0 {
			opts = append(opts, translate.WithTuneTalkUnit(time.Duration(req.UnitMs)*time.Millisecond))
		}
		if req.Volume > 0 {
			opts = append(opts, translate.WithTuneTalkVolume(req.Volume))
		}
		if req.Octave > 0 {
			opts = append(opts, translate.WithTuneTalkOctave(req.Octave))
		}
		return translate.TuneTalk(req.Text, opts...)
	case "tune":
		build, ok := tunes.ByName(req.Tune)
		if !ok {
			return nil, fmt.Errorf("unknown tune %q", req.Tune)
		}
		var opts []tunes.Option
		if req.Volume > 0 {
			opts = append(opts, tunes.WithVolume(req.Volume))
		}
		return build(opts...), nil
	default:
		return nil, fmt.Errorf("unknown format %q", req.Format)
	}
}
