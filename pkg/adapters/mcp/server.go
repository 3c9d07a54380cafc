// Package mcp exposes the chime engine as a Model Context Protocol server,
// so agents can drive the buzzer through tools instead of HTTP calls.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/chime"
	"github.com/aretw0/chime/pkg/domain"
	"github.com/aretw0/chime/pkg/translate"
	"github.com/aretw0/chime/pkg/tunes"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PlayResult aligns with the HTTP adapter's play response and provides a
// unified structure across adapters.
type PlayResult struct {
	SessionID  string `json:"session_id" jsonschema_description:"Identifier of the playback session"`
	Notes      int    `json:"notes" jsonschema_description:"Number of notes scheduled"`
	DurationMs int64  `json:"duration_ms" jsonschema_description:"Nominal playlist duration in milliseconds"`
}

// Player defines the interface required by the MCP server to interact with
// the playback core.
type Player interface {
	Play(ctx context.Context, tune domain.Tune) (*chime.Session, error)
	Append(ctx context.Context, tune domain.Tune) (*chime.Session, error)
	Stop(ctx context.Context) error
	Status() domain.PlaybackStatus
}

// Server wraps a Player and exposes it as an MCP Server.
type Server struct {
	player    Player
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(player Player) *Server {
	s := &Server{
		player:    player,
		mcpServer: server.NewMCPServer("chime-mcp", strings.TrimSpace(chime.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: play
	playTool := mcp.NewTool("play",
		mcp.WithDescription("Play a tune on the buzzer, preempting whatever is sounding. Returns as soon as playback starts unless wait is set."),
		mcp.WithString("format", mcp.Description("Input format: 'tabs' (default), 'morse', 'say' or 'tune'")),
		mcp.WithString("text", mcp.Description("Text to translate (formats 'tabs', 'morse' and 'say')")),
		mcp.WithString("tune", mcp.Description("Canned tune name (format 'tune')")),
		mcp.WithNumber("unit_ms", mcp.Description("Base note unit in milliseconds (optional)")),
		mcp.WithNumber("volume", mcp.Description("Volume 1..4 (optional)")),
		mcp.WithNumber("octave", mcp.Description("Octave for 'say' (optional)")),
		mcp.WithBoolean("wait", mcp.Description("Block until playback finishes")),
		mcp.WithOutputSchema[PlayResult](),
	)
	s.mcpServer.AddTool(playTool, mcp.NewStructuredToolHandler(s.handlePlay))

	// TOOL: append
	appendTool := mcp.NewTool("append",
		mcp.WithDescription("Queue a tune after the active session's notes instead of interrupting them. Starts a new session when the buzzer is idle."),
		mcp.WithString("format", mcp.Description("Input format: 'tabs' (default), 'morse', 'say' or 'tune'")),
		mcp.WithString("text", mcp.Description("Text to translate (formats 'tabs', 'morse' and 'say')")),
		mcp.WithString("tune", mcp.Description("Canned tune name (format 'tune')")),
		mcp.WithNumber("unit_ms", mcp.Description("Base note unit in milliseconds (optional)")),
		mcp.WithNumber("volume", mcp.Description("Volume 1..4 (optional)")),
		mcp.WithNumber("octave", mcp.Description("Octave for 'say' (optional)")),
		mcp.WithBoolean("wait", mcp.Description("Block until playback finishes")),
		mcp.WithOutputSchema[PlayResult](),
	)
	s.mcpServer.AddTool(appendTool, mcp.NewStructuredToolHandler(s.handleAppend))

	// TOOL: get_status
	statusTool := mcp.NewTool("get_status",
		mcp.WithDescription("Report the engine's playback status: active session, state and note progress."),
		mcp.WithOutputSchema[domain.PlaybackStatus](),
	)
	s.mcpServer.AddTool(statusTool, mcp.NewStructuredToolHandler(s.handleStatus))

	// TOOL: stop
	s.mcpServer.AddTool(mcp.NewTool("stop",
		mcp.WithDescription("Silence the buzzer and complete the active session."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := s.player.Stop(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("stop failed: %v", err)), nil
		}
		return mcp.NewToolResultText("stopped"), nil
	})

	// TOOL: list_tunes
	s.mcpServer.AddTool(mcp.NewTool("list_tunes",
		mcp.WithDescription("List the names of the built-in tunes playable with format 'tune'."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(tunes.Names())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handlePlay(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PlayResult, error) {
	return s.schedule(ctx, args, s.player.Play)
}

func (s *Server) handleAppend(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PlayResult, error) {
	return s.schedule(ctx, args, s.player.Append)
}

func (s *Server) handleStatus(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.PlaybackStatus, error) {
	return s.player.Status(), nil
}

func (s *Server) schedule(ctx context.Context, args map[string]interface{}, submit func(context.Context, domain.Tune) (*chime.Session, error)) (PlayResult, error) {
	req := decodeArgs(args)

	tune, err := buildTune(req)
	if err != nil {
		slog.Warn("MCP Play: Tune rejected", "error", err, "format", req.Format)
		return PlayResult{}, fmt.Errorf("invalid tune: %w", err)
	}

	session, err := submit(ctx, tune)
	if err != nil {
		slog.Error("MCP Play failed", "error", err)
		return PlayResult{}, fmt.Errorf("play failed: %w", err)
	}

	if req.Wait {
		if err := session.Wait(ctx); err != nil {
			return PlayResult{}, fmt.Errorf("playback interrupted: %w", err)
		}
	}

	return PlayResult{
		SessionID:  session.ID(),
		Notes:      len(tune),
		DurationMs: tune.Duration().Milliseconds(),
	}, nil
}

// playArgs mirrors the HTTP adapter's play request, decoded from the loose
// tool-call argument map.
type playArgs struct {
	Format string
	Text   string
	Tune   string
	UnitMs int
	Volume int
	Octave int
	Wait   bool
}

func decodeArgs(args map[string]interface{}) playArgs {
	var req playArgs
	req.Format, _ = args["format"].(string)
	req.Text, _ = args["text"].(string)
	req.Tune, _ = args["tune"].(string)
	if v, ok := args["unit_ms"].(float64); ok {
		req.UnitMs = int(v)
	}
	if v, ok := args["volume"].(float64); ok {
		req.Volume = int(v)
	}
	if v, ok := args["octave"].(float64); ok {
		req.Octave = int(v)
	}
	req.Wait, _ = args["wait"].(bool)
	return req
}

func buildTune(req playArgs) (domain.Tune, error) {
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

func (s *Server) registerResources() {
	// EXPOSE: chime://tunes
	s.mcpServer.AddResource(mcp.NewResource("chime://tunes", "Built-in Tune Names",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(tunes.Names())

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "chime://tunes",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
