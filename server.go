package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Server holds everything the HTTP handlers need: the notification webhook,
// the optional diagnostic sinks, and the static identity fields returned
// from GET /. Unlike the teacher's global gameStates map, calculate_move is
// a pure, depth-bounded function of (board, ruleset) — there is no per-game
// search tree to cache between moves.
type Server struct {
	cfg        Config
	webhookURL string
	tidbytKey  string
}

// NewServer wires a Config (and its resolved secrets) into a Server ready to
// register against an http.ServeMux.
func NewServer(cfg Config, webhookURL, tidbytKey string) *Server {
	return &Server{cfg: cfg, webhookURL: webhookURL, tidbytKey: tidbytKey}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/start", s.handleStart)
	mux.HandleFunc("/move", s.handleMove)
	mux.HandleFunc("/end", s.handleEnd)
	mux.HandleFunc("/debug/board", s.handleDebugBoard)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, IndexResponse{
		APIVersion: APIVersion,
		Author:     Author,
		Color:      ColorHex,
		Head:       HeadStyle,
		Tail:       TailStyle,
	})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var opponents []string
	for _, snake := range req.Board.Snakes {
		if snake.ID == req.You.ID {
			continue
		}
		opponents = append(opponents, snake.Name)
	}
	slog.Info("game started", "game_id", req.Game.ID, "you", req.You.Name, "opponents", opponents)

	if s.webhookURL != "" {
		go func() {
			message := fmt.Sprintf("Game %s started against %s", req.Game.ID, strings.Join(opponents, ", "))
			if err := sendDiscordWebhook(s.webhookURL, message, nil); err != nil {
				slog.Error("start notification failed", "error", err, "game", req.Game.ID)
			}
		}()
	}

	writeJSON(w, map[string]string{})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// 100ms safety margin against the engine's own clock; calculate_move is
	// itself depth-bounded, so this deadline is observability only — it is
	// never passed into the search.
	deadline := time.Duration(req.Game.Timeout-100) * time.Millisecond
	_, cancel := context.WithTimeout(r.Context(), deadline)
	defer cancel()

	board, ruleset := IntakeBoard(req)
	direction, outcome := CalculateMove(board, ruleset)

	writeJSON(w, MoveResponse{Move: direction.String(), Shout: ""})

	slog.Info("move processed",
		"game_id", req.Game.ID,
		"turn", req.Turn,
		"move", direction.String(),
		"outcome", outcome,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if s.cfg.TraceDir != "" {
		go s.writeTrace(req, board, direction, outcome)
	}
}

func (s *Server) writeTrace(req MoveRequest, board Board, chosen Direction, outcome int) {
	trace := DecisionTrace{
		GameID:  req.Game.ID,
		Turn:    req.Turn,
		Chosen:  chosen.String(),
		Outcome: outcome,
	}
	if err := WriteDecisionTrace(s.cfg.TraceDir, trace); err != nil {
		slog.Error("write decision trace failed", "error", err, "game", req.Game.ID)
	}
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, description := describeGameOutcome(req)
	slog.Info("game ended", "game_id", req.Game.ID, "turn", req.Turn, "outcome", description)

	if s.webhookURL != "" {
		go notifyGameEnd(s.webhookURL, req)
	}

	if s.cfg.RecordingBucket != "" || s.tidbytKey != "" {
		go s.archiveRecording(req)
	}

	writeJSON(w, map[string]string{})
}

// archiveRecording replays the finished match's websocket event stream into
// a GIF and fans it out to whichever optional diagnostic sinks are
// configured. Always runs off the request goroutine: none of this can hold
// up the /end response.
func (s *Server) archiveRecording(req MoveRequest) {
	gif, err := RenderGameRecording(req.Game.ID, req.You.Name)
	if err != nil {
		slog.Error("render game recording failed", "error", err, "game", req.Game.ID)
		return
	}

	if s.cfg.RecordingBucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := uploadGameRecording(ctx, s.cfg.RecordingBucket, req.Game.ID, gif); err != nil {
			slog.Error("upload game recording failed", "error", err, "game", req.Game.ID)
		}
	}

	if s.tidbytKey != "" && s.cfg.DeviceID != "" {
		if err := PushToTidbyt(s.tidbytKey, s.cfg.DeviceID, encodeBase64(gif)); err != nil {
			slog.Error("push to tidbyt failed", "error", err, "game", req.Game.ID)
		}
	}
}

// handleDebugBoard renders the board from a move request as ASCII text, for
// manual inspection. Never called from the engine; a developer convenience.
func (s *Server) handleDebugBoard(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	board, _ := IntakeBoard(req)
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, visualizeBoard(board))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
