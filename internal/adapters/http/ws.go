package httpadapter

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"svw.info/crossword/internal/domain"
	"svw.info/crossword/internal/ports"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamEvent is one frame on the solve stream: progress while the
// search runs, then exactly one result or error.
type streamEvent struct {
	Type     string           `json:"type"` // progress | result | error
	Progress *domain.Progress `json:"progress,omitempty"`
	Result   *solveResp       `json:"result,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// handleSolveStream upgrades to a websocket, reads one solve request,
// and streams progress until the search finishes. The search runs on
// its own goroutine; this goroutine is the only websocket writer.
func (h *Handler) handleSolveStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	var req solveReq
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(streamEvent{Type: "error", Error: "invalid request: " + err.Error()})
		return
	}
	every := req.ProgressEvery
	if every <= 0 {
		every = 1000
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	progress := make(chan domain.Progress, 16)
	type outcome struct {
		res *domain.SolveResult
		st  ports.Stats
		err error
	}
	done := make(chan outcome, 1)

	opts := domain.SolveOptions{
		NoReuse:       req.NoReuse,
		MaxNodes:      req.MaxNodes,
		ProgressEvery: every,
		OnProgress: func(p domain.Progress) {
			select {
			case progress <- p:
			default: // drop a snapshot rather than stall the search
			}
		},
	}
	go func() {
		res, st, err := h.UC.Solve(ctx, req.Grid, req.Words, opts)
		done <- outcome{res, st, err}
	}()

	for {
		select {
		case p := <-progress:
			if err := conn.WriteJSON(streamEvent{Type: "progress", Progress: &p}); err != nil {
				// client is gone; stop the search and wait it out
				cancel()
				<-done
				return
			}
		case o := <-done:
			if o.err != nil {
				_ = conn.WriteJSON(streamEvent{Type: "error", Error: o.err.Error()})
				return
			}
			_ = conn.WriteJSON(streamEvent{Type: "result", Result: &solveResp{
				Success:    o.res.Success,
				Grid:       o.res.Grid,
				Assignment: o.res.Assignment,
				Slots:      o.res.Slots,
				Nodes:      o.st.Nodes,
				DurationMs: o.st.Duration.Milliseconds(),
			}})
			return
		}
	}
}
