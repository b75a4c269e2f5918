package httpadapter

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"svw.info/crossword/internal/domain"
	"svw.info/crossword/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Register mounts the API under /api/v1.
func (h *Handler) Register(e *gin.Engine) {
	v1 := e.Group("/api").Group("/v1")
	v1.POST("/solve", h.handleSolve)
	v1.GET("/solve/stream", h.handleSolveStream)
	v1.POST("/unique", h.handleUnique)
	v1.POST("/parse", h.handleParse)
	v1.POST("/validate", h.handleValidate)
	v1.POST("/hint", h.handleHint)
	v1.POST("/puzzles", h.handleSave)
	v1.GET("/puzzles", h.handleList)
	v1.GET("/puzzles/:id", h.handleLoad)
}

// RequestLogger logs method, path, status, bytes, and duration for
// every request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("dur", time.Since(start).Round(time.Millisecond)).
			Msg("http")
	}
}

// fail writes the common error body. Structurally invalid puzzles are
// the client's fault; everything else is ours.
func fail(c *gin.Context, what string, err error) {
	status := http.StatusInternalServerError
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": what, "message": err.Error()})
}

// ---- Solve ----

type solveReq struct {
	Grid          []string `json:"grid"`
	Words         []string `json:"words"`
	NoReuse       bool     `json:"noReuse"`
	MaxNodes      int      `json:"maxNodes"`
	ProgressEvery int      `json:"progressEvery"`
}

type solveResp struct {
	Success    bool           `json:"success"`
	Grid       []string       `json:"grid"`
	Assignment map[int]string `json:"assignment,omitempty"`
	Slots      []domain.Slot  `json:"slots"`
	Nodes      int            `json:"nodes"`
	DurationMs int64          `json:"durationMs"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	opts := domain.SolveOptions{NoReuse: req.NoReuse, MaxNodes: req.MaxNodes}
	res, st, err := h.UC.Solve(c.Request.Context(), req.Grid, req.Words, opts)
	if err != nil {
		fail(c, "solve failed", err)
		return
	}
	c.JSON(http.StatusOK, solveResp{
		Success:    res.Success,
		Grid:       res.Grid,
		Assignment: res.Assignment,
		Slots:      res.Slots,
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Unique ----

type uniqueReq struct {
	Grid     []string `json:"grid"`
	Words    []string `json:"words"`
	NoReuse  bool     `json:"noReuse"`
	MaxNodes int      `json:"maxNodes"`
}

func (h *Handler) handleUnique(c *gin.Context) {
	var req uniqueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	opts := domain.SolveOptions{NoReuse: req.NoReuse, MaxNodes: req.MaxNodes}
	unique, st, err := h.UC.Unique(c.Request.Context(), req.Grid, req.Words, opts)
	if err != nil {
		fail(c, "uniqueness check failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"unique":     unique,
		"nodes":      st.Nodes,
		"durationMs": st.Duration.Milliseconds(),
	})
}

// ---- Parse ----

type parseReq struct {
	Grid []string `json:"grid"`
}

func (h *Handler) handleParse(c *gin.Context) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	slots, err := h.UC.Parse(c.Request.Context(), req.Grid)
	if err != nil {
		fail(c, "parse failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"slots":   slots,
		"numbers": numberCells(slots),
	})
}

// ---- Validate ----

type validateReq struct {
	Grid    []string `json:"grid"`
	Words   []string `json:"words"`
	NoReuse bool     `json:"noReuse"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), req.Grid, req.Words, req.NoReuse)
	if err != nil {
		fail(c, "validate failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": ok, "conflicts": conflicts})
}

// ---- Hint ----

type hintReq struct {
	Grid    []string `json:"grid"`
	Words   []string `json:"words"`
	NoReuse bool     `json:"noReuse"`
}

func (h *Handler) handleHint(c *gin.Context) {
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	hh, found, err := h.UC.Hint(c.Request.Context(), req.Grid, req.Words, req.NoReuse)
	if err != nil {
		fail(c, "hint failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": found, "hint": hh})
}

// ---- Save / Load / List ----

func (h *Handler) handleSave(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	if len(p.Grid) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid puzzle", "message": "missing grid"})
		return
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

func (h *Handler) handleLoad(c *gin.Context) {
	p, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "load failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzle": p})
}

func (h *Handler) handleList(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed", "message": err.Error()})
		return
	}
	if ps == nil {
		ps = []domain.PuzzleMeta{}
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": ps})
}
