// Package httpadapter exposes the solver use cases as a JSON API.
package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"svw.info/zip/internal/codec"
	"svw.info/zip/internal/domain"
	"svw.info/zip/internal/ports"
	"svw.info/zip/internal/usecase"
)

type Handler struct {
	uc  *usecase.Service
	log *zap.Logger
	// SolveTimeout bounds a single solve/count call; 0 = request context only.
	SolveTimeout time.Duration
}

func New(uc *usecase.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{uc: uc, log: log}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/api/health", h.health)
	r.POST("/api/solve", h.solve)
	r.POST("/api/moves", h.moves)
	r.POST("/api/validate", h.validate)
	r.POST("/api/check", h.check)
	r.POST("/api/count", h.count)
	r.POST("/api/save", h.save)
	r.POST("/api/load", h.load)
	r.GET("/api/list", h.list)
}

func (h *Handler) solveCtx(parent context.Context) (context.Context, context.CancelFunc) {
	if h.SolveTimeout > 0 {
		return context.WithTimeout(parent, h.SolveTimeout)
	}
	return context.WithCancel(parent)
}

// parseBoard decodes a grid into a Board, answering 400 with the offending
// cell on invalid input.
func (h *Handler) parseBoard(c *gin.Context, grid [][]int) (*domain.Board, bool) {
	b, err := codec.ParseGrid(grid)
	if err != nil {
		var ibe *domain.InvalidBoardError
		if errors.As(err, &ibe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ibe.Error(), "kind": ibe.Kind.String()})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return b, true
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ---- Solve ----

type solveReq struct {
	Grid [][]int             `json:"grid" binding:"required"`
	Path []domain.Coordinate `json:"path,omitempty"` // optional seed prefix
}

type solveResp struct {
	Outcome    string              `json:"outcome"`
	Path       []domain.Coordinate `json:"path,omitempty"`
	Nodes      int                 `json:"nodes"`
	DurationMs int64               `json:"durationMs"`
	Error      string              `json:"error,omitempty"`
}

func (h *Handler) solve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	b, ok := h.parseBoard(c, req.Grid)
	if !ok {
		return
	}
	ctx, cancel := h.solveCtx(c.Request.Context())
	defer cancel()

	var (
		res   ports.Result
		stats ports.Stats
		err   error
	)
	if len(req.Path) > 0 {
		res, stats, err = h.uc.SolveFrom(ctx, b, req.Path)
	} else {
		res, stats, err = h.uc.Solve(ctx, b)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}
	h.log.Debug("solve",
		zap.String("outcome", res.Outcome.String()),
		zap.Int("nodes", stats.Nodes),
		zap.Duration("dur", stats.Duration),
	)
	c.JSON(http.StatusOK, solveResp{
		Outcome:    res.Outcome.String(),
		Path:       res.Path,
		Nodes:      stats.Nodes,
		DurationMs: stats.Duration.Milliseconds(),
	})
}

// ---- Legal moves ----

type movesReq struct {
	Grid [][]int             `json:"grid" binding:"required"`
	Path []domain.Coordinate `json:"path"`
}

type movesResp struct {
	Moves []domain.Coordinate `json:"moves"`
	Hint  string              `json:"hint,omitempty"`
	Error string              `json:"error,omitempty"`
}

func (h *Handler) moves(c *gin.Context) {
	var req movesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	b, ok := h.parseBoard(c, req.Grid)
	if !ok {
		return
	}
	hint, found, err := h.uc.Hint(b, req.Path)
	if err != nil {
		c.JSON(http.StatusBadRequest, movesResp{Error: err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusOK, movesResp{Moves: []domain.Coordinate{}})
		return
	}
	c.JSON(http.StatusOK, movesResp{Moves: hint.Cells, Hint: hint.Message})
}

// ---- Board validation ----

type validateReq struct {
	Grid [][]int `json:"grid" binding:"required"`
}

func (h *Handler) validate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	b, err := codec.ParseGrid(req.Grid)
	if err != nil {
		var ibe *domain.InvalidBoardError
		if errors.As(err, &ibe) {
			c.JSON(http.StatusOK, gin.H{"ok": false, "kind": ibe.Kind.String(), "detail": ibe.Detail})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "rows": b.Rows(), "cols": b.Cols(), "clues": b.MaxClue()})
}

// ---- Full-path check ----

type checkReq struct {
	Grid [][]int             `json:"grid" binding:"required"`
	Path []domain.Coordinate `json:"path" binding:"required"`
}

func (h *Handler) check(c *gin.Context) {
	var req checkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	b, ok := h.parseBoard(c, req.Grid)
	if !ok {
		return
	}
	valid, reason, err := h.uc.CheckPath(b, req.Path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": valid, "reason": reason})
}

// ---- Count ----

type countReq struct {
	Grid  [][]int `json:"grid" binding:"required"`
	Limit int     `json:"limit,omitempty"`
}

func (h *Handler) count(c *gin.Context) {
	var req countReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	b, ok := h.parseBoard(c, req.Grid)
	if !ok {
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = 2 // uniqueness check by default
	}
	ctx, cancel := h.solveCtx(c.Request.Context())
	defer cancel()
	n, stats, err := h.uc.CountSolutions(ctx, b, limit)
	resp := gin.H{"count": n, "nodes": stats.Nodes, "durationMs": stats.Duration.Milliseconds()}
	if err != nil {
		resp["partial"] = true
		resp["error"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// ---- Save / Load / List ----

func (h *Handler) save(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.uc.Save(c.Request.Context(), &p); err != nil {
		var ibe *domain.InvalidBoardError
		if errors.As(err, &ibe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ibe.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

type loadReq struct {
	ID string `json:"id" binding:"required"`
}

func (h *Handler) load(c *gin.Context) {
	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON or missing id"})
		return
	}
	p, err := h.uc.Load(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found: " + req.ID})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzle": p})
}

func (h *Handler) list(c *gin.Context) {
	ps, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if ps == nil {
		ps = []domain.PuzzleMeta{}
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": ps})
}
