package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/service/game"
)

type BoardHandler struct {
	Table *game.Table
}

func NewBoardHandler(table *game.Table) *BoardHandler {
	return &BoardHandler{Table: table}
}

type dropRequest struct {
	Column *int `json:"column" binding:"required"`
}

type clickRequest struct {
	Row    *int `json:"row" binding:"required"`
	Column *int `json:"column" binding:"required"`
}

// Register mounts the board routes on r.
func (h *BoardHandler) Register(r gin.IRouter) {
	r.GET("/api/board", h.GetBoard)
	r.POST("/api/drop", h.Drop)
	r.POST("/api/click", h.Click)
	r.POST("/api/reset", h.Reset)
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	c.JSON(http.StatusOK, h.Table.Snapshot())
}

func (h *BoardHandler) Drop(c *gin.Context) {
	var req dropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	msg, err := h.Table.Drop(*req.Column)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *BoardHandler) Click(c *gin.Context) {
	var req clickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "row and column are required"})
		return
	}

	msg, err := h.Table.Click(domain.Position{Row: *req.Row, Col: *req.Column})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *BoardHandler) Reset(c *gin.Context) {
	c.JSON(http.StatusOK, h.Table.Reset())
}

// writeError maps rule violations onto status codes: bad input is 400, a
// move the current board cannot take is 409.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidColumn), errors.Is(err, domain.ErrInvalidPosition):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrColumnFull), errors.Is(err, domain.ErrGameAlreadyOver):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
