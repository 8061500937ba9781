// Package pricedelivery manages delivery layer of instrument prices.
package pricedelivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Board provides the price board interface needed by price delivery layer.
type Board interface {
	Quotes() map[string]int64
}

// Handler facilitates price delivery layer logic.
type Handler struct {
	board Board
}

// NewHandler returns price handler.
func NewHandler(b Board) Handler {
	return Handler{board: b}
}

type data struct {
	Prices map[string]int64 `json:"prices"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// List handles http request to get current prices of all tracked instruments.
func (h *Handler) List(gctx *gin.Context) {
	res := response{
		Data: data{Prices: h.board.Quotes()},
	}

	gctx.JSON(http.StatusOK, res)
}
