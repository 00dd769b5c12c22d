package handler

import (
	"solana-money-mover/internal/adapter/http/dto"
	"solana-money-mover/internal/core/ports"
	"solana-money-mover/pkg/apperror"
	"solana-money-mover/pkg/response"

	"github.com/gin-gonic/gin"
)

// FeeHandler handles fee quote endpoints.
type FeeHandler struct {
	feeSvc ports.FeeService
}

// NewFeeHandler creates a new FeeHandler.
func NewFeeHandler(feeSvc ports.FeeService) *FeeHandler {
	return &FeeHandler{feeSvc: feeSvc}
}

// Quote handles POST /api/v1/fees/quote.
func (h *FeeHandler) Quote(c *gin.Context) {
	var req dto.FeeQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	quote := h.feeSvc.Quote(req.Options())

	response.OK(c, dto.FeeQuoteResponse{
		Base:           quote.Base,
		Additive:       quote.Additive,
		DiscountFactor: quote.DiscountFactor,
		Final:          quote.Final,
	})
}
