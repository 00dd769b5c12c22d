package handler

import (
	"strings"

	"solana-money-mover/internal/adapter/http/dto"
	"solana-money-mover/internal/core/domain"
	"solana-money-mover/internal/core/ports"
	"solana-money-mover/pkg/apperror"
	"solana-money-mover/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxPriceBatch = 50

// PriceHandler handles price query endpoints.
type PriceHandler struct {
	oracle ports.PriceOracle
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(oracle ports.PriceOracle) *PriceHandler {
	return &PriceHandler{oracle: oracle}
}

// GetPrices handles GET /api/v1/prices. The ids query parameter is a
// comma-separated list of asset identifiers; it defaults to the native asset.
func (h *PriceHandler) GetPrices(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		raw = domain.NativeAssetID
	}

	ids := make([]string, 0)
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		response.Error(c, apperror.Validation("ids must name at least one asset"))
		return
	}
	if len(ids) > maxPriceBatch {
		response.Error(c, apperror.Validation("too many assets in one query"))
		return
	}

	prices, err := h.oracle.GetPrices(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PricesResponse{Prices: prices})
}
