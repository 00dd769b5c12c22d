package handler

import (
	"strconv"
	"time"

	"solana-money-mover/internal/adapter/http/dto"
	"solana-money-mover/internal/core/domain"
	"solana-money-mover/internal/core/ports"
	"solana-money-mover/pkg/apperror"
	"solana-money-mover/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 20

// TransferHandler handles consolidation endpoints.
type TransferHandler struct {
	moverSvc ports.MoverService
	history  ports.TransferRepository // nil = history listing disabled
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(moverSvc ports.MoverService, history ports.TransferRepository) *TransferHandler {
	return &TransferHandler{moverSvc: moverSvc, history: history}
}

// TransferAll handles POST /api/v1/transfer.
func (h *TransferHandler) TransferAll(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.moverSvc.TransferAll(c.Request.Context(), ports.TransferAllRequest{
		SessionToken: req.SessionToken,
		Destination:  req.Destination,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToConsolidationResponse(result))
}

// History handles GET /api/v1/transfer/history.
func (h *TransferHandler) History(c *gin.Context) {
	if h.history == nil {
		response.Error(c, apperror.Validation("transfer history is not enabled"))
		return
	}

	owner := c.Query("owner")
	if !domain.ValidAddress(owner) {
		response.Error(c, apperror.ErrDestinationInvalid())
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			response.Error(c, apperror.Validation("limit must be between 1 and 100"))
			return
		}
		limit = n
	}

	records, err := h.history.ListByOwner(c.Request.Context(), owner, limit)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	items := make([]dto.TransferHistoryItem, 0, len(records))
	for _, rec := range records {
		item := dto.TransferHistoryItem{
			ID:               rec.ID.String(),
			Destination:      rec.Destination,
			Status:           string(rec.Status),
			TotalValueUSD:    rec.TotalValueUSD,
			TransferredCount: rec.TransferredCount,
			Signature:        rec.Signature,
			CreatedAt:        rec.CreatedAt.Format(time.RFC3339),
		}
		if rec.CompletedAt != nil {
			s := rec.CompletedAt.Format(time.RFC3339)
			item.CompletedAt = &s
		}
		items = append(items, item)
	}

	response.OK(c, items)
}
