package handler

import (
	"time"

	"solana-money-mover/internal/adapter/http/dto"
	"solana-money-mover/internal/core/ports"
	"solana-money-mover/pkg/apperror"
	"solana-money-mover/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet session endpoints.
type WalletHandler struct {
	sessionSvc ports.SessionService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(sessionSvc ports.SessionService) *WalletHandler {
	return &WalletHandler{sessionSvc: sessionSvc}
}

// Connect handles POST /api/v1/wallet/connect.
func (h *WalletHandler) Connect(c *gin.Context) {
	var req dto.ConnectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	clientInfo := req.ClientInfo
	if clientInfo == "" {
		clientInfo = c.Request.UserAgent()
	}

	session, err := h.sessionSvc.Connect(c.Request.Context(), ports.ConnectRequest{
		PublicKey:  req.PublicKey,
		ClientInfo: clientInfo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ConnectWalletResponse{
		SessionToken: session.Token,
		PublicKey:    session.OwnerAddress,
		ConnectedAt:  session.ConnectedAt.Format(time.RFC3339),
	})
}
