package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	domainerr "github.com/amirhossein-jamali/credit-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-wallet/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/credit-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credit-wallet/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet-related HTTP requests for the authenticated user
type WalletHandler struct {
	walletService *wallet.Service
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletService *wallet.Service, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

// GetStatus handles the GET /wallet endpoint
func (h *WalletHandler) GetStatus(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	status, err := h.walletService.GetStatus(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		UserID:         userID,
		Credits:        status.Credits,
		WelcomeClaimed: status.WelcomeClaimed,
	})
}

// Consume handles the POST /wallet/consume endpoint
func (h *WalletHandler) Consume(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var req dto.ConsumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	// A missing amount means one credit
	if req.Amount == 0 {
		req.Amount = 1
	}

	result, err := h.walletService.Consume(c.Request.Context(), userID, req.ResourceType, req.Amount)
	if err != nil {
		h.respondError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.ResultResponse{
		UserID:  userID,
		Success: result.Success,
		Message: result.Message,
	})
}

// ClaimWelcome handles the POST /wallet/welcome endpoint
func (h *WalletHandler) ClaimWelcome(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	result, err := h.walletService.ClaimWelcome(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.ResultResponse{
		UserID:  userID,
		Success: result.Success,
		Message: result.Message,
	})
}

// GetTransactions handles the GET /wallet/transactions endpoint
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
				Message: "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	transactions, err := h.walletService.GetTransactions(c.Request.Context(), userID, limit)
	if err != nil {
		h.respondError(c, userID, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		items = append(items, dto.TransactionResponse{
			ID:          txn.ID,
			Amount:      txn.Amount,
			Type:        string(txn.Type),
			Description: txn.Description,
			CreatedAt:   txn.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		UserID:       userID,
		Transactions: items,
	})
}

// respondError maps domain errors to HTTP responses. Business outcomes never
// reach here; they travel in the result payload.
func (h *WalletHandler) respondError(c *gin.Context, userID uint64, err error) {
	respondDomainError(c, h.logger, userID, err)
}

func respondUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
		Message: "Authentication required",
	})
}

// respondDomainError is shared between handlers
func respondDomainError(c *gin.Context, logger coreport.Logger, userID uint64, err error) {
	switch {
	case errors.Is(err, domainerr.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "User not found",
		})
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrZeroAmount),
		errors.Is(err, domainerr.ErrInvalidEntryType),
		errors.Is(err, domainerr.ErrInvalidUserID):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case errors.Is(err, domainerr.ErrDuplicateUser):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "User already exists",
		})
	default:
		logger.Error("Wallet operation failed", map[string]any{
			"user_id": userID,
			"path":    c.Request.URL.Path,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
	}
}
