package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/credit-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-wallet/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/credit-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles administrative HTTP requests
type AdminHandler struct {
	walletService *wallet.Service
	logger        coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(walletService *wallet.Service, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		walletService: walletService,
		logger:        logger,
	}
}

// GrantCredits handles the POST /admin/credits/grant endpoint
func (h *AdminHandler) GrantCredits(c *gin.Context) {
	var req dto.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.walletService.Grant(c.Request.Context(), req.UserID, req.Amount, req.Type, req.Description)
	if err != nil {
		respondDomainError(c, h.logger, req.UserID, err)
		return
	}

	h.logger.Info("Admin grant issued", map[string]any{
		"user_id": req.UserID,
		"amount":  req.Amount,
		"type":    req.Type,
	})

	c.JSON(http.StatusOK, dto.ResultResponse{
		UserID:  req.UserID,
		Success: result.Success,
		Message: result.Message,
	})
}

// CreateUser handles the POST /admin/users endpoint
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	user, err := h.walletService.CreateUser(c.Request.Context(), req.UserID)
	if err != nil {
		respondDomainError(c, h.logger, req.UserID, err)
		return
	}

	c.JSON(http.StatusCreated, dto.StatusResponse{
		UserID:         user.ID,
		Credits:        user.Credits(),
		WelcomeClaimed: user.WelcomeClaimed,
	})
}
