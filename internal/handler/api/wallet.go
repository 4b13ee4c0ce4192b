package api

import (
	"errors"
	"net/http"

	reqdto "oasis-backend/internal/handler/dto/request"
	resdto "oasis-backend/internal/handler/dto/response"
	"oasis-backend/internal/handler/middleware"
	"oasis-backend/internal/usecase/commands"
	"oasis-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletCommands commands.WalletCommands
	walletQueries  queries.WalletQueries
}

func NewWalletHandler(walletCommands commands.WalletCommands, walletQueries queries.WalletQueries) *WalletHandler {
	return &WalletHandler{
		walletCommands: walletCommands,
		walletQueries:  walletQueries,
	}
}

// @Summary Wallet balance
// @Description Show the caller's wallet balance
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} map[string]string
// @Router /wallet [get]
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	balance, err := h.walletQueries.Balance(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.BalanceResponse{Balance: balance})
}

// @Summary Top up wallet
// @Description Add funds to the caller's wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TopUpRequest true "Top-up amount"
// @Success 200 {object} resdto.TopUpResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /wallet/topup [post]
func (h *WalletHandler) TopUp(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.walletCommands.TopUp(c.Request.Context(), userID, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Amount must be positive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.TopUpResponse{NewBalance: result.NewBalance})
}

// @Summary Wallet history
// @Description List the caller's wallet transactions, most recent first
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Router /wallet/history [get]
func (h *WalletHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.walletQueries.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.TransactionResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromTransactionView(v)
	}

	c.JSON(http.StatusOK, response)
}
