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
	"github.com/google/uuid"
)

type TabHandler struct {
	tabCommands commands.TabCommands
	tabQueries  queries.TabQueries
}

func NewTabHandler(tabCommands commands.TabCommands, tabQueries queries.TabQueries) *TabHandler {
	return &TabHandler{
		tabCommands: tabCommands,
		tabQueries:  tabQueries,
	}
}

// @Summary Open tab
// @Description Open a new tab for the caller
// @Tags tab
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.OpenTabResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /tab/open [post]
func (h *TabHandler) OpenTab(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := h.tabCommands.Open(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTabAlreadyOpen):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "A tab is already open for this user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.OpenTabResponse{TabID: id})
}

// @Summary Add item to tab
// @Description Add a priced menu item to the caller's open tab
// @Tags tab
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddItemRequest true "Item and quantity"
// @Success 200 {object} resdto.AddItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tab/add [post]
func (h *TabHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	newTotal, err := h.tabCommands.AddItem(c.Request.Context(), userID, req.ItemID, req.QuantityOrDefault())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be positive",
			})
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Menu item not found",
			})
		case errors.Is(err, commands.ErrNoOpenTab):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No open tab for this user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AddItemResponse{NewTotal: newTotal})
}

// @Summary Close tab
// @Description Settle the caller's open tab against their wallet
// @Tags tab
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CloseTabResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /tab/close [post]
func (h *TabHandler) CloseTab(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.tabCommands.Close(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoOpenTab):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No open tab for this user",
			})
		case errors.Is(err, commands.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Insufficient wallet balance",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CloseTabResponse{
		FinalTotal: result.FinalTotal,
		NewBalance: result.NewBalance,
	})
}

// @Summary View open tab
// @Description Show the caller's open tab, if any
// @Tags tab
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TabResponse
// @Failure 401 {object} map[string]string
// @Router /tab [get]
func (h *TabHandler) GetOpenTab(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.tabQueries.GetOpen(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Having no open tab is a normal state for this view, not an error.
	if view == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "No open tab",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTabView(view))
}

// @Summary Tab status
// @Description Show one tab by id
// @Tags tab
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tab ID"
// @Success 200 {object} resdto.TabResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tab/status/{id} [get]
func (h *TabHandler) GetTabStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid tab ID format",
		})
		return
	}

	view, err := h.tabQueries.GetStatus(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrTabNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Tab not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTabView(view))
}

// @Summary Tab history
// @Description List the caller's closed tabs, most recently opened first
// @Tags tab
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TabResponse
// @Failure 401 {object} map[string]string
// @Router /tab/history [get]
func (h *TabHandler) TabHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.tabQueries.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.TabResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromTabView(v)
	}

	c.JSON(http.StatusOK, response)
}
