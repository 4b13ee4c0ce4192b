//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"oasis-backend/internal/domain/user"
	"oasis-backend/internal/handler/api"
	resdto "oasis-backend/internal/handler/dto/response"
	"oasis-backend/internal/pkg/money"
	"oasis-backend/internal/usecase/commands"
	"oasis-backend/internal/usecase/queries"
	"oasis-backend/tests/common/httptest"
	commandsmock "oasis-backend/tests/mock/commands"
	queriesmock "oasis-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TabHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTabCommands
	mockQueries  *queriesmock.MockTabQueries
	handler      *api.TabHandler
	userID       uuid.UUID
}

func (s *TabHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTabCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTabQueries(s.mockCtrl)
	s.handler = api.NewTabHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleUser)
		c.Next()
	}

	s.router.POST("/tab/open", authMiddleware, s.handler.OpenTab)
	s.router.POST("/tab/add", authMiddleware, s.handler.AddItem)
	s.router.POST("/tab/close", authMiddleware, s.handler.CloseTab)
	s.router.GET("/tab", authMiddleware, s.handler.GetOpenTab)
	s.router.GET("/tab/status/:id", authMiddleware, s.handler.GetTabStatus)
	s.router.GET("/tab/history", authMiddleware, s.handler.TabHistory)
}

func (s *TabHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTabHandlerSuite(t *testing.T) {
	suite.Run(t, new(TabHandlerTestSuite))
}

func (s *TabHandlerTestSuite) TestOpenTab() {
	s.Run("success returns 201 with tab id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			Open(gomock.Any(), s.userID).
			Return(id, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tab/open", nil, "token")

		var resp resdto.OpenTabResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(id, resp.TabID)
	})

	s.Run("already open returns 400", func() {
		s.mockCommands.EXPECT().
			Open(gomock.Any(), s.userID).
			Return(uuid.Nil, commands.ErrTabAlreadyOpen)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/tab/open", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "already open")
	})
}

func (s *TabHandlerTestSuite) TestAddItem() {
	url := "/tab/add"
	body := map[string]any{"item_id": uuid.New().String(), "quantity": 2}

	s.Run("success returns new total", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), s.userID, gomock.Any(), 2).
			Return(money.FromDollars(15.00), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		var resp resdto.AddItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(money.FromDollars(15.00), resp.NewTotal)
	})

	s.Run("unknown item returns 404", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), s.userID, gomock.Any(), 2).
			Return(money.Zero(), commands.ErrItemNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found")
	})

	s.Run("no open tab returns 400", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), s.userID, gomock.Any(), 2).
			Return(money.Zero(), commands.ErrNoOpenTab)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "No open tab")
	})

	s.Run("omitted quantity defaults to one unit", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), s.userID, gomock.Any(), 1).
			Return(money.FromDollars(7.50), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"item_id": uuid.New().String()}, "token")

		var resp resdto.AddItemResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(money.FromDollars(7.50), resp.NewTotal)
	})

	s.Run("non-positive quantity returns 400", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), s.userID, gomock.Any(), -1).
			Return(money.Zero(), commands.ErrInvalidQuantity)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"item_id": uuid.New().String(), "quantity": -1}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Quantity")
	})
}

func (s *TabHandlerTestSuite) TestCloseTab() {
	url := "/tab/close"

	s.Run("success returns settlement result", func() {
		s.mockCommands.EXPECT().
			Close(gomock.Any(), s.userID).
			Return(&commands.SettlementResult{
				FinalTotal: money.FromDollars(15.00),
				NewBalance: money.FromDollars(15.00),
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var resp resdto.CloseTabResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(money.FromDollars(15.00), resp.FinalTotal)
		s.Equal(money.FromDollars(15.00), resp.NewBalance)
	})

	s.Run("insufficient funds returns 400", func() {
		s.mockCommands.EXPECT().
			Close(gomock.Any(), s.userID).
			Return(nil, commands.ErrInsufficientFunds)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Insufficient")
	})

	s.Run("no open tab returns 400", func() {
		s.mockCommands.EXPECT().
			Close(gomock.Any(), s.userID).
			Return(nil, commands.ErrNoOpenTab)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "No open tab")
	})
}

func (s *TabHandlerTestSuite) TestGetOpenTab() {
	s.Run("returns open tab view", func() {
		view := &queries.TabView{
			TabID:    uuid.New(),
			UserID:   s.userID,
			Status:   "open",
			Total:    money.FromDollars(7.50),
			OpenedAt: time.Now().UTC(),
		}
		s.mockQueries.EXPECT().
			GetOpen(gomock.Any(), s.userID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tab", nil, "token")

		var resp resdto.TabResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.TabID, resp.TabID)
		s.Equal("open", resp.Status)
	})

	s.Run("no open tab returns 200 with a message", func() {
		s.mockQueries.EXPECT().
			GetOpen(gomock.Any(), s.userID).
			Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tab", nil, "token")

		var resp map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("No open tab", resp["message"])
	})
}

func (s *TabHandlerTestSuite) TestGetTabStatus() {
	s.Run("unknown tab returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetStatus(gomock.Any(), id).
			Return(nil, queries.ErrTabNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tab/status/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found")
	})
}

func (s *TabHandlerTestSuite) TestTabHistory() {
	s.Run("returns closed tabs", func() {
		closedAt := time.Now().UTC()
		views := []*queries.TabView{
			{TabID: uuid.New(), UserID: s.userID, Status: "closed", Total: money.FromDollars(15.00), ClosedAt: &closedAt},
		}
		s.mockQueries.EXPECT().
			History(gomock.Any(), s.userID).
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tab/history", nil, "token")

		var resp []*resdto.TabResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal("closed", resp[0].Status)
	})
}
