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

type WalletHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWalletCommands
	mockQueries  *queriesmock.MockWalletQueries
	handler      *api.WalletHandler
	userID       uuid.UUID
}

func (s *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWalletCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWalletQueries(s.mockCtrl)
	s.handler = api.NewWalletHandler(s.mockCommands, s.mockQueries)
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

	s.router.GET("/wallet", authMiddleware, s.handler.GetBalance)
	s.router.POST("/wallet/topup", authMiddleware, s.handler.TopUp)
	s.router.GET("/wallet/history", authMiddleware, s.handler.History)
}

func (s *WalletHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

func (s *WalletHandlerTestSuite) TestGetBalance() {
	s.Run("returns balance", func() {
		s.mockQueries.EXPECT().
			Balance(gomock.Any(), s.userID).
			Return(money.FromDollars(10.00), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wallet", nil, "token")

		var resp resdto.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(money.FromDollars(10.00), resp.Balance)
	})
}

func (s *WalletHandlerTestSuite) TestTopUp() {
	url := "/wallet/topup"

	s.Run("success returns new balance", func() {
		s.mockCommands.EXPECT().
			TopUp(gomock.Any(), s.userID, money.FromDollars(20.00), "").
			Return(&commands.TopUpResult{NewBalance: money.FromDollars(30.00)}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": 20.00}, "token")

		var resp resdto.TopUpResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(money.FromDollars(30.00), resp.NewBalance)
	})

	s.Run("description is passed through to the ledger entry", func() {
		s.mockCommands.EXPECT().
			TopUp(gomock.Any(), s.userID, money.FromDollars(20.00), "Birthday gift").
			Return(&commands.TopUpResult{NewBalance: money.FromDollars(20.00)}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"amount": 20.00, "description": "Birthday gift"}, "token")

		var resp resdto.TopUpResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	})

	s.Run("invalid amount returns 400", func() {
		s.mockCommands.EXPECT().
			TopUp(gomock.Any(), s.userID, money.FromDollars(-5.00), "").
			Return(nil, commands.ErrInvalidAmount)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": -5.00}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "positive")
	})
}

func (s *WalletHandlerTestSuite) TestHistory() {
	s.Run("returns transactions most recent first", func() {
		now := time.Now().UTC()
		views := []*queries.TransactionView{
			{ID: uuid.New(), Amount: money.FromDollars(15.00), Kind: "deduction", Description: "Tab settlement", Timestamp: now},
			{ID: uuid.New(), Amount: money.FromDollars(20.00), Kind: "topup", Description: "Top-up", Timestamp: now.Add(-time.Minute)},
		}
		s.mockQueries.EXPECT().
			History(gomock.Any(), s.userID).
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wallet/history", nil, "token")

		var resp []*resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
		s.Equal("deduction", resp[0].Kind)
		s.Equal("topup", resp[1].Kind)
	})
}
