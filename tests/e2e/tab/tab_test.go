//go:build e2e

package tab_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"oasis-backend/internal/domain/user"
	"oasis-backend/internal/domain/wallet"
	"oasis-backend/internal/handler/dto/request"
	"oasis-backend/internal/handler/dto/response"
	"oasis-backend/internal/pkg/money"
	"oasis-backend/tests/common/dbtest"
	"oasis-backend/tests/common/httptest"
	"oasis-backend/tests/e2e"
	jwtHelper "oasis-backend/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	openTabURL       = "/api/tab/open"
	addItemURL       = "/api/tab/add"
	closeTabURL      = "/api/tab/close"
	openTabViewURL   = "/api/tab"
	tabHistoryURL    = "/api/tab/history"
	walletTopUpURL   = "/api/wallet/topup"
	walletBalanceURL = "/api/wallet"
	walletHistoryURL = "/api/wallet/history"
)

type TabSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestTabSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TabSuite))
}

func (s *TabSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func (s *TabSuite) authedUser(email string) (uuid.UUID, string) {
	t := s.T()
	userID := dbtest.CreateTestUser(t, s.DB, email, string(user.RoleUser))
	token := s.jwtHelper.GenerateToken(t, userID, string(user.RoleUser))
	return userID, token
}

func (s *TabSuite) openTab(token string) uuid.UUID {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, openTabURL, nil, token)
	var resp response.OpenTabResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &resp)
	return resp.TabID
}

func (s *TabSuite) addItem(token string, itemID uuid.UUID, quantity int) *nethttptest.ResponseRecorder {
	t := s.T()
	return httptest.PerformRequest(t, s.Router, http.MethodPost, addItemURL,
		request.AddItemRequest{ItemID: itemID, Quantity: &quantity}, token)
}

func (s *TabSuite) topUp(token string, amount money.Money) {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, walletTopUpURL,
		request.TopUpRequest{Amount: amount}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

// =============================================================================
// TestOpenTab - one open tab per user
// =============================================================================

func (s *TabSuite) TestOpenTab() {
	s.Run("Normal case: opening a tab succeeds", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")

		tabID := s.openTab(token)
		require.NotEqual(t, uuid.Nil, tabID)
	})

	s.Run("Opening a second tab while one is open is rejected", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")

		s.openTab(token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, openTabURL, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Viewing with no open tab returns 200 with a message", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, openTabViewURL, nil, token)
		var resp map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, "No open tab", resp["message"])
	})

	s.Run("Different users can hold open tabs at the same time", func() {
		t := s.T()
		_, tokenA := s.authedUser("patron-a@example.com")
		_, tokenB := s.authedUser("patron-b@example.com")

		s.openTab(tokenA)
		s.openTab(tokenB)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, openTabViewURL, nil, tokenB)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestAddItem - running total accumulation
// =============================================================================

func (s *TabSuite) TestAddItem() {
	s.Run("Adding an item grows the total by unit price times quantity", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")
		beerID := dbtest.FindMenuItemID(t, s.DB, "House Beer") // 7.50

		s.openTab(token)

		w := s.addItem(token, beerID, 2)
		var resp response.AddItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, money.FromCents(1500), resp.NewTotal)
	})

	s.Run("Totals accumulate across multiple additions", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")
		beerID := dbtest.FindMenuItemID(t, s.DB, "House Beer")          // 7.50
		cocktailID := dbtest.FindMenuItemID(t, s.DB, "Old Fashioned")   // 12.00

		s.openTab(token)

		w := s.addItem(token, beerID, 2)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.addItem(token, cocktailID, 1)
		var resp response.AddItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, money.FromCents(2700), resp.NewTotal)
	})

	s.Run("Omitted quantity charges a single unit", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")
		beerID := dbtest.FindMenuItemID(t, s.DB, "House Beer") // 7.50

		s.openTab(token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, addItemURL,
			request.AddItemRequest{ItemID: beerID}, token)
		var resp response.AddItemResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, money.FromCents(750), resp.NewTotal)
	})

	s.Run("Adding to a user with no open tab is rejected", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")
		beerID := dbtest.FindMenuItemID(t, s.DB, "House Beer")

		w := s.addItem(token, beerID, 1)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Unknown menu item returns not found", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")

		s.openTab(token)

		w := s.addItem(token, uuid.New(), 1)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Unavailable menu item returns not found", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")
		specialID := dbtest.FindMenuItemID(t, s.DB, "Seasonal Special") // available = false

		s.openTab(token)

		w := s.addItem(token, specialID, 1)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Non-positive quantity is rejected", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")
		beerID := dbtest.FindMenuItemID(t, s.DB, "House Beer")

		s.openTab(token)

		w := s.addItem(token, beerID, -1)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestCloseTab - settlement against the wallet
// =============================================================================

func (s *TabSuite) TestCloseTab() {
	s.Run("Settlement debits the wallet and records a ledger entry", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")
		beerID := dbtest.FindMenuItemID(t, s.DB, "House Beer") // 7.50

		s.topUp(token, money.FromCents(2000)) // 20.00
		s.openTab(token)
		w := s.addItem(token, beerID, 2) // 15.00
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, closeTabURL, nil, token)
		var resp response.CloseTabResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, money.FromCents(1500), resp.FinalTotal)
		require.Equal(t, money.FromCents(500), resp.NewBalance)

		// Ledger holds the top-up and the settlement deduction, newest first
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, walletHistoryURL, nil, token)
		var history []response.TransactionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Len(t, history, 2)
		require.Equal(t, string(wallet.KindDeduction), history[0].Kind)
		require.Equal(t, money.FromCents(1500), history[0].Amount)
		require.Equal(t, string(wallet.KindTopUp), history[1].Kind)
		require.Equal(t, money.FromCents(2000), history[1].Amount)
	})

	s.Run("Insufficient balance leaves the tab open and the wallet untouched", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")
		beerID := dbtest.FindMenuItemID(t, s.DB, "House Beer")

		s.topUp(token, money.FromCents(1000)) // 10.00 against a 15.00 tab
		s.openTab(token)
		w := s.addItem(token, beerID, 2)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, closeTabURL, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		// Tab still open
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, openTabViewURL, nil, token)
		var tab response.TabResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &tab)
		require.Equal(t, "open", tab.Status)
		require.Equal(t, money.FromCents(1500), tab.Total)

		// Balance unchanged, no deduction in the ledger
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, walletBalanceURL, nil, token)
		var balance response.BalanceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &balance)
		require.Equal(t, money.FromCents(1000), balance.Balance)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, walletHistoryURL, nil, token)
		var history []response.TransactionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Len(t, history, 1)
	})

	s.Run("Closing an empty tab settles at zero without a ledger entry", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")

		s.openTab(token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, closeTabURL, nil, token)
		var resp response.CloseTabResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.True(t, resp.FinalTotal.IsZero())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, walletHistoryURL, nil, token)
		var history []response.TransactionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Empty(t, history)
	})

	s.Run("Closing with no open tab is rejected", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, closeTabURL, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("A settled tab shows up closed in the history", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")
		beerID := dbtest.FindMenuItemID(t, s.DB, "House Beer")

		s.topUp(token, money.FromCents(2000))
		s.openTab(token)
		w := s.addItem(token, beerID, 1)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, closeTabURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, tabHistoryURL, nil, token)
		var history []response.TabResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Len(t, history, 1)
		require.Equal(t, "closed", history[0].Status)
		require.NotNil(t, history[0].ClosedAt)

		// And the user can open a fresh one
		s.openTab(token)
	})
}

// =============================================================================
// TestConcurrentTabOperations - invariants under parallel requests
// =============================================================================

func (s *TabSuite) TestConcurrentTabOperations() {
	s.Run("Only one of N concurrent opens wins", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")

		const n = 8
		codes := make([]int, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, openTabURL, nil, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusBadRequest:
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, 1, created)
	})

	s.Run("Concurrent item additions converge on the exact total", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")
		beerID := dbtest.FindMenuItemID(t, s.DB, "House Beer") // 7.50

		s.openTab(token)

		const n = 8
		one := 1
		var wg sync.WaitGroup
		var failures atomic.Int32
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, addItemURL,
					request.AddItemRequest{ItemID: beerID, Quantity: &one}, token)
				if w.Code != http.StatusOK {
					failures.Add(1)
				}
			}()
		}
		wg.Wait()
		require.Zero(t, failures.Load())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, openTabViewURL, nil, token)
		var tab response.TabResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &tab)
		require.Equal(t, money.FromCents(int64(n)*750), tab.Total)
	})
}

// =============================================================================
// TestTabStatus
// =============================================================================

func (s *TabSuite) TestTabStatus() {
	s.Run("Looks up a tab by id", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")

		tabID := s.openTab(token)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/tab/status/"+tabID.String(), nil, token)
		var tab response.TabResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &tab)
		require.Equal(t, tabID, tab.TabID)
		require.Equal(t, "open", tab.Status)
	})

	s.Run("Unknown tab id returns not found", func() {
		t := s.T()
		_, token := s.authedUser("patron@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/tab/status/"+uuid.New().String(), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}
