//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"oasis-backend/internal/domain/user"
	"oasis-backend/internal/handler/dto/request"
	"oasis-backend/internal/handler/dto/response"
	"oasis-backend/tests/common/httptest"
	"oasis-backend/tests/e2e"
	jwtHelper "oasis-backend/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const loginURL = "/api/auth/login"

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	s.jwtHelper.CreateTestUser(s.T(), "patron@example.com", string(user.RoleUser))
	s.jwtHelper.CreateTestUser(s.T(), "admin@example.com", string(user.RoleAdmin))
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "正常なログイン",
			email:          "patron@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "間違ったパスワード",
			email:          "patron@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "不正なメールアドレス",
			email:          "not-an-email",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "短すぎるパスワード",
			email:          "patron@example.com",
			password:       "short",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var resp response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
				require.NotEmpty(t, resp.AccessToken)
				require.Equal(t, string(user.RoleUser), resp.Role)
			}
		})
	}
}

func (s *authSuite) TestTokenValidation() {
	s.Run("発行したトークンで保護されたAPIにアクセスできる", func() {
		t := s.T()

		token := s.jwtHelper.LoginUser(t, s.Router, "patron@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/wallet", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("期限切れトークンは拒否される", func() {
		t := s.T()

		userID := s.jwtHelper.CreateTestUser(t, "expired@example.com", string(user.RoleUser))
		token := s.jwtHelper.CreateExpiredToken(t, userID, string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/wallet", nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("不正なトークンは拒否される", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/wallet", nil, "not.a.token")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
