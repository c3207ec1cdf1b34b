package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/prospectr-app/prospectr/internal/apperrors"
	"github.com/prospectr-app/prospectr/internal/core/domain"
	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/prospectr-app/prospectr/internal/dto"
	"github.com/prospectr-app/prospectr/internal/handlers"
	"github.com/prospectr-app/prospectr/internal/platform/config"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockUserService = new(MockUserService)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "prospectr-test",
		APIRateLimit:      "1000-H",
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{User: suite.mockUserService})
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestRegister_ReturnsTokenOnce() {
	user := &domain.User{UserID: "user-1", Email: "sat@prospectr.app", APIToken: "tok-once"}
	suite.mockUserService.On("Register", mock.Anything, mock.MatchedBy(func(req dto.RegisterRequest) bool {
		return req.Email == "sat@prospectr.app"
	})).Return(user, nil).Once()

	w := suite.postJSON("/auth/register", map[string]string{
		"email":    "sat@prospectr.app",
		"name":     "Satellite One",
		"password": "long-enough-pw",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RegisterResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("tok-once", resp.APIToken)
}

func (suite *AuthHandlerTestSuite) TestRegister_ForeignDomainRejected() {
	suite.mockUserService.On("Register", mock.Anything, mock.Anything).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.postJSON("/auth/register", map[string]string{
		"email":    "someone@elsewhere.example",
		"name":     "Outsider",
		"password": "long-enough-pw",
	})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_IssuesJWT() {
	user := &domain.User{UserID: "user-1", Email: "me@prospectr.app"}
	suite.mockUserService.On("Login", mock.Anything, mock.Anything).Return(user, nil).Once()

	w := suite.postJSON("/auth/login", map[string]string{
		"email":    "me@prospectr.app",
		"password": "long-enough-pw",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	suite.True(resp.ExpiresAt.After(time.Now()))
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockUserService.On("Login", mock.Anything, mock.Anything).Return(nil, errors.New("bcrypt mismatch")).Once()

	w := suite.postJSON("/auth/login", map[string]string{
		"email":    "me@prospectr.app",
		"password": "wrong-password",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestAuthorize_ValidToken() {
	user := &domain.User{UserID: "sat-1", APIToken: "tok-abc"}
	suite.mockUserService.On("Authorize", mock.Anything, "tok-abc").Return(user, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/auth/authorize", nil)
	req.Header.Set("Authorization", "Basic tok-abc")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AuthHandlerTestSuite) TestAuthorize_UnknownToken() {
	suite.mockUserService.On("Authorize", mock.Anything, "tok-bogus").Return(nil, apperrors.ErrForbidden).Once()

	req := httptest.NewRequest(http.MethodGet, "/auth/authorize", nil)
	req.Header.Set("Authorization", "Basic tok-bogus")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *AuthHandlerTestSuite) TestAuthorize_MissingHeader() {
	req := httptest.NewRequest(http.MethodGet, "/auth/authorize", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "Authorize", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestConfirm_Success() {
	suite.mockUserService.On("Confirm", mock.Anything, "me@prospectr.app", "cid-1").Return(nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/auth/confirm?email=me@prospectr.app&cid=cid-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
