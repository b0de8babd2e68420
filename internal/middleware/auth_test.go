package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"farmlink/internal/audit"
	"farmlink/internal/dto"
	"farmlink/internal/models"
	"farmlink/internal/service"
)

// mockTokenValidator mocks the service.AuthService interface; the
// middleware only exercises ValidateToken.
type mockTokenValidator struct {
	mock.Mock
}

func (m *mockTokenValidator) Signup(ctx context.Context, req *dto.SignupRequest, client audit.ClientInfo) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *mockTokenValidator) Login(ctx context.Context, email, password string, client audit.ClientInfo) (*dto.AuthResponse, error) {
	args := m.Called(ctx, email, password, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *mockTokenValidator) RequestPasswordReset(ctx context.Context, email string, client audit.ClientInfo) (string, error) {
	args := m.Called(ctx, email, client)
	return args.String(0), args.Error(1)
}

func (m *mockTokenValidator) ResetPassword(ctx context.Context, token, newPassword string, client audit.ClientInfo) (string, error) {
	args := m.Called(ctx, token, newPassword, client)
	return args.String(0), args.Error(1)
}

func (m *mockTokenValidator) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func protectedRouter(authService service.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := []gin.HandlerFunc{AuthRequired(authService)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthRequired_ValidToken(t *testing.T) {
	authService := new(mockTokenValidator)
	authService.On("ValidateToken", "good-token").Return(&service.Claims{UserID: "user-1", Role: models.RoleFarmer}, nil)

	router := protectedRouter(authService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	router := protectedRouter(new(mockTokenValidator))

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_MalformedHeader(t *testing.T) {
	router := protectedRouter(new(mockTokenValidator))

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "not-a-bearer-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	authService := new(mockTokenValidator)
	authService.On("ValidateToken", "bad-token").Return(nil, service.ErrInvalidToken)

	router := protectedRouter(authService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles_AllowsMatchingRole(t *testing.T) {
	authService := new(mockTokenValidator)
	authService.On("ValidateToken", "buyer-token").Return(&service.Claims{UserID: "user-1", Role: models.RoleBuyer}, nil)

	router := protectedRouter(authService, RequireRoles(models.RoleBuyer))

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer buyer-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_RejectsOtherRole(t *testing.T) {
	authService := new(mockTokenValidator)
	authService.On("ValidateToken", "farmer-token").Return(&service.Claims{UserID: "user-1", Role: models.RoleFarmer}, nil)

	router := protectedRouter(authService, RequireRoles(models.RoleBuyer))

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer farmer-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthOptional_ContinuesWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/open", AuthOptional(new(mockTokenValidator)), func(c *gin.Context) {
		_, ok := UserID(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	req, _ := http.NewRequest("GET", "/open", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "false")
}
