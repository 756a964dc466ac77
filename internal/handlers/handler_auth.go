package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/parishledger/parishledger/internal/apperrors"
	"github.com/parishledger/parishledger/internal/core/domain"
	portssvc "github.com/parishledger/parishledger/internal/core/ports/services"
	"github.com/parishledger/parishledger/internal/dto"
	"github.com/parishledger/parishledger/internal/middleware"
	"github.com/parishledger/parishledger/internal/platform/config"
	"github.com/parishledger/parishledger/internal/utils"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService   portssvc.UserSvcFacade
	churchService portssvc.ChurchSvcFacade
	tokenService  portssvc.TokenSvcFacade
	cfg           *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:   services.User,
		churchService: services.Church,
		tokenService:  services.Token,
		cfg:           cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services, cfg)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}

// Login godoc
// @Summary User login
// @Description Authenticates a user, resolves their church and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "User is not linked to a church"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	church, branch, err := h.churchService.ResolveTenant(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantLink) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Your account is not linked to a church. Contact your administrator."})
			return
		}
		respondServiceError(c, err, "Failed to resolve church for user")
		return
	}

	accessToken, err := h.issueTokens(c, user)
	if err != nil {
		respondServiceError(c, err, "Failed to generate tokens")
		return
	}

	churchResp := dto.ToChurchResponse(church)
	branchResp := dto.ToBranchResponse(branch)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:  accessToken,
		User:   dto.ToUserResponse(user),
		Church: &churchResp,
		Branch: &branchResp,
	})
}

// Register godoc
// @Summary Register a church
// @Description Creates a church with its first admin account and signs the admin in.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterChurchRequest true "Church Registration Info"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	church, admin, err := h.churchService.RegisterChurch(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to register church")
		return
	}

	accessToken, err := h.issueTokens(c, admin)
	if err != nil {
		respondServiceError(c, err, "Failed to generate tokens")
		return
	}

	churchResp := dto.ToChurchResponse(church)
	c.JSON(http.StatusCreated, dto.LoginResponse{
		Token:  accessToken,
		User:   dto.ToUserResponse(admin),
		Church: &churchResp,
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchanges the refresh token cookie for a fresh access token. Rotates the refresh token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	userID, rawToken, ok := h.readRefreshCookie(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Missing or malformed refresh token"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), userID, rawToken)
	if err != nil {
		h.clearRefreshCookie(c)
		if errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token has expired, please log in again"})
			return
		}
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	accessToken, err := h.issueTokens(c, user)
	if err != nil {
		respondServiceError(c, err, "Failed to generate tokens")
		return
	}

	c.JSON(http.StatusOK, dto.RefreshTokenResponse{Token: accessToken})
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the stored refresh token and clears the cookie.
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if userID, _, ok := h.readRefreshCookie(c); ok {
		if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Warn("Failed to clear refresh token on logout", slog.String("error", err.Error()))
		}
	}
	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

// issueTokens generates the access and refresh tokens for a user, stores the
// refresh token hash and sets the refresh cookie.
func (h *AuthHandler) issueTokens(c *gin.Context, user *domain.User) (string, error) {
	ctx := c.Request.Context()

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return "", err
	}

	rawRefreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return "", err
	}
	if err := h.userService.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(rawRefreshToken), refreshExpiry); err != nil {
		return "", err
	}

	// The cookie carries "userID|token" so refresh requests need no body.
	maxAge := int(h.cfg.RefreshTokenExpiryDuration.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, user.UserID+"|"+rawRefreshToken, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)

	return accessToken, nil
}

func (h *AuthHandler) readRefreshCookie(c *gin.Context) (userID, rawToken string, ok bool) {
	cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || cookie == "" {
		return "", "", false
	}
	parts := strings.SplitN(cookie, "|", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}
