package http

import (
	"net/http"

	"zyro-visual/internal/session"
	"zyro-visual/internal/usecase"
	"zyro-visual/pkg/logger"
	"zyro-visual/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase   usecase.AuthUseCase
	store         session.Store
	cookieName    string
	secureCookies bool
	logger        *logger.Logger
}

func NewAuthHandler(
	authUseCase usecase.AuthUseCase,
	store session.Store,
	cookieName string,
	secureCookies bool,
	logger *logger.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase:   authUseCase,
		store:         store,
		cookieName:    cookieName,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with username and password; sets the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.authUseCase.Login(req.Username, req.Password)
	if err != nil {
		if err.Error() == "invalid credentials" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process login"})
		return
	}

	sess, err := h.store.Create(c.Request.Context(), user)
	if err != nil {
		h.logger.Error("Failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process login"})
		return
	}

	h.setSessionCookie(c, sess.ID, int(session.TTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout godoc
// @Summary      Log out
// @Description  Destroy the server-side session and clear the cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := c.Cookie(h.cookieName); err == nil && id != "" {
		if err := h.store.Delete(c.Request.Context(), id); err != nil {
			h.logger.Error("Failed to delete session: %v", err)
		}
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	user, err := h.authUseCase.GetUser(sess.UserID)
	if err != nil {
		h.logger.Error("Failed to load user %d: %v", sess.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load user"})
		return
	}
	if user == nil {
		// The account vanished under a live session.
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Register godoc
// @Summary      Register a user
// @Description  Admin-only: create a dashboard account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "New account"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.authUseCase.Register(req.Username, req.Password, req.IsAdmin)
	if err != nil {
		if err.Error() == "username already taken" {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	if h.secureCookies {
		c.SetSameSite(http.SameSiteStrictMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(h.cookieName, value, maxAge, "/", "", h.secureCookies, true)
}
