package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jengzang/placeintel-backend-go/internal/config"
	"github.com/jengzang/placeintel-backend-go/pkg/response"
)

// AuthHandler issues JWT access tokens
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type tokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	if req.Username != h.cfg.AdminUser ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPassHash), []byte(req.Password)) != nil {
		response.Unauthorized(c, "invalid username or password")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": req.Username,
		"iat": now.Unix(),
		"exp": now.Add(h.cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		response.InternalError(c, "failed to sign token")
		return
	}

	response.Success(c, gin.H{
		"token":      signed,
		"expires_in": int(h.cfg.TokenTTL.Seconds()),
	})
}
