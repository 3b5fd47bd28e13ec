package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/placeintel-backend-go/internal/config"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Pin the credential variables so Load falls back to admin/admin
	t.Setenv("ADMIN_USER", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := config.Load()

	r := gin.New()
	r.POST("/api/v1/auth/token", NewAuthHandler(cfg).Token)
	return r, cfg
}

func postToken(r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenDefaultCredentials(t *testing.T) {
	r, cfg := newAuthTestRouter(t)

	w := postToken(r, gin.H{"username": "admin", "password": "admin"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token     string `json:"token"`
			ExpiresIn int    `json:"expires_in"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, int(cfg.TokenTTL.Seconds()), resp.Data.ExpiresIn)

	parsed, err := jwt.Parse(resp.Data.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "admin", sub)
}

func TestTokenWrongPassword(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := postToken(r, gin.H{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenUnknownUser(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := postToken(r, gin.H{"username": "root", "password": "admin"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenMissingFields(t *testing.T) {
	r, _ := newAuthTestRouter(t)

	w := postToken(r, gin.H{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
