package controllers

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/RealZimboGuy/relvalmatrix/internal/util"
)

const apiKeyHeader = "X-API-Key"

type AuthController struct {
	// ApiKeyHash is the bcrypt hash of the key accepted on write routes.
	// Write routes answer 503 while it is empty.
	ApiKeyHash string
}

func NewAuthController(apiKeyHash string) *AuthController {
	return &AuthController{ApiKeyHash: apiKeyHash}
}

func (ac *AuthController) RequireApiKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ac.ApiKeyHash == "" {
			util.WriteJSONError(w, http.StatusServiceUnavailable, "no api key configured")
			return
		}
		apiKey := r.Header.Get(apiKeyHeader)
		if apiKey == "" {
			util.WriteJSONError(w, http.StatusUnauthorized, "missing "+apiKeyHeader+" header")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(ac.ApiKeyHash), []byte(apiKey)); err != nil {
			slog.Warn("Rejected api key", "path", r.URL.Path, "remote", r.RemoteAddr)
			util.WriteJSONError(w, http.StatusUnauthorized, "invalid api key")
			return
		}
		next(w, r)
	}
}
