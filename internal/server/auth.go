// auth.go gates the admin surface: the /admin/* static mount and every
// mutating API method. Both HTTP Basic credentials and Bearer tokens from
// /api/auth/login are accepted.
package server

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// newJWTSecret is used when no secret is configured; tokens then stop
// working across restarts, which is fine for a single-admin site.
func newJWTSecret() []byte {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate JWT secret:", err)
	}
	return []byte(hex.EncodeToString(bytes))
}

func (s *Server) authorized(r *http.Request) bool {
	if username, password, ok := r.BasicAuth(); ok {
		return s.validCredentials(username, password)
	}
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return s.validToken(parts[1])
	}
	return false
}

func (s *Server) validCredentials(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) != 1 {
		return false
	}
	if s.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
}

func (s *Server) validToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	return err == nil && token.Valid
}

// guard admits the request or answers 401 with a basic-auth challenge.
// Returns true when the caller may proceed.
func (s *Server) guard(w http.ResponseWriter, r *http.Request) bool {
	if s.authorized(r) {
		return true
	}
	w.Header().Set("WWW-Authenticate", `Basic realm="Admin Area"`)
	writeError(w, http.StatusUnauthorized, "Unauthorized")
	return false
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.guard(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleLogin exchanges the admin credentials for a Bearer token, so the
// admin frontend does not have to hold the password in memory.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var loginData struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&loginData); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !s.validCredentials(loginData.Username, loginData.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": loginData.Username,
		"exp": time.Now().Add(time.Hour * 24).Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		log.Printf("signing token: %v", err)
		writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": tokenString})
}
