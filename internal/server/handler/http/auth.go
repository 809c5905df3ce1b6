// Package http provides the HTTP handlers for user authentication and the
// item collection API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avyukov/itemdash/internal/middleware"
	"github.com/avyukov/itemdash/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user with the given credentials.
	Register(ctx context.Context, username, password string) error
	// Login verifies the credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// CredentialsRequest represents the JSON payload for registration and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /register.
// It expects a JSON body with non-empty "username" and "password" fields.
// Duplicate usernames are rejected with 400; storage failures with 500.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if err := h.AuthService.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			writeMessage(w, http.StatusBadRequest, "Username already exist")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Registration Failed")
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles POST /login.
// An unknown username and a wrong password produce the same 400 response, so
// the endpoint does not reveal which usernames exist. On success it returns
// the signed session token along with the username.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(w, http.StatusBadRequest, "Invalid username or password")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Database Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "Login successful",
		"token":    token,
		"username": req.Username,
	})
}

// Me handles GET /api/me. It reports the identity carried by the verified
// session token. The route is mounted behind the JWTAuth middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":       principal.UserID,
		"username": principal.Username,
	})
}
