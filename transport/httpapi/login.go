// Package httpapi carries the thin HTTP surface next to the WebSocket
// gateway: today only the login endpoint.
package httpapi

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"pairchat/auth"
	"pairchat/errors"
	"pairchat/services"
)

type LoginResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Token   string   `json:"token,omitempty"`
}

// LoginHandler validates the credential pair and returns a session token the
// WebSocket handshake accepts as identity proof.
func LoginHandler(log *slog.Logger, authService services.IAuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(log, w, http.StatusMethodNotAllowed, LoginResponse{
				Success: false,
				Message: "method not allowed",
			})
			return
		}

		var req auth.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(log, w, http.StatusBadRequest, LoginResponse{
				Success: false,
				Message: "Invalid request data",
			})
			return
		}

		token, err := authService.Login(req.UsernameOrEmail, req.Password)
		switch {
		case stderrors.Is(err, errors.ErrInvalidLogin):
			writeJSON(log, w, http.StatusBadRequest, LoginResponse{
				Success: false,
				Message: "Invalid request data",
				Errors:  auth.ValidationMessages(err),
			})
		case stderrors.Is(err, errors.ErrInvalidCredentials):
			writeJSON(log, w, http.StatusBadRequest, LoginResponse{
				Success: false,
				Message: "Invalid username or password",
			})
		case err != nil:
			log.Error("Login failed", "error", err)
			writeJSON(log, w, http.StatusInternalServerError, LoginResponse{
				Success: false,
				Message: "Internal error",
			})
		default:
			writeJSON(log, w, http.StatusOK, LoginResponse{
				Success: true,
				Token:   string(token),
			})
		}
	}
}

func writeJSON(log *slog.Logger, w http.ResponseWriter, status int, body LoginResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Failed to encode login response", "error", err)
	}
}
