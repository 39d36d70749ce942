package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pairchat/auth"
	"pairchat/services"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func doLogin(t *testing.T, body string) (*httptest.ResponseRecorder, LoginResponse) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelError)
	handler := LoginHandler(log, services.NewAuthService(time.Hour))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/validate-login", strings.NewReader(body))
	handler(rec, req)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestLoginHandler_Accepts_Valid_Credentials(t *testing.T) {
	req := require.New(t)

	rec, resp := doLogin(t, `{"usernameOrEmail":"asd","password":"asd"}`)

	req.Equal(http.StatusOK, rec.Code)
	req.True(resp.Success)
	req.NotEmpty(resp.Token)

	claims, err := auth.ValidateToken(resp.Token)
	req.NoError(err)
	req.Equal("asd", claims.UserID)
}

func TestLoginHandler_Rejects_Wrong_Credentials(t *testing.T) {
	req := require.New(t)

	rec, resp := doLogin(t, `{"usernameOrEmail":"asd","password":"wrong"}`)

	req.Equal(http.StatusBadRequest, rec.Code)
	req.False(resp.Success)
	req.Empty(resp.Token)
	req.Equal("Invalid username or password", resp.Message)
}

func TestLoginHandler_Reports_Validation_Errors(t *testing.T) {
	req := require.New(t)

	rec, resp := doLogin(t, `{"usernameOrEmail":"","password":""}`)

	req.Equal(http.StatusBadRequest, rec.Code)
	req.False(resp.Success)
	req.NotEmpty(resp.Errors)
}

func TestLoginHandler_Rejects_Malformed_Body(t *testing.T) {
	req := require.New(t)

	rec, resp := doLogin(t, `{not json`)

	req.Equal(http.StatusBadRequest, rec.Code)
	req.False(resp.Success)
}

func TestLoginHandler_Only_Allows_POST(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)
	handler := LoginHandler(log, services.NewAuthService(time.Hour))

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/validate-login", nil))

	req.Equal(http.StatusMethodNotAllowed, rec.Code)
}
