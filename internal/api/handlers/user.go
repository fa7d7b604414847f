package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pinpin/travel-backend/internal/api/middleware"
	"github.com/pinpin/travel-backend/internal/config"
	"github.com/pinpin/travel-backend/internal/logger"
	"github.com/pinpin/travel-backend/internal/service"
	"go.uber.org/zap"
)

// UserHandler owns the account lifecycle routes: register, login, logout,
// session check and the self-service account patch.
type UserHandler struct {
	accounts *service.AccountService
	cfg      *config.Config
}

func NewUserHandler(accounts *service.AccountService, cfg *config.Config) *UserHandler {
	return &UserHandler{accounts: accounts, cfg: cfg}
}

type registerRequest struct {
	AccountName string `json:"accountName"`
	Password    string `json:"password"`
	Nickname    string `json:"nickname"`
}

type loginRequest struct {
	AccountName string `json:"accountName"`
	Password    string `json:"password"`
}

type updateAccountRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type identityData struct {
	Nickname       string `json:"nickname"`
	AvatarPublicID string `json:"avatar_public_id"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.AccountName = strings.TrimSpace(req.AccountName)
	req.Nickname = strings.TrimSpace(req.Nickname)
	if req.AccountName == "" || req.Password == "" || req.Nickname == "" {
		writeError(w, http.StatusBadRequest, "accountName, password and nickname are required")
		return
	}

	result, err := h.accounts.Register(r.Context(), service.RegisterInput{
		AccountName: req.AccountName,
		Password:    req.Password,
		Nickname:    req.Nickname,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	logger.Info("account registered", zap.String("accountName", result.AccountName))
	h.setSessionCookie(w, result.Token)
	writeData(w, http.StatusCreated, "register success", identityData{
		Nickname:       result.Nickname,
		AvatarPublicID: result.AvatarPublicID,
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.accounts.Login(r.Context(), service.LoginInput{
		AccountName: strings.TrimSpace(req.AccountName),
		Password:    req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	writeData(w, http.StatusOK, "login success", identityData{
		Nickname:       result.Nickname,
		AvatarPublicID: result.AvatarPublicID,
	})
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; there is no server-side revocation list.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.IsProduction(),
	})
	writeData(w, http.StatusOK, "logout success", nil)
}

// Check confirms the session cookie still resolves to a live account and
// echoes the identity fields the client caches.
func (h *UserHandler) Check(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.CurrentAccount(r.Context())
	if !ok || account.Profile == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeData(w, http.StatusOK, "session valid", identityData{
		Nickname:       account.Profile.Nickname,
		AvatarPublicID: account.Profile.Avatar.PublicID,
	})
}

func (h *UserHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	account, _ := middleware.CurrentAccount(r.Context())

	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Password != nil && *req.Password == "" {
		writeError(w, http.StatusBadRequest, "password must not be empty")
		return
	}

	view, err := h.accounts.UpdateAccount(r.Context(), account, service.UpdateAccountInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, "account updated", view)
}

func (h *UserHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.IsProduction(),
	})
}
