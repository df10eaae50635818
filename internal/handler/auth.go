package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/identity-api/internal/auth"
	"github.com/sakif/identity-api/internal/model"
	"github.com/sakif/identity-api/internal/service"
	"github.com/sakif/identity-api/internal/validation"
)

// AuthHandler exposes the credential/token lifecycle over HTTP.
//
// HANDLER RESPONSIBILITIES:
//   - HandleRegister → POST /api/users: validate, create account, return token
//   - HandleLogin    → POST /api/auth:  validate, check credentials, return token
//   - HandleMe       → GET /api/auth:   return the authenticated user's record
//
// Handlers own everything HTTP-shaped — decoding bodies, shape validation,
// status codes — and delegate the business rules to AuthService. The service
// never sees an http.Request; the handler never sees a bcrypt hash.
type AuthHandler struct {
	authService *service.AuthService
	logger      *slog.Logger
}

// NewAuthHandler creates an AuthHandler. All dependencies are injected here;
// the handler has no knowledge of how they're constructed.
func NewAuthHandler(authService *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// HandleRegister creates a new account.
//
// HTTP: POST /api/users
// Body: {"name":..., "email":..., "password":...}
//
// RESPONSES:
//
//	200 {"token":"..."}                          — account created
//	400 {"errors":[{"msg":...,"param":...}]}     — shape validation failed
//	400 {"errors":[{"msg":"User already exists"}]}
//	500                                          — store/hashing failure
//
// Validation runs BEFORE anything touches the database: a request with a
// malformed email or short password is rejected without a single query.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFieldErrors(w, []validation.FieldError{{Msg: "invalid JSON body"}})
		return
	}

	if fieldErrors := validation.Check(req); fieldErrors != nil {
		writeFieldErrors(w, fieldErrors)
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		h.logger.Error("registration failed",
			slog.String("email", req.Email),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{Token: result.Token})
}

// HandleLogin authenticates an existing account.
//
// HTTP: POST /api/auth
// Body: {"email":..., "password":...}
//
// RESPONSES:
//
//	200 {"token":"..."}
//	400 {"errors":[{"msg":...,"param":...}]}        — shape validation failed
//	400 {"errors":[{"msg":"Invalid Credentials"}]}  — unknown email OR wrong password
//	500
//
// The two credential failures are indistinguishable on the wire — see
// AuthService.Login for why.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFieldErrors(w, []validation.FieldError{{Msg: "invalid JSON body"}})
		return
	}

	if fieldErrors := validation.Check(req); fieldErrors != nil {
		writeFieldErrors(w, fieldErrors)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{Token: result.Token})
}

// HandleMe returns the currently authenticated user's record.
//
// HTTP: GET /api/auth
// Auth: Required (RequireAuth middleware sets userID in context)
//
// The response is the User struct minus the password hash (excluded by its
// `json:"-"` tag). A valid token whose user has since vanished from the
// store gets a 404 — the token proved identity, but there is nothing left
// to return.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	// Auth middleware has already validated the JWT and set userID in context.
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		// Should never happen on a RequireAuth-protected route, but be safe.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"No token, authorization denied"}`))
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		h.logger.Error("HandleMe: lookup failed",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
