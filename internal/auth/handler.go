package auth

import (
	"encoding/json"
	"net/http"

	"github.com/sakshigoud44/back2campus/internal"
	"github.com/sakshigoud44/back2campus/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     svc,
	}
}

// registrationResponse pairs the created account with its first token.
type registrationResponse struct {
	Alumni *Alumni `json:"alumni"`
	Token  string  `json:"token"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, token, err := h.Service.Register(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("alumni registered", "alumni_id", account.ID)

	h.WriteDataWithMessage(w, http.StatusCreated, "Alumni registered successfully", registrationResponse{
		Alumni: account,
		Token:  token,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, token, err := h.Service.Authenticate(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("alumni logged in", "alumni_id", account.ID)

	h.WriteDataWithMessage(w, http.StatusOK, "Login successful", registrationResponse{
		Alumni: account,
		Token:  token,
	})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	account, ok := AlumniFromContext(r.Context())
	if !ok || account == nil {
		h.HandleServiceError(w, internal.ErrMissingToken)
		return
	}

	profile, err := h.Service.GetProfile(account.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	account, ok := AlumniFromContext(r.Context())
	if !ok || account == nil {
		h.HandleServiceError(w, internal.ErrMissingToken)
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.Service.UpdateProfile(account.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteDataWithMessage(w, http.StatusOK, "Profile updated successfully", updated)
}

// AuthMiddleware is the gate in front of every protected route: it extracts
// the bearer token, verifies it, resolves the subject account and attaches it
// to the request context. Each failure maps to its own 401 message.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.HandleServiceError(w, internal.ErrMissingToken)
			return
		}

		claims, err := h.Service.ValidateToken(token)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}

		alumniID, err := claims.AlumniID()
		if err != nil {
			h.Logger.Warn("token subject is not an alumni id", "subject", claims.Subject, "error", err)
			h.HandleServiceError(w, internal.ErrInvalidToken)
			return
		}

		// The account may have been deleted since issuance; a stateless
		// token alone is not proof it still exists. A missing account is a
		// 401, but a store failure stays a 500 so an outage never reads as
		// a bad token.
		account, err := h.Service.GetProfile(alumniID)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}

		ctx := ContextWithAlumni(r.Context(), account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
