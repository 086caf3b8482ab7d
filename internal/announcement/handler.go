package announcement

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/sakshigoud44/back2campus/internal"
	"github.com/sakshigoud44/back2campus/internal/auth"
	"github.com/sakshigoud44/back2campus/internal/core/common/pagination"
	"github.com/sakshigoud44/back2campus/internal/transport"
)

type ServiceAPI interface {
	List(params pagination.Params) ([]*Announcement, int64, error)
	GetByID(announcementID int64) (*Announcement, error)
	Create(dto CreateAnnouncementDTO, authorID int64) (*Announcement, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	announcements, total, err := h.Service.List(params)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteList(w, http.StatusOK, announcements, params.MetaFor(total))
}

func (h *Handler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	announcementID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid announcement ID")
		return
	}

	a, err := h.Service.GetByID(announcementID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, a)
}

func (h *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	account, ok := auth.AlumniFromContext(r.Context())
	if !ok || account == nil {
		h.HandleServiceError(w, internal.ErrMissingToken)
		return
	}

	var dto CreateAnnouncementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Service.Create(dto, account.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteDataWithMessage(w, http.StatusCreated, "Announcement created successfully", created)
}
