package adaptor

import (
	"net/http"

	"video-catalog/internal/dto/request"
	"video-catalog/internal/usecase"
	"video-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CastMemberHandler struct {
	service usecase.CastMemberService
	log     *zap.Logger
}

func NewCastMemberHandler(service usecase.CastMemberService, log *zap.Logger) *CastMemberHandler {
	return &CastMemberHandler{
		service: service,
		log:     log.With(zap.String("handler", "cast_member")),
	}
}

// ListCastMembers handles GET /api/cast_members
func (h *CastMemberHandler) ListCastMembers(w http.ResponseWriter, r *http.Request) {
	req := parsePaginatedRequest(r)
	if !validate(w, h.log, req) {
		return
	}

	members, err := h.service.ListCastMembers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list cast members")
		return
	}

	utils.ResponseSuccess(w, "Cast members retrieved successfully", members)
}

// GetCastMember handles GET /api/cast_members/{id}
func (h *CastMemberHandler) GetCastMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.service.GetCastMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get cast member")
		return
	}

	utils.ResponseSuccess(w, "Cast member retrieved successfully", member)
}

// CreateCastMember handles POST /api/cast_members
func (h *CastMemberHandler) CreateCastMember(w http.ResponseWriter, r *http.Request) {
	var req request.CastMemberRequest
	if !decodeJSON(w, r, h.log, &req) {
		return
	}

	member, err := h.service.CreateCastMember(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create cast member")
		return
	}

	utils.ResponseCreated(w, "Cast member created successfully", member)
}

// UpdateCastMember handles PUT /api/cast_members/{id}
func (h *CastMemberHandler) UpdateCastMember(w http.ResponseWriter, r *http.Request) {
	var req request.CastMemberRequest
	if !decodeJSON(w, r, h.log, &req) {
		return
	}

	member, err := h.service.UpdateCastMember(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update cast member")
		return
	}

	utils.ResponseSuccess(w, "Cast member updated successfully", member)
}

// DeleteCastMember handles DELETE /api/cast_members/{id}
func (h *CastMemberHandler) DeleteCastMember(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCastMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete cast member")
		return
	}

	utils.ResponseSuccess(w, "Cast member deleted successfully", nil)
}
