package adaptor

import (
	"errors"
	"net/http"

	"video-catalog/internal/domain"
	"video-catalog/internal/dto/request"
	"video-catalog/internal/usecase"
	"video-catalog/pkg/apperror"
	"video-catalog/pkg/utils"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type Handler struct {
	Category   *CategoryHandler
	Genre      *GenreHandler
	CastMember *CastMemberHandler
	Video      *VideoHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Category:   NewCategoryHandler(service.Category, log),
		Genre:      NewGenreHandler(service.Genre, log),
		CastMember: NewCastMemberHandler(service.CastMember, log),
		Video:      NewVideoHandler(service.Video, config.Upload.MaxMemoryMB, log),
	}
}

// parsePaginatedRequest reads filter, order, page and per_page from the query string.
func parsePaginatedRequest(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Filter:  query.Get("filter"),
		Order:   query.Get("order"),
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 15),
	}
}

// decodeJSON decodes and validates a JSON body, writing the 400 itself.
func decodeJSON(w http.ResponseWriter, r *http.Request, log *zap.Logger, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		log.Warn("Invalid request body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return validate(w, log, dst)
}

func validate(w http.ResponseWriter, log *zap.Logger, req any) bool {
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		log.Warn("Request validation failed", zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}

func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", vErr.Fields())

	case apperror.IsNotFound(err):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case apperror.IsBadRequest(err):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case apperror.IsConflict(err):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseJSON(w, http.StatusConflict, false, err.Error(), nil, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
