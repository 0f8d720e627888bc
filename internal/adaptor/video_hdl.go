package adaptor

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"video-catalog/internal/dto/request"
	"video-catalog/internal/usecase"
	"video-catalog/pkg/storage"
	"video-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultMaxMemoryMB = 32

var videoFileFields = []string{"thumb_file", "thumb_half", "banner_file", "trailer_file", "video_file"}

type VideoHandler struct {
	service   usecase.VideoService
	maxMemory int64
	log       *zap.Logger
}

func NewVideoHandler(service usecase.VideoService, maxMemoryMB int64, log *zap.Logger) *VideoHandler {
	if maxMemoryMB <= 0 {
		maxMemoryMB = defaultMaxMemoryMB
	}
	return &VideoHandler{
		service:   service,
		maxMemory: maxMemoryMB << 20,
		log:       log.With(zap.String("handler", "video")),
	}
}

// ListVideos handles GET /api/videos
func (h *VideoHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	req := parsePaginatedRequest(r)
	if !validate(w, h.log, req) {
		return
	}

	videos, err := h.service.ListVideos(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list videos")
		return
	}

	utils.ResponseSuccess(w, "Videos retrieved successfully", videos)
}

// GetVideo handles GET /api/videos/{id}
func (h *VideoHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	video, err := h.service.GetVideo(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get video")
		return
	}

	utils.ResponseSuccess(w, "Video retrieved successfully", video)
}

// CreateVideo handles POST /api/videos (multipart/form-data)
func (h *VideoHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	req, cleanup, err := h.parseVideoForm(r)
	if err != nil {
		h.log.Warn("Invalid video form", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	defer cleanup()

	if !validate(w, h.log, req) {
		return
	}

	video, err := h.service.CreateVideo(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create video")
		return
	}

	utils.ResponseCreated(w, "Video created successfully", video)
}

// UpdateVideo handles PUT /api/videos/{id} (multipart/form-data)
func (h *VideoHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	req, cleanup, err := h.parseVideoForm(r)
	if err != nil {
		h.log.Warn("Invalid video form", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	defer cleanup()

	if !validate(w, h.log, req) {
		return
	}

	video, err := h.service.UpdateVideo(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "update video")
		return
	}

	utils.ResponseSuccess(w, "Video updated successfully", video)
}

// DeleteVideo handles DELETE /api/videos/{id}
func (h *VideoHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteVideo(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete video")
		return
	}

	utils.ResponseSuccess(w, "Video deleted successfully", nil)
}

// parseVideoForm builds a VideoRequest from a multipart (or urlencoded) form.
// cleanup closes the opened parts and removes multipart temp files.
func (h *VideoHandler) parseVideoForm(r *http.Request) (*request.VideoRequest, func(), error) {
	err := r.ParseMultipartForm(h.maxMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, func() {}, fmt.Errorf("parse form: %w", err)
	}

	form := r.Form
	req := &request.VideoRequest{
		Title:         form.Get("title"),
		Description:   form.Get("description"),
		YearLaunched:  utils.ParseInt(form.Get("year_launched"), 0),
		Duration:      utils.ParseInt(form.Get("duration"), 0),
		Opened:        utils.ParseBool(form.Get("opened"), false),
		Rating:        form.Get("rating"),
		CategoriesID:  formList(form, "categories_id"),
		GenresID:      formList(form, "genres_id"),
		CastMembersID: formList(form, "cast_members_id"),
	}

	var closers []io.Closer
	cleanup := func() {
		for _, c := range closers {
			c.Close()
		}
		if r.MultipartForm != nil {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				h.log.Warn("Failed to remove multipart temp files", zap.Error(err))
			}
		}
	}

	if r.MultipartForm == nil {
		return req, cleanup, nil
	}

	targets := map[string]**storage.File{
		"thumb_file":   &req.ThumbFile,
		"thumb_half":   &req.ThumbHalf,
		"banner_file":  &req.BannerFile,
		"trailer_file": &req.TrailerFile,
		"video_file":   &req.VideoFile,
	}
	for _, field := range videoFileFields {
		headers := r.MultipartForm.File[field]
		if len(headers) == 0 {
			continue
		}

		file, err := openPart(headers[0])
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("open %s: %w", field, err)
		}
		closers = append(closers, file.Body.(io.Closer))
		*targets[field] = file
	}

	return req, cleanup, nil
}

func openPart(header *multipart.FileHeader) (*storage.File, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &storage.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        f,
	}, nil
}

// formList accepts both "name[]" and "name" keys.
func formList(form map[string][]string, name string) []string {
	values := append([]string{}, form[name+"[]"]...)
	values = append(values, form[name]...)
	return utils.CompactStrings(values)
}
