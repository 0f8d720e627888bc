package wire

import (
	"video-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Create and update take multipart/form-data with the media files.
func wireVideo(r chi.Router, videoHandler *adaptor.VideoHandler) {
	r.Route("/api/videos", func(r chi.Router) {
		r.Get("/", videoHandler.ListVideos)
		r.Post("/", videoHandler.CreateVideo)
		r.Get("/{id}", videoHandler.GetVideo)
		r.Put("/{id}", videoHandler.UpdateVideo)
		r.Delete("/{id}", videoHandler.DeleteVideo)
	})
}
