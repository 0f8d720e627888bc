package wire

import (
	"video-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.ListCategories)
		r.Post("/", categoryHandler.CreateCategory)
		r.Get("/{id}", categoryHandler.GetCategory)
		r.Put("/{id}", categoryHandler.UpdateCategory)
		r.Delete("/{id}", categoryHandler.DeleteCategory)
	})
}

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	r.Route("/api/genres", func(r chi.Router) {
		r.Get("/", genreHandler.ListGenres)
		r.Post("/", genreHandler.CreateGenre)
		r.Get("/{id}", genreHandler.GetGenre)
		r.Put("/{id}", genreHandler.UpdateGenre)
		r.Delete("/{id}", genreHandler.DeleteGenre)
	})
}

func wireCastMember(r chi.Router, castMemberHandler *adaptor.CastMemberHandler) {
	r.Route("/api/cast_members", func(r chi.Router) {
		r.Get("/", castMemberHandler.ListCastMembers)
		r.Post("/", castMemberHandler.CreateCastMember)
		r.Get("/{id}", castMemberHandler.GetCastMember)
		r.Put("/{id}", castMemberHandler.UpdateCastMember)
		r.Delete("/{id}", castMemberHandler.DeleteCastMember)
	})
}
