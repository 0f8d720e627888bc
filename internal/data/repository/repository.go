package repository

import (
	"video-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Category   CategoryRepository
	Genre      GenreRepository
	CastMember CastMemberRepository
	Video      VideoRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Category:   NewCategoryRepository(db, log),
		Genre:      NewGenreRepository(db, log),
		CastMember: NewCastMemberRepository(db, log),
		Video:      NewVideoRepository(db, log),
	}
}
