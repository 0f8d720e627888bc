package usecase

import (
	"video-catalog/internal/data/repository"
	"video-catalog/pkg/database"
	"video-catalog/pkg/events"
	"video-catalog/pkg/storage"

	"go.uber.org/zap"
)

type Service struct {
	Category   CategoryService
	Genre      GenreService
	CastMember CastMemberService
	Video      VideoService
}

func NewService(
	repo *repository.Repository,
	tx database.TxManager,
	fileStorage storage.FileStorage,
	dispatcher events.Dispatcher,
	log *zap.Logger,
) *Service {
	return &Service{
		Category:   NewCategoryService(repo, log),
		Genre:      NewGenreService(repo, tx, log),
		CastMember: NewCastMemberService(repo, log),
		Video:      NewVideoService(repo, tx, fileStorage, dispatcher, log),
	}
}
