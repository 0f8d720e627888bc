package usecase

import (
	"context"
	"fmt"

	"video-catalog/internal/data/repository"
	"video-catalog/internal/domain"
	"video-catalog/internal/dto/request"
	"video-catalog/internal/dto/response"
	"video-catalog/pkg/apperror"
	"video-catalog/pkg/database"

	"go.uber.org/zap"
)

type GenreService interface {
	ListGenres(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	GetGenre(ctx context.Context, genreID string) (*response.GenreResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	UpdateGenre(ctx context.Context, genreID string, req *request.GenreRequest) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, genreID string) error
}

type genreService struct {
	repo *repository.Repository
	tx   database.TxManager
	refs referenceValidator
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, tx database.TxManager, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		tx:   tx,
		refs: referenceValidator{repo: repo},
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) ListGenres(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	page, err := s.repo.Genre.Paginate(ctx, req.Filter, req.Direction(), req.Page, req.Limit())
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err), zap.Int("page", req.Page))
		return nil, fmt.Errorf("get genres: %w", err)
	}

	return response.NewPaginatedResponse(page, response.GenreToResponse), nil
}

func (s *genreService) GetGenre(ctx context.Context, genreID string) (*response.GenreResponse, error) {
	id, err := parseID("Genre", genreID)
	if err != nil {
		return nil, err
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	var genre *domain.Genre

	err := s.inTx(ctx, func(ctx context.Context) error {
		if err := s.refs.validateCategories(ctx, req.CategoriesID); err != nil {
			return err
		}

		var err error
		genre, err = domain.NewGenre(domain.GenreParams{
			Name:        req.Name,
			IsActive:    derefBool(req.IsActive, true),
			CategoryIDs: canonicalIDs(req.CategoriesID),
		})
		if err != nil {
			return err
		}

		return s.repo.Genre.Insert(ctx, genre)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Genre created",
		zap.String("genre_id", genre.ID().String()),
		zap.String("name", genre.Name()),
	)

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) UpdateGenre(ctx context.Context, genreID string, req *request.GenreRequest) (*response.GenreResponse, error) {
	id, err := parseID("Genre", genreID)
	if err != nil {
		return nil, err
	}

	var genre *domain.Genre

	err = s.inTx(ctx, func(ctx context.Context) error {
		if err := s.refs.validateCategories(ctx, req.CategoriesID); err != nil {
			return err
		}

		var err error
		genre, err = s.repo.Genre.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := genre.Update(req.Name); err != nil {
			return err
		}
		genre.ReplaceCategories(canonicalIDs(req.CategoriesID))
		if req.IsActive != nil {
			if *req.IsActive {
				genre.Activate()
			} else {
				genre.Deactivate()
			}
		}

		return s.repo.Genre.Update(ctx, genre)
	})
	if err != nil {
		return nil, err
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, genreID string) error {
	id, err := parseID("Genre", genreID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Genre.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	if !deleted {
		return apperror.NotFound(fmt.Sprintf("Genre %s not found", id))
	}

	return nil
}

func (s *genreService) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx.Context()); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	return tx.Commit()
}
