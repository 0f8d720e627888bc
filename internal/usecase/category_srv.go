package usecase

import (
	"context"
	"fmt"

	"video-catalog/internal/data/repository"
	"video-catalog/internal/domain"
	"video-catalog/internal/dto/request"
	"video-catalog/internal/dto/response"
	"video-catalog/pkg/apperror"

	"go.uber.org/zap"
)

type CategoryService interface {
	ListCategories(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	GetCategory(ctx context.Context, categoryID string) (*response.CategoryResponse, error)
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, categoryID string, req *request.CategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) ListCategories(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	page, err := s.repo.Category.Paginate(ctx, req.Filter, req.Direction(), req.Page, req.Limit())
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err), zap.Int("page", req.Page))
		return nil, fmt.Errorf("get categories: %w", err)
	}

	return response.NewPaginatedResponse(page, response.CategoryToResponse), nil
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID string) (*response.CategoryResponse, error) {
	id, err := parseID("Category", categoryID)
	if err != nil {
		return nil, err
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	category, err := domain.NewCategory(domain.CategoryParams{
		Name:        req.Name,
		Description: derefString(req.Description),
		IsActive:    derefBool(req.IsActive, true),
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.Category.Insert(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID().String()),
		zap.String("name", category.Name()),
	)

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	id, err := parseID("Category", categoryID)
	if err != nil {
		return nil, err
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.Update(req.Name, derefString(req.Description)); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		if *req.IsActive {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}

	if err := s.repo.Category.Update(ctx, category); err != nil {
		return nil, err
	}

	s.log.Info("Category updated", zap.String("category_id", categoryID))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	id, err := parseID("Category", categoryID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Category.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if !deleted {
		return apperror.NotFound(fmt.Sprintf("Category %s not found", id))
	}

	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
