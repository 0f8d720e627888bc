package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"video-catalog/internal/data/entity"
	"video-catalog/internal/domain"
	"video-catalog/pkg/apperror"
	"video-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	Insert(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id domain.UUID) (*domain.Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Category, error)
	Paginate(ctx context.Context, filter, order string, page, perPage int) (Page[*domain.Category], error)
	Update(ctx context.Context, category *domain.Category) error
	DeleteByID(ctx context.Context, id domain.UUID) (bool, error)
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

const categoryColumns = `id, name, description, is_active, created_at, updated_at`

func (r *categoryRepository) Insert(ctx context.Context, category *domain.Category) error {
	row := categoryToRow(category)

	query := `
		INSERT INTO categories (id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		row.ID,
		row.Name,
		row.Description,
		row.IsActive,
		row.CreatedAt,
		row.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("name", row.Name),
		)
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id domain.UUID) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	var row entity.Category
	err := r.db.QueryRow(ctx, query, id.String()).Scan(
		&row.ID,
		&row.Name,
		&row.Description,
		&row.IsActive,
		&row.CreatedAt,
		&row.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound(fmt.Sprintf("Category %s not found", id))
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return categoryFromRow(&row)
}

func (r *categoryRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Category, error) {
	ids = parseIDs(ids)
	if len(ids) == 0 {
		return []*domain.Category{}, nil
	}

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = ANY($1::uuid[]) ORDER BY name`

	categories, err := r.scanAll(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find categories by IDs", zap.Error(err), zap.Int("count", len(ids)))
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) Paginate(ctx context.Context, filter, order string, page, perPage int) (Page[*domain.Category], error) {
	page, perPage = normalizePage(page, perPage)

	where := ""
	args := []interface{}{}
	argCount := 1

	if strings.TrimSpace(filter) != "" {
		where = fmt.Sprintf(" WHERE name ILIKE $%d", argCount)
		args = append(args, likePattern(filter))
		argCount++
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`+where, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count categories", zap.Error(err), zap.String("filter", filter))
		return Page[*domain.Category]{}, fmt.Errorf("failed to count categories: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM categories%s ORDER BY name %s, id LIMIT $%d OFFSET $%d`,
		categoryColumns, where, orderDirection(order), argCount, argCount+1)
	args = append(args, perPage, (page-1)*perPage)

	categories, err := r.scanAll(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all categories",
			zap.Error(err),
			zap.Int("page", page),
			zap.Int("per_page", perPage),
		)
		return Page[*domain.Category]{}, err
	}

	r.log.Debug("Categories found",
		zap.Int("count", len(categories)),
		zap.Int64("total", total),
	)

	return NewPage(categories, total, page, perPage), nil
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	row := categoryToRow(category)

	query := `
		UPDATE categories
		SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		row.ID,
		row.Name,
		row.Description,
		row.IsActive,
		row.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.String("category_id", row.ID.String()),
		)
		return fmt.Errorf("failed to update category: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound(fmt.Sprintf("Category %s not found", row.ID))
	}

	return nil
}

func (r *categoryRepository) DeleteByID(ctx context.Context, id domain.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id.String())
	if err != nil {
		r.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	deleted := result.RowsAffected() > 0
	if deleted {
		r.log.Info("Category deleted", zap.String("category_id", id.String()))
	}
	return deleted, nil
}

func (r *categoryRepository) scanAll(ctx context.Context, query string, args ...interface{}) ([]*domain.Category, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		var row entity.Category
		err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Description,
			&row.IsActive,
			&row.CreatedAt,
			&row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		category, err := categoryFromRow(&row)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return categories, nil
}

func categoryToRow(c *domain.Category) entity.Category {
	var description *string
	if d := c.Description(); d != "" {
		description = &d
	}
	return entity.Category{
		Base: entity.Base{
			ID:        uuid.MustParse(c.ID().String()),
			CreatedAt: c.CreatedAt(),
			UpdatedAt: c.UpdatedAt(),
		},
		Name:        c.Name(),
		Description: description,
		IsActive:    c.IsActive(),
	}
}

func categoryFromRow(row *entity.Category) (*domain.Category, error) {
	description := ""
	if row.Description != nil {
		description = *row.Description
	}
	category, err := domain.NewCategory(domain.CategoryParams{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: description,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load category %s: %w", row.ID, err)
	}
	return category, nil
}
