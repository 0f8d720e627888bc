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

type GenreRepository interface {
	Insert(ctx context.Context, genre *domain.Genre) error
	FindByID(ctx context.Context, id domain.UUID) (*domain.Genre, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Genre, error)
	Paginate(ctx context.Context, filter, order string, page, perPage int) (Page[*domain.Genre], error)
	Update(ctx context.Context, genre *domain.Genre) error
	DeleteByID(ctx context.Context, id domain.UUID) (bool, error)
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

const genreColumns = `id, name, is_active, created_at, updated_at`

func (r *genreRepository) Insert(ctx context.Context, genre *domain.Genre) error {
	row := genreToRow(genre)

	query := `
		INSERT INTO genres (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		row.ID,
		row.Name,
		row.IsActive,
		row.CreatedAt,
		row.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("name", row.Name),
		)
		return fmt.Errorf("failed to create genre: %w", err)
	}

	return genreCategories.sync(ctx, r.db, r.log, row.ID, genre.CategoryIDs())
}

func (r *genreRepository) FindByID(ctx context.Context, id domain.UUID) (*domain.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres WHERE id = $1`

	var row entity.Genre
	err := r.db.QueryRow(ctx, query, id.String()).Scan(
		&row.ID,
		&row.Name,
		&row.IsActive,
		&row.CreatedAt,
		&row.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound(fmt.Sprintf("Genre %s not found", id))
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return nil, fmt.Errorf("find genre by id: %w", err)
	}

	genres, err := r.hydrate(ctx, []*entity.Genre{&row})
	if err != nil {
		return nil, err
	}

	return genres[0], nil
}

func (r *genreRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Genre, error) {
	ids = parseIDs(ids)
	if len(ids) == 0 {
		return []*domain.Genre{}, nil
	}

	query := `SELECT ` + genreColumns + ` FROM genres WHERE id = ANY($1::uuid[]) ORDER BY name`

	genres, err := r.scanAll(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find genres by IDs", zap.Error(err), zap.Int("count", len(ids)))
		return nil, err
	}

	return genres, nil
}

func (r *genreRepository) Paginate(ctx context.Context, filter, order string, page, perPage int) (Page[*domain.Genre], error) {
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
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM genres`+where, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count genres", zap.Error(err), zap.String("filter", filter))
		return Page[*domain.Genre]{}, fmt.Errorf("failed to count genres: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM genres%s ORDER BY name %s, id LIMIT $%d OFFSET $%d`,
		genreColumns, where, orderDirection(order), argCount, argCount+1)
	args = append(args, perPage, (page-1)*perPage)

	genres, err := r.scanAll(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all genres",
			zap.Error(err),
			zap.Int("page", page),
			zap.Int("per_page", perPage),
		)
		return Page[*domain.Genre]{}, err
	}

	return NewPage(genres, total, page, perPage), nil
}

func (r *genreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	row := genreToRow(genre)

	query := `UPDATE genres SET name = $2, is_active = $3, updated_at = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, row.ID, row.Name, row.IsActive, row.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update genre",
			zap.Error(err),
			zap.String("genre_id", row.ID.String()),
		)
		return fmt.Errorf("failed to update genre: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound(fmt.Sprintf("Genre %s not found", row.ID))
	}

	return genreCategories.sync(ctx, r.db, r.log, row.ID, genre.CategoryIDs())
}

func (r *genreRepository) DeleteByID(ctx context.Context, id domain.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id.String())
	if err != nil {
		r.log.Error("Failed to delete genre",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return false, fmt.Errorf("failed to delete genre: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *genreRepository) scanAll(ctx context.Context, query string, args ...interface{}) ([]*domain.Genre, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find genres: %w", err)
	}
	defer rows.Close()

	var genreRows []*entity.Genre
	for rows.Next() {
		var row entity.Genre
		err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.IsActive,
			&row.CreatedAt,
			&row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genreRows = append(genreRows, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	rows.Close()

	return r.hydrate(ctx, genreRows)
}

// hydrate loads the category ids of every row and builds the entities.
func (r *genreRepository) hydrate(ctx context.Context, genreRows []*entity.Genre) ([]*domain.Genre, error) {
	ids := make([]uuid.UUID, len(genreRows))
	for i, row := range genreRows {
		ids[i] = row.ID
	}

	categories, err := genreCategories.load(ctx, r.db, ids)
	if err != nil {
		r.log.Error("Failed to load genre categories", zap.Error(err))
		return nil, err
	}

	genres := make([]*domain.Genre, 0, len(genreRows))
	for _, row := range genreRows {
		genre, err := domain.NewGenre(domain.GenreParams{
			ID:          row.ID.String(),
			Name:        row.Name,
			IsActive:    row.IsActive,
			CategoryIDs: categories[row.ID],
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load genre %s: %w", row.ID, err)
		}
		genres = append(genres, genre)
	}

	return genres, nil
}

func genreToRow(g *domain.Genre) entity.Genre {
	return entity.Genre{
		Base: entity.Base{
			ID:        uuid.MustParse(g.ID().String()),
			CreatedAt: g.CreatedAt(),
			UpdatedAt: g.UpdatedAt(),
		},
		Name:     g.Name(),
		IsActive: g.IsActive(),
	}
}
