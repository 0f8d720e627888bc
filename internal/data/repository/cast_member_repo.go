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

type CastMemberRepository interface {
	Insert(ctx context.Context, member *domain.CastMember) error
	FindByID(ctx context.Context, id domain.UUID) (*domain.CastMember, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.CastMember, error)
	Paginate(ctx context.Context, filter, order string, page, perPage int) (Page[*domain.CastMember], error)
	Update(ctx context.Context, member *domain.CastMember) error
	DeleteByID(ctx context.Context, id domain.UUID) (bool, error)
}

type castMemberRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCastMemberRepository(db database.PgxIface, log *zap.Logger) CastMemberRepository {
	return &castMemberRepository{
		db:  db,
		log: log.With(zap.String("repository", "cast_member")),
	}
}

const castMemberColumns = `id, name, type, created_at, updated_at`

func (r *castMemberRepository) Insert(ctx context.Context, member *domain.CastMember) error {
	row := castMemberToRow(member)

	query := `
		INSERT INTO cast_members (id, name, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, row.ID, row.Name, row.Type, row.CreatedAt, row.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create cast member",
			zap.Error(err),
			zap.String("name", row.Name),
		)
		return fmt.Errorf("failed to create cast member: %w", err)
	}

	return nil
}

func (r *castMemberRepository) FindByID(ctx context.Context, id domain.UUID) (*domain.CastMember, error) {
	query := `SELECT ` + castMemberColumns + ` FROM cast_members WHERE id = $1`

	var row entity.CastMember
	err := r.db.QueryRow(ctx, query, id.String()).Scan(
		&row.ID,
		&row.Name,
		&row.Type,
		&row.CreatedAt,
		&row.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound(fmt.Sprintf("Cast Member %s not found", id))
	}
	if err != nil {
		r.log.Error("Failed to find cast member by ID",
			zap.Error(err),
			zap.String("cast_member_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find cast member: %w", err)
	}

	return castMemberFromRow(&row)
}

func (r *castMemberRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.CastMember, error) {
	ids = parseIDs(ids)
	if len(ids) == 0 {
		return []*domain.CastMember{}, nil
	}

	query := `SELECT ` + castMemberColumns + ` FROM cast_members WHERE id = ANY($1::uuid[]) ORDER BY name`

	members, err := r.scanAll(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find cast members by IDs", zap.Error(err), zap.Int("count", len(ids)))
		return nil, err
	}

	return members, nil
}

func (r *castMemberRepository) Paginate(ctx context.Context, filter, order string, page, perPage int) (Page[*domain.CastMember], error) {
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
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cast_members`+where, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count cast members", zap.Error(err), zap.String("filter", filter))
		return Page[*domain.CastMember]{}, fmt.Errorf("failed to count cast members: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM cast_members%s ORDER BY name %s, id LIMIT $%d OFFSET $%d`,
		castMemberColumns, where, orderDirection(order), argCount, argCount+1)
	args = append(args, perPage, (page-1)*perPage)

	members, err := r.scanAll(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all cast members",
			zap.Error(err),
			zap.Int("page", page),
			zap.Int("per_page", perPage),
		)
		return Page[*domain.CastMember]{}, err
	}

	return NewPage(members, total, page, perPage), nil
}

func (r *castMemberRepository) Update(ctx context.Context, member *domain.CastMember) error {
	row := castMemberToRow(member)

	query := `UPDATE cast_members SET name = $2, type = $3, updated_at = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, row.ID, row.Name, row.Type, row.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update cast member",
			zap.Error(err),
			zap.String("cast_member_id", row.ID.String()),
		)
		return fmt.Errorf("failed to update cast member: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound(fmt.Sprintf("Cast Member %s not found", row.ID))
	}

	return nil
}

func (r *castMemberRepository) DeleteByID(ctx context.Context, id domain.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM cast_members WHERE id = $1`, id.String())
	if err != nil {
		r.log.Error("Failed to delete cast member",
			zap.Error(err),
			zap.String("cast_member_id", id.String()),
		)
		return false, fmt.Errorf("failed to delete cast member: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *castMemberRepository) scanAll(ctx context.Context, query string, args ...interface{}) ([]*domain.CastMember, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find cast members: %w", err)
	}
	defer rows.Close()

	members := []*domain.CastMember{}
	for rows.Next() {
		var row entity.CastMember
		if err := rows.Scan(&row.ID, &row.Name, &row.Type, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cast member: %w", err)
		}

		member, err := castMemberFromRow(&row)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return members, nil
}

func castMemberToRow(m *domain.CastMember) entity.CastMember {
	return entity.CastMember{
		Base: entity.Base{
			ID:        uuid.MustParse(m.ID().String()),
			CreatedAt: m.CreatedAt(),
			UpdatedAt: m.UpdatedAt(),
		},
		Name: m.Name(),
		Type: int16(m.Type()),
	}
}

func castMemberFromRow(row *entity.CastMember) (*domain.CastMember, error) {
	member, err := domain.NewCastMember(domain.CastMemberParams{
		ID:        row.ID.String(),
		Name:      row.Name,
		Type:      domain.CastMemberType(row.Type),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load cast member %s: %w", row.ID, err)
	}
	return member, nil
}
