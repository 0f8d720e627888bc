package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"video-catalog/internal/data/entity"
	"video-catalog/internal/domain"
	"video-catalog/pkg/apperror"
	"video-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VideoRepository interface {
	Insert(ctx context.Context, video *domain.Video) error
	FindByID(ctx context.Context, id domain.UUID) (*domain.Video, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Video, error)
	Paginate(ctx context.Context, filter, order string, page, perPage int) (Page[*domain.Video], error)
	// Update writes the scalar columns and the relation sets.
	Update(ctx context.Context, video *domain.Video) error
	DeleteByID(ctx context.Context, id domain.UUID) (bool, error)

	// UpdateMedia writes the image paths and upserts the trailer and video file rows.
	UpdateMedia(ctx context.Context, video *domain.Video) error
}

type videoRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVideoRepository(db database.PgxIface, log *zap.Logger) VideoRepository {
	return &videoRepository{
		db:  db,
		log: log.With(zap.String("repository", "video")),
	}
}

const videoColumns = `id, title, description, year_launched, duration, opened, rating,
	thumb_file, thumb_half, banner_file, created_at, updated_at`

func (r *videoRepository) Insert(ctx context.Context, video *domain.Video) error {
	row := videoToRow(video)

	query := `
		INSERT INTO videos (id, title, description, year_launched, duration, opened, rating,
		                    thumb_file, thumb_half, banner_file, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		row.ID,
		row.Title,
		row.Description,
		row.YearLaunched,
		row.Duration,
		row.Opened,
		row.Rating,
		row.ThumbFile,
		row.ThumbHalf,
		row.BannerFile,
		row.CreatedAt,
		row.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create video",
			zap.Error(err),
			zap.String("title", row.Title),
		)
		return fmt.Errorf("failed to create video: %w", err)
	}

	if err := r.syncRelations(ctx, row.ID, video); err != nil {
		return err
	}

	return r.upsertMedias(ctx, video)
}

func (r *videoRepository) FindByID(ctx context.Context, id domain.UUID) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	var row entity.Video
	err := scanVideo(r.db.QueryRow(ctx, query, id.String()), &row)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound(fmt.Sprintf("Video %s not found", id))
	}
	if err != nil {
		r.log.Error("Failed to find video by ID",
			zap.Error(err),
			zap.String("video_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find video: %w", err)
	}

	videos, err := r.hydrate(ctx, []*entity.Video{&row})
	if err != nil {
		return nil, err
	}

	return videos[0], nil
}

func (r *videoRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Video, error) {
	ids = parseIDs(ids)
	if len(ids) == 0 {
		return []*domain.Video{}, nil
	}

	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = ANY($1::uuid[]) ORDER BY title`

	videos, err := r.scanAll(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find videos by IDs", zap.Error(err), zap.Int("count", len(ids)))
		return nil, err
	}

	return videos, nil
}

func (r *videoRepository) Paginate(ctx context.Context, filter, order string, page, perPage int) (Page[*domain.Video], error) {
	page, perPage = normalizePage(page, perPage)

	// Build query with optional filter
	where := ""
	args := []interface{}{}
	argCount := 1

	if strings.TrimSpace(filter) != "" {
		where = fmt.Sprintf(" WHERE title ILIKE $%d", argCount)
		args = append(args, likePattern(filter))
		argCount++
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM videos`+where, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count videos", zap.Error(err), zap.String("filter", filter))
		return Page[*domain.Video]{}, fmt.Errorf("failed to count videos: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM videos%s ORDER BY title %s, id LIMIT $%d OFFSET $%d`,
		videoColumns, where, orderDirection(order), argCount, argCount+1)
	args = append(args, perPage, (page-1)*perPage)

	videos, err := r.scanAll(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all videos",
			zap.Error(err),
			zap.Int("page", page),
			zap.Int("per_page", perPage),
		)
		return Page[*domain.Video]{}, err
	}

	r.log.Debug("Videos found",
		zap.Int("count", len(videos)),
		zap.Int64("total", total),
	)

	return NewPage(videos, total, page, perPage), nil
}

func (r *videoRepository) Update(ctx context.Context, video *domain.Video) error {
	row := videoToRow(video)

	query := `
		UPDATE videos
		SET title = $2, description = $3, year_launched = $4, duration = $5,
		    opened = $6, rating = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		row.ID,
		row.Title,
		row.Description,
		row.YearLaunched,
		row.Duration,
		row.Opened,
		row.Rating,
		row.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update video",
			zap.Error(err),
			zap.String("video_id", row.ID.String()),
		)
		return fmt.Errorf("failed to update video: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound(fmt.Sprintf("Video %s not found", row.ID))
	}

	return r.syncRelations(ctx, row.ID, video)
}

func (r *videoRepository) DeleteByID(ctx context.Context, id domain.UUID) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id.String())
	if err != nil {
		r.log.Error("Failed to delete video",
			zap.Error(err),
			zap.String("video_id", id.String()),
		)
		return false, fmt.Errorf("failed to delete video: %w", err)
	}

	deleted := result.RowsAffected() > 0
	if deleted {
		r.log.Info("Video deleted", zap.String("video_id", id.String()))
	}
	return deleted, nil
}

func (r *videoRepository) UpdateMedia(ctx context.Context, video *domain.Video) error {
	row := videoToRow(video)

	query := `
		UPDATE videos
		SET thumb_file = $2, thumb_half = $3, banner_file = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		row.ID,
		row.ThumbFile,
		row.ThumbHalf,
		row.BannerFile,
		row.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update video images",
			zap.Error(err),
			zap.String("video_id", row.ID.String()),
		)
		return fmt.Errorf("failed to update video media: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound(fmt.Sprintf("Video %s not found", row.ID))
	}

	return r.upsertMedias(ctx, video)
}

func (r *videoRepository) syncRelations(ctx context.Context, videoID uuid.UUID, video *domain.Video) error {
	if err := videoCategories.sync(ctx, r.db, r.log, videoID, video.CategoryIDs()); err != nil {
		return err
	}
	if err := videoGenres.sync(ctx, r.db, r.log, videoID, video.GenreIDs()); err != nil {
		return err
	}
	return videoCastMembers.sync(ctx, r.db, r.log, videoID, video.CastMemberIDs())
}

func (r *videoRepository) upsertMedias(ctx context.Context, video *domain.Video) error {
	query := `
		INSERT INTO video_medias (video_id, type, file_path, status, encoded_path, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (video_id, type) DO UPDATE
		SET file_path = EXCLUDED.file_path, status = EXCLUDED.status,
		    encoded_path = EXCLUDED.encoded_path, updated_at = EXCLUDED.updated_at
	`

	for _, media := range videoMediaRows(video) {
		_, err := r.db.Exec(ctx, query,
			media.VideoID,
			media.Type,
			media.FilePath,
			media.Status,
			media.EncodedPath,
			media.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to upsert video media",
				zap.Error(err),
				zap.String("video_id", media.VideoID.String()),
				zap.Int16("type", media.Type),
			)
			return fmt.Errorf("failed to upsert video media: %w", err)
		}
	}

	return nil
}

func (r *videoRepository) loadMedias(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]entity.VideoMedia, error) {
	out := make(map[uuid.UUID][]entity.VideoMedia, len(ids))

	query := `
		SELECT video_id, type, file_path, status, encoded_path, updated_at
		FROM video_medias
		WHERE video_id = ANY($1::uuid[])
	`

	rows, err := r.db.Query(ctx, query, uuidStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to load video medias: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m entity.VideoMedia
		if err := rows.Scan(&m.VideoID, &m.Type, &m.FilePath, &m.Status, &m.EncodedPath, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan video media: %w", err)
		}
		out[m.VideoID] = append(out[m.VideoID], m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return out, nil
}

func (r *videoRepository) scanAll(ctx context.Context, query string, args ...interface{}) ([]*domain.Video, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find videos: %w", err)
	}
	defer rows.Close()

	var videoRows []*entity.Video
	for rows.Next() {
		var row entity.Video
		if err := scanVideo(rows, &row); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videoRows = append(videoRows, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	rows.Close()

	return r.hydrate(ctx, videoRows)
}

// hydrate loads relations and medias of every row and builds the aggregates.
func (r *videoRepository) hydrate(ctx context.Context, videoRows []*entity.Video) ([]*domain.Video, error) {
	ids := make([]uuid.UUID, len(videoRows))
	for i, row := range videoRows {
		ids[i] = row.ID
	}

	categories, err := videoCategories.load(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	genres, err := videoGenres.load(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	castMembers, err := videoCastMembers.load(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	medias, err := r.loadMedias(ctx, ids)
	if err != nil {
		return nil, err
	}

	videos := make([]*domain.Video, 0, len(videoRows))
	for _, row := range videoRows {
		params := domain.VideoParams{
			ID:            row.ID.String(),
			Title:         row.Title,
			Description:   row.Description,
			YearLaunched:  row.YearLaunched,
			Duration:      row.Duration,
			Opened:        row.Opened,
			Rating:        domain.Rating(row.Rating),
			CategoryIDs:   categories[row.ID],
			GenreIDs:      genres[row.ID],
			CastMemberIDs: castMembers[row.ID],
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		}

		if params.ThumbFile, err = imageFromColumn(row.ThumbFile); err != nil {
			return nil, err
		}
		if params.ThumbHalf, err = imageFromColumn(row.ThumbHalf); err != nil {
			return nil, err
		}
		if params.BannerFile, err = imageFromColumn(row.BannerFile); err != nil {
			return nil, err
		}

		for _, m := range medias[row.ID] {
			encoded := ""
			if m.EncodedPath != nil {
				encoded = *m.EncodedPath
			}
			media, err := domain.NewMedia(m.FilePath, domain.MediaStatus(m.Status), domain.MediaType(m.Type), encoded)
			if err != nil {
				return nil, fmt.Errorf("failed to load media of video %s: %w", row.ID, err)
			}
			switch media.Type() {
			case domain.MediaTypeTrailer:
				params.TrailerFile = &media
			case domain.MediaTypeVideo:
				params.VideoFile = &media
			}
		}

		video, err := domain.NewVideo(params)
		if err != nil {
			return nil, fmt.Errorf("failed to load video %s: %w", row.ID, err)
		}
		videos = append(videos, video)
	}

	return videos, nil
}

func scanVideo(row pgx.Row, v *entity.Video) error {
	return row.Scan(
		&v.ID,
		&v.Title,
		&v.Description,
		&v.YearLaunched,
		&v.Duration,
		&v.Opened,
		&v.Rating,
		&v.ThumbFile,
		&v.ThumbHalf,
		&v.BannerFile,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
}

func videoToRow(v *domain.Video) entity.Video {
	row := entity.Video{
		Base: entity.Base{
			ID:        uuid.MustParse(v.ID().String()),
			CreatedAt: v.CreatedAt(),
			UpdatedAt: v.UpdatedAt(),
		},
		Title:        v.Title(),
		Description:  v.Description(),
		YearLaunched: v.YearLaunched(),
		Duration:     v.Duration(),
		Opened:       v.Opened(),
		Rating:       string(v.Rating()),
	}

	if img, ok := v.ThumbFile(); ok {
		row.ThumbFile = stringPtr(img.Path())
	}
	if img, ok := v.ThumbHalf(); ok {
		row.ThumbHalf = stringPtr(img.Path())
	}
	if img, ok := v.BannerFile(); ok {
		row.BannerFile = stringPtr(img.Path())
	}

	return row
}

func videoMediaRows(v *domain.Video) []entity.VideoMedia {
	var rows []entity.VideoMedia
	now := time.Now()
	id := uuid.MustParse(v.ID().String())

	for _, slot := range []func() (domain.Media, bool){v.TrailerFile, v.VideoFile} {
		media, ok := slot()
		if !ok {
			continue
		}
		var encoded *string
		if p := media.EncodedPath(); p != "" {
			encoded = stringPtr(p)
		}
		rows = append(rows, entity.VideoMedia{
			VideoID:     id,
			Type:        int16(media.Type()),
			FilePath:    media.FilePath(),
			Status:      int16(media.Status()),
			EncodedPath: encoded,
			UpdatedAt:   now,
		})
	}

	return rows
}

func imageFromColumn(path *string) (*domain.Image, error) {
	if path == nil || *path == "" {
		return nil, nil
	}
	img, err := domain.NewImage(*path)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func stringPtr(s string) *string {
	return &s
}
