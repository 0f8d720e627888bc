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
	"video-catalog/pkg/events"
	"video-catalog/pkg/storage"

	"go.uber.org/zap"
)

type VideoService interface {
	ListVideos(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VideoResponse], error)
	GetVideo(ctx context.Context, videoID string) (*response.VideoResponse, error)
	CreateVideo(ctx context.Context, req *request.VideoRequest) (*response.VideoResponse, error)
	UpdateVideo(ctx context.Context, videoID string, req *request.VideoRequest) (*response.VideoResponse, error)
	DeleteVideo(ctx context.Context, videoID string) error
	UpdateEncodedVideoPath(ctx context.Context, videoID, encodedPath string) error
}

type videoService struct {
	repo    *repository.Repository
	tx      database.TxManager
	storage storage.FileStorage
	events  events.Dispatcher
	refs    referenceValidator
	log     *zap.Logger
}

func NewVideoService(
	repo *repository.Repository,
	tx database.TxManager,
	fileStorage storage.FileStorage,
	dispatcher events.Dispatcher,
	log *zap.Logger,
) VideoService {
	return &videoService{
		repo:    repo,
		tx:      tx,
		storage: fileStorage,
		events:  dispatcher,
		refs:    referenceValidator{repo: repo},
		log:     log.With(zap.String("service", "video")),
	}
}

func (s *videoService) ListVideos(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VideoResponse], error) {
	page, err := s.repo.Video.Paginate(ctx, req.Filter, req.Direction(), req.Page, req.Limit())
	if err != nil {
		s.log.Error("Failed to get videos",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get videos: %w", err)
	}

	return response.NewPaginatedResponse(page, response.VideoToResponse), nil
}

func (s *videoService) GetVideo(ctx context.Context, videoID string) (*response.VideoResponse, error) {
	id, err := parseID("Video", videoID)
	if err != nil {
		return nil, err
	}

	video, err := s.repo.Video.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.VideoToResponse(video)
	return &resp, nil
}

func (s *videoService) CreateVideo(ctx context.Context, req *request.VideoRequest) (*response.VideoResponse, error) {
	prepare := func(ctx context.Context) (*VideoBuilder, error) {
		builder := NewVideoBuilder()
		if err := builder.CreateEntity(videoParams(req)); err != nil {
			return nil, err
		}
		return builder, nil
	}

	video, err := s.save(ctx, req, prepare, s.repo.Video.Insert)
	if err != nil {
		s.log.Warn("Failed to create video", zap.Error(err), zap.String("title", req.Title))
		return nil, err
	}

	s.log.Info("Video created",
		zap.String("video_id", video.ID().String()),
		zap.String("title", video.Title()),
	)

	resp := response.VideoToResponse(video)
	return &resp, nil
}

func (s *videoService) UpdateVideo(ctx context.Context, videoID string, req *request.VideoRequest) (*response.VideoResponse, error) {
	id, err := parseID("Video", videoID)
	if err != nil {
		return nil, err
	}

	prepare := func(ctx context.Context) (*VideoBuilder, error) {
		existing, err := s.repo.Video.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}

		err = existing.Update(domain.VideoUpdate{
			Title:        req.Title,
			Description:  req.Description,
			YearLaunched: req.YearLaunched,
			Duration:     req.Duration,
			Opened:       req.Opened,
			Rating:       domain.Rating(req.Rating),
		})
		if err != nil {
			return nil, err
		}
		existing.ReplaceRelations(
			canonicalIDs(req.CategoriesID),
			canonicalIDs(req.GenresID),
			canonicalIDs(req.CastMembersID),
		)

		builder := NewVideoBuilder()
		builder.SetEntity(existing)
		return builder, nil
	}

	video, err := s.save(ctx, req, prepare, s.repo.Video.Update)
	if err != nil {
		s.log.Warn("Failed to update video", zap.Error(err), zap.String("video_id", videoID))
		return nil, err
	}

	s.log.Info("Video updated", zap.String("video_id", video.ID().String()))

	resp := response.VideoToResponse(video)
	return &resp, nil
}

func (s *videoService) DeleteVideo(ctx context.Context, videoID string) error {
	id, err := parseID("Video", videoID)
	if err != nil {
		return err
	}

	video, err := s.repo.Video.FindByID(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Video.DeleteByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete video", zap.Error(err), zap.String("video_id", videoID))
		return fmt.Errorf("delete video: %w", err)
	}
	if !deleted {
		return apperror.NotFound(fmt.Sprintf("Video %s not found", id))
	}

	s.deleteFiles(ctx, storedPaths(video))

	s.log.Info("Video deleted", zap.String("video_id", videoID))
	return nil
}

func (s *videoService) UpdateEncodedVideoPath(ctx context.Context, videoID, encodedPath string) error {
	id, err := parseID("Video", videoID)
	if err != nil {
		return err
	}

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
	}()

	txCtx := tx.Context()

	video, err := s.repo.Video.FindByID(txCtx, id)
	if err != nil {
		return err
	}

	media, ok := video.VideoFile()
	if !ok {
		return apperror.NotFound(fmt.Sprintf("Video file of video %s not found", id))
	}

	encoded, err := media.WithEncodedPath(encodedPath)
	if err != nil {
		return apperror.Wrap(apperror.ErrorTypeBadRequest, "invalid encoded path", err)
	}
	video.SetVideoFile(encoded)

	if err := s.repo.Video.UpdateMedia(txCtx, video); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.log.Error("Failed to commit encoded path", zap.Error(err), zap.String("video_id", videoID))
		return err
	}

	s.log.Info("Video encoded",
		zap.String("video_id", videoID),
		zap.String("encoded_path", encodedPath),
	)
	return nil
}

// save runs one insert or update inside a transaction. On any failure the
// transaction is rolled back, every file stored so far is deleted and the
// failure is returned as is. The video-created event goes out after commit.
func (s *videoService) save(
	ctx context.Context,
	req *request.VideoRequest,
	prepare func(ctx context.Context) (*VideoBuilder, error),
	write func(ctx context.Context, video *domain.Video) error,
) (*domain.Video, error) {
	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return nil, err
	}

	var stored []string
	video, event, err := s.apply(tx.Context(), req, prepare, write, &stored)
	if err == nil {
		if err = tx.Commit(); err != nil {
			s.log.Error("Failed to commit video", zap.Error(err))
		}
	}

	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		s.deleteFiles(ctx, stored)
		return nil, err
	}

	if event != nil {
		s.events.Dispatch(ctx, *event)
	}

	return video, nil
}

func (s *videoService) apply(
	ctx context.Context,
	req *request.VideoRequest,
	prepare func(ctx context.Context) (*VideoBuilder, error),
	write func(ctx context.Context, video *domain.Video) error,
	stored *[]string,
) (*domain.Video, *domain.VideoCreatedEvent, error) {
	if err := s.refs.validateVideoRefs(ctx, req.CategoriesID, req.GenresID, req.CastMembersID); err != nil {
		return nil, nil, err
	}

	builder, err := prepare(ctx)
	if err != nil {
		return nil, nil, err
	}

	video, err := builder.Entity()
	if err != nil {
		return nil, nil, err
	}

	if err := write(ctx, video); err != nil {
		return nil, nil, err
	}

	prefix := video.ID().String()
	for _, u := range uploads(req) {
		path, err := s.storage.Store(ctx, prefix, u.file)
		if err != nil {
			s.log.Error("Failed to store file",
				zap.Error(err),
				zap.String("video_id", prefix),
				zap.String("field", u.field),
			)
			return nil, nil, err
		}
		*stored = append(*stored, path)

		if err := u.attach(builder, path); err != nil {
			return nil, nil, err
		}
	}

	var event *domain.VideoCreatedEvent
	if req.VideoFile != nil {
		if e, ok := domain.NewVideoCreatedEvent(video); ok {
			event = &e
		}
	}

	if err := s.repo.Video.UpdateMedia(ctx, video); err != nil {
		return nil, nil, err
	}

	return video, event, nil
}

// deleteFiles is best-effort: one failed delete doesn't stop the others.
func (s *videoService) deleteFiles(ctx context.Context, paths []string) {
	ctx = context.WithoutCancel(ctx)
	for _, path := range paths {
		if err := s.storage.Delete(ctx, path); err != nil {
			s.log.Error("Failed to delete stored file", zap.Error(err), zap.String("path", path))
		}
	}
}

type upload struct {
	field  string
	file   *storage.File
	attach func(b *VideoBuilder, path string) error
}

// uploads lists the files present in req, images before media.
func uploads(req *request.VideoRequest) []upload {
	all := []upload{
		{field: "thumb_file", file: req.ThumbFile, attach: (*VideoBuilder).AddThumbFile},
		{field: "thumb_half", file: req.ThumbHalf, attach: (*VideoBuilder).AddThumbHalf},
		{field: "banner_file", file: req.BannerFile, attach: (*VideoBuilder).AddBannerFile},
		{field: "trailer_file", file: req.TrailerFile, attach: func(b *VideoBuilder, path string) error {
			return b.AddTrailerFile(path, domain.MediaStatusPending)
		}},
		{field: "video_file", file: req.VideoFile, attach: func(b *VideoBuilder, path string) error {
			return b.AddVideoFile(path, domain.MediaStatusPending)
		}},
	}

	present := make([]upload, 0, len(all))
	for _, u := range all {
		if u.file != nil {
			present = append(present, u)
		}
	}
	return present
}

func videoParams(req *request.VideoRequest) domain.VideoParams {
	return domain.VideoParams{
		Title:         req.Title,
		Description:   req.Description,
		YearLaunched:  req.YearLaunched,
		Duration:      req.Duration,
		Opened:        req.Opened,
		Rating:        domain.Rating(req.Rating),
		CategoryIDs:   canonicalIDs(req.CategoriesID),
		GenreIDs:      canonicalIDs(req.GenresID),
		CastMemberIDs: canonicalIDs(req.CastMembersID),
	}
}

func storedPaths(video *domain.Video) []string {
	var paths []string
	for _, img := range []func() (domain.Image, bool){video.ThumbFile, video.ThumbHalf, video.BannerFile} {
		if i, ok := img(); ok {
			paths = append(paths, i.Path())
		}
	}
	for _, media := range []func() (domain.Media, bool){video.TrailerFile, video.VideoFile} {
		if m, ok := media(); ok {
			paths = append(paths, m.FilePath())
		}
	}
	return paths
}

// parseID turns a malformed id into NotFound: no such resource can exist.
func parseID(entity, raw string) (domain.UUID, error) {
	id, err := domain.NewUUID(raw)
	if err != nil {
		return domain.UUID{}, apperror.NotFound(fmt.Sprintf("%s %s not found", entity, raw))
	}
	return id, nil
}
