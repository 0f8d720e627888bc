package usecase

import (
	"errors"

	"video-catalog/internal/domain"
)

var ErrBuilderEmpty = errors.New("video builder has no entity, call CreateEntity or SetEntity first")

// VideoBuilder assembles a Video and attaches its media. CreateEntity with an
// empty ID creates a new video; with an ID it rebuilds that video. Each Add
// replaces whatever the slot held before.
type VideoBuilder struct {
	video *domain.Video
}

func NewVideoBuilder() *VideoBuilder {
	return &VideoBuilder{}
}

func (b *VideoBuilder) CreateEntity(params domain.VideoParams) error {
	video, err := domain.NewVideo(params)
	if err != nil {
		return err
	}
	b.video = video
	return nil
}

func (b *VideoBuilder) SetEntity(video *domain.Video) {
	b.video = video
}

func (b *VideoBuilder) Entity() (*domain.Video, error) {
	if b.video == nil {
		return nil, ErrBuilderEmpty
	}
	return b.video, nil
}

func (b *VideoBuilder) AddThumbFile(path string) error {
	return b.withImage(path, (*domain.Video).SetThumbFile)
}

func (b *VideoBuilder) AddThumbHalf(path string) error {
	return b.withImage(path, (*domain.Video).SetThumbHalf)
}

func (b *VideoBuilder) AddBannerFile(path string) error {
	return b.withImage(path, (*domain.Video).SetBannerFile)
}

func (b *VideoBuilder) AddTrailerFile(path string, status domain.MediaStatus) error {
	return b.withMedia(path, status, domain.MediaTypeTrailer, (*domain.Video).SetTrailerFile)
}

func (b *VideoBuilder) AddVideoFile(path string, status domain.MediaStatus) error {
	return b.withMedia(path, status, domain.MediaTypeVideo, (*domain.Video).SetVideoFile)
}

func (b *VideoBuilder) withImage(path string, set func(*domain.Video, domain.Image)) error {
	if b.video == nil {
		return ErrBuilderEmpty
	}
	img, err := domain.NewImage(path)
	if err != nil {
		return err
	}
	set(b.video, img)
	return nil
}

func (b *VideoBuilder) withMedia(path string, status domain.MediaStatus, mediaType domain.MediaType, set func(*domain.Video, domain.Media)) error {
	if b.video == nil {
		return ErrBuilderEmpty
	}
	media, err := domain.NewMedia(path, status, mediaType, "")
	if err != nil {
		return err
	}
	set(b.video, media)
	return nil
}
