package usecase

import (
	"testing"

	"video-catalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() domain.VideoParams {
	return domain.VideoParams{
		Title:        "Arrival",
		Description:  "A linguist works with the military to communicate with alien lifeforms.",
		YearLaunched: 2016,
		Duration:     116,
		Rating:       domain.Rating12,
	}
}

func TestVideoBuilder_EntityBeforeCreate(t *testing.T) {
	b := NewVideoBuilder()

	_, err := b.Entity()
	assert.ErrorIs(t, err, ErrBuilderEmpty)
	assert.ErrorIs(t, b.AddThumbFile("x.jpg"), ErrBuilderEmpty)
	assert.ErrorIs(t, b.AddVideoFile("x.mp4", domain.MediaStatusPending), ErrBuilderEmpty)
}

func TestVideoBuilder_CreateModes(t *testing.T) {
	b := NewVideoBuilder()
	require.NoError(t, b.CreateEntity(validParams()))
	created, err := b.Entity()
	require.NoError(t, err)
	assert.False(t, created.ID().IsZero())

	params := validParams()
	params.ID = created.ID().String()
	rebuilt := NewVideoBuilder()
	require.NoError(t, rebuilt.CreateEntity(params))
	video, err := rebuilt.Entity()
	require.NoError(t, err)
	assert.Equal(t, created.ID(), video.ID())
}

func TestVideoBuilder_CreateEntityRejectsInvalidInput(t *testing.T) {
	params := validParams()
	params.Rating = "99"

	err := NewVideoBuilder().CreateEntity(params)

	assert.True(t, domain.IsValidationError(err))
}

func TestVideoBuilder_LastWriteWins(t *testing.T) {
	b := NewVideoBuilder()
	require.NoError(t, b.CreateEntity(validParams()))

	require.NoError(t, b.AddBannerFile("first.jpg"))
	require.NoError(t, b.AddBannerFile("second.jpg"))
	require.NoError(t, b.AddTrailerFile("t1.mp4", domain.MediaStatusPending))
	require.NoError(t, b.AddTrailerFile("t2.mp4", domain.MediaStatusProcessing))

	video, err := b.Entity()
	require.NoError(t, err)

	banner, ok := video.BannerFile()
	require.True(t, ok)
	assert.Equal(t, "second.jpg", banner.Path())

	trailer, ok := video.TrailerFile()
	require.True(t, ok)
	assert.Equal(t, "t2.mp4", trailer.FilePath())
	assert.Equal(t, domain.MediaStatusProcessing, trailer.Status())
	assert.Equal(t, domain.MediaTypeTrailer, trailer.Type())
}

func TestVideoBuilder_SetEntity(t *testing.T) {
	video, err := domain.NewVideo(validParams())
	require.NoError(t, err)

	b := NewVideoBuilder()
	b.SetEntity(video)
	require.NoError(t, b.AddVideoFile("a.mp4", domain.MediaStatusPending))

	got, err := b.Entity()
	require.NoError(t, err)
	assert.Same(t, video, got)

	media, ok := got.VideoFile()
	require.True(t, ok)
	assert.Equal(t, domain.MediaTypeVideo, media.Type())
}

func TestVideoBuilder_RejectsEmptyPath(t *testing.T) {
	b := NewVideoBuilder()
	require.NoError(t, b.CreateEntity(validParams()))

	assert.Error(t, b.AddThumbHalf(""))
	assert.Error(t, b.AddVideoFile(" ", domain.MediaStatusPending))
}
