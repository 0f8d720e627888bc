package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrixParams() VideoParams {
	return VideoParams{
		Title:        "The Matrix",
		Description:  "A hacker learns the true nature of his reality.",
		YearLaunched: 1999,
		Duration:     136,
		Opened:       true,
		Rating:       Rating14,
	}
}

func TestNewVideo(t *testing.T) {
	v, err := NewVideo(matrixParams())
	require.NoError(t, err)

	assert.False(t, v.ID().IsZero())
	assert.Equal(t, "The Matrix", v.Title())
	assert.Equal(t, Rating14, v.Rating())
	assert.Equal(t, v.CreatedAt(), v.UpdatedAt())
	assert.Empty(t, v.CategoryIDs())

	_, ok := v.VideoFile()
	assert.False(t, ok)
}

func TestNewVideo_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *VideoParams)
		field  string
	}{
		{name: "short title", modify: func(p *VideoParams) { p.Title = "ab" }, field: "title"},
		{name: "blank description", modify: func(p *VideoParams) { p.Description = "   " }, field: "description"},
		{name: "year not positive", modify: func(p *VideoParams) { p.YearLaunched = 0 }, field: "year_launched"},
		{name: "duration not positive", modify: func(p *VideoParams) { p.Duration = -5 }, field: "duration"},
		{name: "unknown rating", modify: func(p *VideoParams) { p.Rating = "PG-13" }, field: "rating"},
		{name: "bad id", modify: func(p *VideoParams) { p.ID = "123" }, field: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := matrixParams()
			tt.modify(&p)

			_, err := NewVideo(p)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields(), tt.field)
		})
	}
}

func TestVideo_UpdateKeepsStateOnFailure(t *testing.T) {
	v, err := NewVideo(matrixParams())
	require.NoError(t, err)

	err = v.Update(VideoUpdate{Title: "x", Description: "still fine", YearLaunched: 2000, Duration: 10, Rating: RatingL})

	assert.True(t, IsValidationError(err))
	assert.Equal(t, "The Matrix", v.Title())
	assert.Equal(t, 1999, v.YearLaunched())
}

func TestVideo_UpdateTouches(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	p := matrixParams()
	p.CreatedAt = created
	v, err := NewVideo(p)
	require.NoError(t, err)

	require.NoError(t, v.Update(VideoUpdate{
		Title:        "The Matrix Reloaded",
		Description:  "Neo and the rebels fight on.",
		YearLaunched: 2003,
		Duration:     138,
		Rating:       Rating16,
	}))

	assert.Equal(t, "The Matrix Reloaded", v.Title())
	assert.False(t, v.Opened())
	assert.Equal(t, created, v.CreatedAt())
	assert.True(t, v.UpdatedAt().After(created))
}

func TestVideo_RelationsAreSets(t *testing.T) {
	v, err := NewVideo(matrixParams())
	require.NoError(t, err)

	v.AddCategory("c1")
	v.AddCategory("c1")
	v.AddCategory("c2")
	v.RemoveCategory("c1")
	v.AddGenre("g1")
	v.AddCastMember("m1")
	v.RemoveCastMember("missing")

	assert.Equal(t, []string{"c2"}, v.CategoryIDs())
	assert.Equal(t, []string{"g1"}, v.GenreIDs())
	assert.Equal(t, []string{"m1"}, v.CastMemberIDs())

	v.ReplaceRelations([]string{"c3", "c3"}, nil, []string{"m2"})
	assert.Equal(t, []string{"c3"}, v.CategoryIDs())
	assert.Empty(t, v.GenreIDs())
	assert.Equal(t, []string{"m2"}, v.CastMemberIDs())
}

func TestVideo_GettersReturnCopies(t *testing.T) {
	v, err := NewVideo(matrixParams())
	require.NoError(t, err)
	v.AddGenre("g1")

	ids := v.GenreIDs()
	ids[0] = "tampered"

	assert.Equal(t, []string{"g1"}, v.GenreIDs())
}

func TestVideo_OpenClose(t *testing.T) {
	v, err := NewVideo(matrixParams())
	require.NoError(t, err)

	v.Close()
	assert.False(t, v.Opened())
	v.Open()
	assert.True(t, v.Opened())
}

func TestVideo_CloneIsIndependent(t *testing.T) {
	v, err := NewVideo(matrixParams())
	require.NoError(t, err)
	v.AddCategory("c1")

	c := v.Clone()
	c.AddCategory("c2")
	img, err := NewImage("banner.jpg")
	require.NoError(t, err)
	c.SetBannerFile(img)

	assert.Equal(t, []string{"c1"}, v.CategoryIDs())
	_, ok := v.BannerFile()
	assert.False(t, ok)
}

func TestVideoCreatedEvent(t *testing.T) {
	v, err := NewVideo(matrixParams())
	require.NoError(t, err)

	_, ok := NewVideoCreatedEvent(v)
	assert.False(t, ok, "no event without a video file")

	media, err := NewMedia("abc/movie.mp4", MediaStatusPending, MediaTypeVideo, "")
	require.NoError(t, err)
	v.SetVideoFile(media)

	event, ok := NewVideoCreatedEvent(v)
	require.True(t, ok)
	assert.Equal(t, VideoCreatedEventName, event.Name())
	assert.Equal(t, v.ID().String(), event.Key())
	assert.Equal(t, "abc/movie.mp4", event.FilePath)
}
