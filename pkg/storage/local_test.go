package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"video-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLocalStorage_StoreAndDelete(t *testing.T) {
	base := t.TempDir()
	s, err := NewLocalStorage(base, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx := context.Background()
	stored, err := s.Store(ctx, "video-1", &File{Name: "movie.MP4", Body: strings.NewReader("frames")})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored, "video-1/"))
	assert.Equal(t, ".mp4", filepath.Ext(stored))

	data, err := os.ReadFile(filepath.Join(base, stored))
	require.NoError(t, err)
	assert.Equal(t, "frames", string(data))

	require.NoError(t, s.Delete(ctx, stored))
	_, err = os.Stat(filepath.Join(base, stored))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_SameNameNeverOverwrites(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx := context.Background()
	first, err := s.Store(ctx, "v", &File{Name: "thumb.png", Body: strings.NewReader("a")})
	require.NoError(t, err)
	second, err := s.Store(ctx, "v", &File{Name: "thumb.png", Body: strings.NewReader("b")})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStorage_DeleteMissingIsNotAnError(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.NoError(t, s.Delete(context.Background(), "nope/never-stored.mp4"))
}

func TestLocalStorage_RejectsEscapingPaths(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Error(t, s.Delete(context.Background(), "../outside.txt"))
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(utils.StorageConfig{Driver: "gcs"}, zaptest.NewLogger(t))
	assert.Error(t, err)
}
