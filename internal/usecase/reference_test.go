package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"video-catalog/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReferences_EmptyListSkipsLookup(t *testing.T) {
	called := false
	find := func(ctx context.Context, ids []string) ([]string, error) {
		called = true
		return nil, nil
	}

	require.NoError(t, validateReferences(context.Background(), nil, "Genre", "Genres", find))
	require.NoError(t, validateReferences(context.Background(), []string{"", "  "}, "Genre", "Genres", find))
	assert.False(t, called)
}

func TestValidateReferences_DeduplicatesBeforeLookup(t *testing.T) {
	id := uuid.NewString()
	var looked []string
	find := func(ctx context.Context, ids []string) ([]string, error) {
		looked = ids
		return ids, nil
	}

	err := validateReferences(context.Background(), []string{id, strings.ToUpper(id), id}, "Genre", "Genres", find)

	require.NoError(t, err)
	assert.Equal(t, []string{id}, looked)
}

func TestValidateReferences_MissingIDs(t *testing.T) {
	a, b, c := uuid.NewString(), uuid.NewString(), uuid.NewString()
	find := func(ctx context.Context, ids []string) ([]string, error) {
		return []string{b}, nil
	}

	err := validateReferences(context.Background(), []string{a, b, c}, "Category", "Categories", find)
	assert.True(t, apperror.IsNotFound(err))
	assert.EqualError(t, err, "Categories "+a+", "+c+" not found")

	err = validateReferences(context.Background(), []string{a, b}, "Category", "Categories", find)
	assert.EqualError(t, err, "Category "+a+" not found")
}

func TestValidateReferences_MalformedIDIsMissing(t *testing.T) {
	find := func(ctx context.Context, ids []string) ([]string, error) {
		return []string{}, nil
	}

	err := validateReferences(context.Background(), []string{"bogus"}, "Genre", "Genres", find)

	assert.EqualError(t, err, "Genre bogus not found")
}

func TestValidateReferences_LookupError(t *testing.T) {
	boom := errors.New("timeout")
	find := func(ctx context.Context, ids []string) ([]string, error) {
		return nil, boom
	}

	err := validateReferences(context.Background(), []string{uuid.NewString()}, "Genre", "Genres", find)

	assert.ErrorIs(t, err, boom)
	assert.False(t, apperror.IsNotFound(err))
}
