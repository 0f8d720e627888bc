package usecase

import (
	"context"
	"testing"

	"video-catalog/internal/data/repository"
	"video-catalog/internal/domain"
	"video-catalog/internal/dto/request"
	"video-catalog/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	categories := &mockCategoryRepo{}
	svc := NewCategoryService(&repository.Repository{Category: categories}, zaptest.NewLogger(t))

	categories.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil).Once()

	resp, err := svc.CreateCategory(context.Background(), &request.CategoryRequest{Name: "Documentary"})
	require.NoError(t, err)

	assert.Equal(t, "Documentary", resp.Name)
	assert.True(t, resp.IsActive)
	assert.Nil(t, resp.Description)
	categories.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_Invalid(t *testing.T) {
	svc := NewCategoryService(&repository.Repository{Category: &mockCategoryRepo{}}, zaptest.NewLogger(t))

	_, err := svc.CreateCategory(context.Background(), &request.CategoryRequest{Name: "ab"})

	assert.True(t, domain.IsValidationError(err))
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	categories := &mockCategoryRepo{}
	svc := NewCategoryService(&repository.Repository{Category: categories}, zaptest.NewLogger(t))

	existing, err := domain.NewCategory(domain.CategoryParams{Name: "Docs", IsActive: true})
	require.NoError(t, err)

	inactive := false
	description := "Non-fiction films"
	categories.On("FindByID", mock.Anything, existing.ID()).Return(existing, nil).Once()
	categories.On("Update", mock.Anything, existing).Return(nil).Once()

	resp, err := svc.UpdateCategory(context.Background(), existing.ID().String(), &request.CategoryRequest{
		Name:        "Documentary",
		Description: &description,
		IsActive:    &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "Documentary", resp.Name)
	require.NotNil(t, resp.Description)
	assert.Equal(t, description, *resp.Description)
	assert.False(t, resp.IsActive)
	categories.AssertExpectations(t)
}

func TestCategoryService_GetCategory_MalformedID(t *testing.T) {
	svc := NewCategoryService(&repository.Repository{Category: &mockCategoryRepo{}}, zaptest.NewLogger(t))

	_, err := svc.GetCategory(context.Background(), "42")

	assert.True(t, apperror.IsNotFound(err))
}
