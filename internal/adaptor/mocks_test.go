package adaptor

import (
	"context"

	"video-catalog/internal/dto/request"
	"video-catalog/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) ListCategories(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.CategoryResponse]), args.Error(1)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, categoryID string) (*response.CategoryResponse, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, categoryID string, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	args := m.Called(ctx, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

type mockVideoService struct {
	mock.Mock
}

func (m *mockVideoService) ListVideos(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VideoResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.VideoResponse]), args.Error(1)
}

func (m *mockVideoService) GetVideo(ctx context.Context, videoID string) (*response.VideoResponse, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.VideoResponse), args.Error(1)
}

func (m *mockVideoService) CreateVideo(ctx context.Context, req *request.VideoRequest) (*response.VideoResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.VideoResponse), args.Error(1)
}

func (m *mockVideoService) UpdateVideo(ctx context.Context, videoID string, req *request.VideoRequest) (*response.VideoResponse, error) {
	args := m.Called(ctx, videoID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.VideoResponse), args.Error(1)
}

func (m *mockVideoService) DeleteVideo(ctx context.Context, videoID string) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

func (m *mockVideoService) UpdateEncodedVideoPath(ctx context.Context, videoID, encodedPath string) error {
	args := m.Called(ctx, videoID, encodedPath)
	return args.Error(0)
}
