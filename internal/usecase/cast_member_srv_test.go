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

func TestCastMemberService_CreateCastMember(t *testing.T) {
	members := &mockCastMemberRepo{}
	svc := NewCastMemberService(&repository.Repository{CastMember: members}, zaptest.NewLogger(t))

	members.On("Insert", mock.Anything, mock.MatchedBy(func(m *domain.CastMember) bool {
		return m.Type() == domain.CastMemberTypeDirector
	})).Return(nil).Once()

	resp, err := svc.CreateCastMember(context.Background(), &request.CastMemberRequest{Name: "Denis Villeneuve", Type: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Type)
	members.AssertExpectations(t)
}

func TestCastMemberService_CreateCastMember_InvalidType(t *testing.T) {
	svc := NewCastMemberService(&repository.Repository{CastMember: &mockCastMemberRepo{}}, zaptest.NewLogger(t))

	_, err := svc.CreateCastMember(context.Background(), &request.CastMemberRequest{Name: "Someone", Type: 3})

	assert.True(t, domain.IsValidationError(err))
}

func TestCastMemberService_UpdateCastMember_NotFound(t *testing.T) {
	members := &mockCastMemberRepo{}
	svc := NewCastMemberService(&repository.Repository{CastMember: members}, zaptest.NewLogger(t))

	id := domain.RandomUUID()
	members.On("FindByID", mock.Anything, id).Return(nil, apperror.NotFound("Cast Member not found")).Once()

	_, err := svc.UpdateCastMember(context.Background(), id.String(), &request.CastMemberRequest{Name: "Someone", Type: 2})

	assert.True(t, apperror.IsNotFound(err))
}
