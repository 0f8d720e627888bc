package usecase

import (
	"context"
	"fmt"

	"video-catalog/internal/data/repository"
	"video-catalog/internal/domain"
	"video-catalog/internal/dto/request"
	"video-catalog/internal/dto/response"
	"video-catalog/pkg/apperror"

	"go.uber.org/zap"
)

type CastMemberService interface {
	ListCastMembers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CastMemberResponse], error)
	GetCastMember(ctx context.Context, memberID string) (*response.CastMemberResponse, error)
	CreateCastMember(ctx context.Context, req *request.CastMemberRequest) (*response.CastMemberResponse, error)
	UpdateCastMember(ctx context.Context, memberID string, req *request.CastMemberRequest) (*response.CastMemberResponse, error)
	DeleteCastMember(ctx context.Context, memberID string) error
}

type castMemberService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCastMemberService(repo *repository.Repository, log *zap.Logger) CastMemberService {
	return &castMemberService{
		repo: repo,
		log:  log.With(zap.String("service", "cast_member")),
	}
}

func (s *castMemberService) ListCastMembers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CastMemberResponse], error) {
	page, err := s.repo.CastMember.Paginate(ctx, req.Filter, req.Direction(), req.Page, req.Limit())
	if err != nil {
		s.log.Error("Failed to get cast members", zap.Error(err), zap.Int("page", req.Page))
		return nil, fmt.Errorf("get cast members: %w", err)
	}

	return response.NewPaginatedResponse(page, response.CastMemberToResponse), nil
}

func (s *castMemberService) GetCastMember(ctx context.Context, memberID string) (*response.CastMemberResponse, error) {
	id, err := parseID("Cast Member", memberID)
	if err != nil {
		return nil, err
	}

	member, err := s.repo.CastMember.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.CastMemberToResponse(member)
	return &resp, nil
}

func (s *castMemberService) CreateCastMember(ctx context.Context, req *request.CastMemberRequest) (*response.CastMemberResponse, error) {
	member, err := domain.NewCastMember(domain.CastMemberParams{
		Name: req.Name,
		Type: domain.CastMemberType(req.Type),
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.CastMember.Insert(ctx, member); err != nil {
		return nil, fmt.Errorf("create cast member: %w", err)
	}

	s.log.Info("Cast member created", zap.String("cast_member_id", member.ID().String()))

	resp := response.CastMemberToResponse(member)
	return &resp, nil
}

func (s *castMemberService) UpdateCastMember(ctx context.Context, memberID string, req *request.CastMemberRequest) (*response.CastMemberResponse, error) {
	id, err := parseID("Cast Member", memberID)
	if err != nil {
		return nil, err
	}

	member, err := s.repo.CastMember.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := member.Update(req.Name, domain.CastMemberType(req.Type)); err != nil {
		return nil, err
	}

	if err := s.repo.CastMember.Update(ctx, member); err != nil {
		return nil, err
	}

	resp := response.CastMemberToResponse(member)
	return &resp, nil
}

func (s *castMemberService) DeleteCastMember(ctx context.Context, memberID string) error {
	id, err := parseID("Cast Member", memberID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.CastMember.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete cast member: %w", err)
	}
	if !deleted {
		return apperror.NotFound(fmt.Sprintf("Cast Member %s not found", id))
	}

	return nil
}
