package usecase

import (
	"context"
	"fmt"
	"strings"

	"video-catalog/internal/data/repository"
	"video-catalog/internal/domain"
	"video-catalog/pkg/apperror"

	"github.com/google/uuid"
)

// referenceValidator checks that every referenced id exists, one bulk lookup per type.
type referenceValidator struct {
	repo *repository.Repository
}

func (v referenceValidator) validateVideoRefs(ctx context.Context, categoryIDs, genreIDs, castMemberIDs []string) error {
	if err := v.validateCategories(ctx, categoryIDs); err != nil {
		return err
	}
	if err := v.validateGenres(ctx, genreIDs); err != nil {
		return err
	}
	return v.validateCastMembers(ctx, castMemberIDs)
}

func (v referenceValidator) validateCategories(ctx context.Context, ids []string) error {
	return validateReferences(ctx, ids, "Category", "Categories", func(ctx context.Context, ids []string) ([]string, error) {
		found, err := v.repo.Category.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		out := make([]string, len(found))
		for i, c := range found {
			out[i] = c.ID().String()
		}
		return out, nil
	})
}

func (v referenceValidator) validateGenres(ctx context.Context, ids []string) error {
	return validateReferences(ctx, ids, "Genre", "Genres", func(ctx context.Context, ids []string) ([]string, error) {
		found, err := v.repo.Genre.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		out := make([]string, len(found))
		for i, g := range found {
			out[i] = g.ID().String()
		}
		return out, nil
	})
}

func (v referenceValidator) validateCastMembers(ctx context.Context, ids []string) error {
	return validateReferences(ctx, ids, "Cast Member", "Cast Members", func(ctx context.Context, ids []string) ([]string, error) {
		found, err := v.repo.CastMember.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		out := make([]string, len(found))
		for i, m := range found {
			out[i] = m.ID().String()
		}
		return out, nil
	})
}

type idFinder func(ctx context.Context, ids []string) ([]string, error)

// validateReferences is a no-op for an empty list. Otherwise the error names
// every id that was not found.
func validateReferences(ctx context.Context, ids []string, singular, plural string, find idFinder) error {
	unique := canonicalIDs(ids)
	if len(unique) == 0 {
		return nil
	}

	found, err := find(ctx, unique)
	if err != nil {
		return fmt.Errorf("find %s: %w", strings.ToLower(plural), err)
	}

	existing := domain.NewIDSet(found...)
	var missing []string
	for _, id := range unique {
		if !existing.Has(id) {
			missing = append(missing, id)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	label := singular
	if len(missing) > 1 {
		label = plural
	}
	return apperror.NotFound(fmt.Sprintf("%s %s not found", label, strings.Join(missing, ", ")))
}

// canonicalIDs lower-cases valid uuids and drops blanks and duplicates.
// Malformed ids are kept as sent so they show up as missing.
func canonicalIDs(ids []string) []string {
	set := domain.NewIDSet()
	for _, raw := range ids {
		raw = strings.TrimSpace(raw)
		if parsed, err := uuid.Parse(raw); err == nil {
			raw = parsed.String()
		}
		set.Add(raw)
	}
	return set.Values()
}
