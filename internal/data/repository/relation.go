package repository

import (
	"context"
	"fmt"

	"video-catalog/internal/data/entity"
	"video-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// relationTable describes a bridge table between an owner and the ids it references.
type relationTable struct {
	name        string
	ownerColumn string
	refColumn   string
}

var (
	videoCategories  = relationTable{name: "video_categories", ownerColumn: "video_id", refColumn: "category_id"}
	videoGenres      = relationTable{name: "video_genres", ownerColumn: "video_id", refColumn: "genre_id"}
	videoCastMembers = relationTable{name: "video_cast_members", ownerColumn: "video_id", refColumn: "cast_member_id"}
	genreCategories  = relationTable{name: "genre_categories", ownerColumn: "genre_id", refColumn: "category_id"}
)

// sync replaces every row of ownerID with refIDs.
func (t relationTable) sync(ctx context.Context, db database.PgxIface, log *zap.Logger, ownerID uuid.UUID, refIDs []string) error {
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.name, t.ownerColumn)
	if _, err := db.Exec(ctx, deleteQuery, ownerID); err != nil {
		log.Error("Failed to clear relations",
			zap.Error(err),
			zap.String("table", t.name),
			zap.String("owner_id", ownerID.String()),
		)
		return fmt.Errorf("failed to clear %s: %w", t.name, err)
	}

	if len(refIDs) == 0 {
		return nil
	}

	// Build batch insert
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES `, t.name, t.ownerColumn, t.refColumn)
	args := []interface{}{}

	for i, refID := range refIDs {
		ref, err := uuid.Parse(refID)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", t.refColumn, refID, err)
		}
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2)
		args = append(args, ownerID, ref)
	}

	if _, err := db.Exec(ctx, query, args...); err != nil {
		log.Error("Failed to create batch relations",
			zap.Error(err),
			zap.String("table", t.name),
			zap.Int("count", len(refIDs)),
		)
		return fmt.Errorf("failed to create batch %s: %w", t.name, err)
	}

	return nil
}

// load returns the referenced ids of every owner, keyed by owner id.
func (t relationTable) load(ctx context.Context, db database.PgxIface, ownerIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	out := make(map[uuid.UUID][]string, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1::uuid[]) ORDER BY %s`,
		t.ownerColumn, t.refColumn, t.name, t.ownerColumn, t.refColumn)

	rows, err := db.Query(ctx, query, uuidStrings(ownerIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", t.name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rel entity.Relation
		if err := rows.Scan(&rel.OwnerID, &rel.RefID); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
		}
		out[rel.OwnerID] = append(out[rel.OwnerID], rel.RefID.String())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", t.name, err)
	}

	return out, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// parseIDs drops anything that is not a uuid; such ids can't exist in the tables.
func parseIDs(ids []string) []string {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id.String())
	}
	return out
}
