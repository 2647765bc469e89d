package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newswire_listener/internal/domain"
)

type RecordStore struct {
	db *sqlx.DB
}

func NewRecordStore(db *sqlx.DB) *RecordStore {
	return &RecordStore{db: db}
}

// FindIDByMeta returns at most one matching record id, any status.
// Legacy data can hold duplicate reference ids; the lowest id wins
// deterministically and the rest are ignored.
func (s *RecordStore) FindIDByMeta(ctx context.Context, key, value string) (int64, error) {
	query := `
		SELECT record_id FROM record_meta
		WHERE meta_key = $1 AND meta_value = $2
		ORDER BY record_id
		LIMIT 1`

	var id int64
	err := sqlx.GetContext(ctx, s.exec(ctx), &id, query, key, value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, persistErr("find record by meta", err)
	}
	return id, nil
}

func (s *RecordStore) Create(ctx context.Context, rec *domain.Record) (int64, error) {
	query := `
		INSERT INTO records (title, body, excerpt, author, status, published_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := sqlx.GetContext(ctx, s.exec(ctx), &id, query,
		rec.Title,
		rec.Body,
		rec.Excerpt,
		rec.Author,
		rec.Status,
		rec.PublishedAt,
		rec.ModifiedAt,
	)
	if err != nil {
		return 0, persistErr("create record", err)
	}
	return id, nil
}

func (s *RecordStore) Update(ctx context.Context, id int64, title, excerpt string, modifiedAt time.Time) error {
	query := `
		UPDATE records
		SET title = $2, excerpt = $3, modified_at = $4
		WHERE id = $1`

	if _, err := s.exec(ctx).ExecContext(ctx, query, id, title, excerpt, modifiedAt); err != nil {
		return persistErr("update record", err)
	}
	return nil
}

func (s *RecordStore) SetBody(ctx context.Context, id int64, body string) error {
	if _, err := s.exec(ctx).ExecContext(ctx,
		"UPDATE records SET body = $2 WHERE id = $1", id, body,
	); err != nil {
		return persistErr("set record body", err)
	}
	return nil
}

func (s *RecordStore) SetMeta(ctx context.Context, id int64, key, value string) error {
	query := `
		INSERT INTO record_meta (record_id, meta_key, meta_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (record_id, meta_key) DO UPDATE SET meta_value = EXCLUDED.meta_value`

	if _, err := s.exec(ctx).ExecContext(ctx, query, id, key, value); err != nil {
		return persistErr("set record meta", err)
	}
	return nil
}

// GetMeta returns "" when the record has no such meta entry.
func (s *RecordStore) GetMeta(ctx context.Context, id int64, key string) (string, error) {
	var value string
	err := sqlx.GetContext(ctx, s.exec(ctx), &value,
		"SELECT meta_value FROM record_meta WHERE record_id = $1 AND meta_key = $2",
		id, key,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", persistErr("get record meta", err)
	}
	return value, nil
}

func (s *RecordStore) SetTaxonomy(ctx context.Context, id int64, taxonomy domain.Taxonomy, terms []string, appendTerms bool) error {
	exec := s.exec(ctx)

	if !appendTerms {
		if _, err := exec.ExecContext(ctx,
			"DELETE FROM record_terms WHERE record_id = $1 AND taxonomy = $2",
			id, taxonomy,
		); err != nil {
			return persistErr("clear taxonomy", err)
		}
	}

	if len(terms) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO record_terms (record_id, taxonomy, term) VALUES ")
	args := []any{id, string(taxonomy)}
	for i, term := range terms {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($1, $2, $%d)", i+3)
		args = append(args, term)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	if _, err := exec.ExecContext(ctx, sb.String(), args...); err != nil {
		return persistErr("set taxonomy", err)
	}
	return nil
}

func (s *RecordStore) SetFeaturedImage(ctx context.Context, id, assetID int64) error {
	if _, err := s.exec(ctx).ExecContext(ctx,
		"UPDATE records SET featured_asset_id = $2 WHERE id = $1", id, assetID,
	); err != nil {
		return persistErr("set featured image", err)
	}
	return nil
}

// FeaturedImage returns 0 when no representative image is assigned.
func (s *RecordStore) FeaturedImage(ctx context.Context, id int64) (int64, error) {
	var assetID sql.NullInt64
	err := sqlx.GetContext(ctx, s.exec(ctx), &assetID,
		"SELECT featured_asset_id FROM records WHERE id = $1", id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, persistErr("get featured image", err)
	}
	return assetID.Int64, nil
}

func (s *RecordStore) AppendGallery(ctx context.Context, id int64, assetIDs []int64) error {
	if len(assetIDs) == 0 {
		return nil
	}

	exec := s.exec(ctx)

	var next int
	err := sqlx.GetContext(ctx, exec, &next,
		"SELECT COALESCE(MAX(position), 0) + 1 FROM record_gallery WHERE record_id = $1", id,
	)
	if err != nil {
		return persistErr("append gallery", err)
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO record_gallery (record_id, asset_id, position) VALUES ")
	args := []any{id}
	for i, assetID := range assetIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($1, $%d, %d)", i+2, next+i)
		args = append(args, assetID)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	if _, err := exec.ExecContext(ctx, sb.String(), args...); err != nil {
		return persistErr("append gallery", err)
	}
	return nil
}

// ListIDs pages over record ids for batch replay. When ids is
// non-empty the page window is ignored and only those ids are checked.
func (s *RecordStore) ListIDs(ctx context.Context, limit, offset int, ids []int64) ([]int64, error) {
	var (
		out   []int64
		err   error
		query string
	)
	if len(ids) > 0 {
		query = "SELECT id FROM records WHERE id = ANY($1) ORDER BY id"
		err = sqlx.SelectContext(ctx, s.exec(ctx), &out, query, pq.Array(ids))
	} else {
		query = "SELECT id FROM records ORDER BY id LIMIT $1 OFFSET $2"
		err = sqlx.SelectContext(ctx, s.exec(ctx), &out, query, limit, offset)
	}
	if err != nil {
		return nil, persistErr("list record ids", err)
	}
	return out, nil
}

func (s *RecordStore) exec(ctx context.Context) sqlx.ExtContext {
	return GetExecutor(ctx, s.db)
}
