package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"newswire_listener/internal/domain"
)

// AssetStore persists imported media: the row in media_assets plus the
// file under the storage directory.
type AssetStore struct {
	db      *sqlx.DB
	dir     string
	baseURL string
}

func NewAssetStore(db *sqlx.DB, storageDir, publicBaseURL string) *AssetStore {
	return &AssetStore{
		db:      db,
		dir:     storageDir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *AssetStore) FindBySourceURL(ctx context.Context, sourceURL string) (*domain.MediaAsset, error) {
	return s.findBy(ctx, "source_url", sourceURL)
}

func (s *AssetStore) FindByPublicURL(ctx context.Context, publicURL string) (*domain.MediaAsset, error) {
	return s.findBy(ctx, "public_url", publicURL)
}

func (s *AssetStore) findBy(ctx context.Context, column, value string) (*domain.MediaAsset, error) {
	query := fmt.Sprintf(`
		SELECT id, record_id, source_url, storage_path, public_url, created_at
		FROM media_assets
		WHERE %s = $1
		ORDER BY id
		LIMIT 1`, column)

	var asset domain.MediaAsset
	err := sqlx.GetContext(ctx, s.exec(ctx), &asset, query, value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, persistErr("find media asset", err)
	}
	return &asset, nil
}

// Sideload copies a downloaded temp file into managed storage and
// records the asset. The caller owns the temp file and removes it.
func (s *AssetStore) Sideload(ctx context.Context, tempPath, name string, ownerRecordID int64, sourceURL string) (*domain.MediaAsset, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	storageName := uuid.NewString()[:8] + "-" + name
	storagePath := filepath.Join(s.dir, storageName)

	if err := copyFile(tempPath, storagePath); err != nil {
		return nil, fmt.Errorf("copy into storage: %w", err)
	}

	asset := &domain.MediaAsset{
		RecordID:    ownerRecordID,
		SourceURL:   sourceURL,
		StoragePath: storagePath,
		PublicURL:   s.baseURL + "/" + storageName,
	}

	query := `
		INSERT INTO media_assets (record_id, source_url, storage_path, public_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := sqlx.GetContext(ctx, s.exec(ctx), asset, query,
		asset.RecordID, asset.SourceURL, asset.StoragePath, asset.PublicURL,
	)
	if err != nil {
		os.Remove(storagePath)
		return nil, persistErr("sideload media asset", err)
	}

	return asset, nil
}

func (s *AssetStore) exec(ctx context.Context) sqlx.ExtContext {
	return GetExecutor(ctx, s.db)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
