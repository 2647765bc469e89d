// Package media imports remote provider images into the local asset
// store, deduplicating by source URL.
package media

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"newswire_listener/internal/domain"
)

// Import stages, reported on ImportError.
const (
	StageDownload = "download"
	StageSideload = "sideload"
)

// ImportError wraps a failed import with the stage it failed at.
// Callers treat any ImportError as "skip this image"; it is never
// fatal to an ingestion.
type ImportError struct {
	URL   string
	Stage string
	Err   error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import %s: %s: %v", e.URL, e.Stage, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// AssetStore is the persistence boundary for imported media.
type AssetStore interface {
	// FindBySourceURL returns the existing asset for a source URL, or
	// nil when none exists.
	FindBySourceURL(ctx context.Context, sourceURL string) (*domain.MediaAsset, error)
	// Sideload moves a downloaded temp file into managed storage and
	// records it against the owner, keyed by sourceURL for future
	// dedup lookups.
	Sideload(ctx context.Context, tempPath, name string, ownerRecordID int64, sourceURL string) (*domain.MediaAsset, error)
}

type Importer struct {
	assets AssetStore
	client *http.Client
	tmpDir string
	group  singleflight.Group
	logger *slog.Logger
}

func NewImporter(assets AssetStore, downloadTimeout time.Duration, logger *slog.Logger) *Importer {
	if downloadTimeout <= 0 {
		downloadTimeout = 20 * time.Second
	}
	return &Importer{
		assets: assets,
		client: &http.Client{Timeout: downloadTimeout},
		tmpDir: os.TempDir(),
		logger: logger,
	}
}

// Resolve returns the asset for a source URL, importing it if none
// exists yet. Re-resolving a URL never downloads it a second time;
// concurrent resolves of the same URL share one download.
func (i *Importer) Resolve(ctx context.Context, sourceURL string, ownerRecordID int64) (*domain.MediaAsset, error) {
	existing, err := i.assets.FindBySourceURL(ctx, sourceURL)
	if err != nil {
		return nil, &ImportError{URL: sourceURL, Stage: StageSideload, Err: err}
	}
	if existing != nil {
		return existing, nil
	}

	v, err, _ := i.group.Do(sourceURL, func() (any, error) {
		return i.importNew(ctx, sourceURL, ownerRecordID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.MediaAsset), nil
}

func (i *Importer) importNew(ctx context.Context, sourceURL string, ownerRecordID int64) (*domain.MediaAsset, error) {
	// A concurrent resolve may have finished the import while this
	// call waited on the flight group.
	existing, err := i.assets.FindBySourceURL(ctx, sourceURL)
	if err == nil && existing != nil {
		return existing, nil
	}

	name := assetName(sourceURL)
	tempName := name
	if !isStreetView(sourceURL) {
		// Distinct URLs can share a basename; keep temp names unique.
		tempName = uuid.NewString()[:8] + "-" + name
	}
	tempPath, err := i.download(ctx, sourceURL, tempName)
	if err != nil {
		return nil, &ImportError{URL: sourceURL, Stage: StageDownload, Err: err}
	}
	// The temp file is removed on every exit path; Sideload copies it
	// into managed storage before returning.
	defer os.Remove(tempPath)

	asset, err := i.assets.Sideload(ctx, tempPath, name, ownerRecordID, sourceURL)
	if err != nil {
		return nil, &ImportError{URL: sourceURL, Stage: StageSideload, Err: err}
	}

	i.logger.Info("imported media asset",
		"source_url", sourceURL,
		"asset_id", asset.ID,
		"record_id", ownerRecordID,
	)
	return asset, nil
}

func (i *Importer) download(ctx context.Context, sourceURL, name string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	f, err := os.Create(filepath.Join(i.tmpDir, name))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return f.Name(), nil
}

// assetName derives a local filename for a source URL. Street-view
// generator URLs carry no usable filename (the image is addressed by
// query parameters), so those are content-addressed by URL hash.
func assetName(sourceURL string) string {
	if isStreetView(sourceURL) {
		sum := sha256.Sum256([]byte(sourceURL))
		return hex.EncodeToString(sum[:])[:20] + ".jpg"
	}

	u, err := url.Parse(sourceURL)
	if err == nil {
		if base := sanitizeName(path.Base(u.Path)); base != "" {
			return base
		}
	}
	return uuid.NewString() + ".img"
}

func isStreetView(sourceURL string) bool {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Hostname(), "maps.googleapis.com") &&
		strings.Contains(u.Path, "/streetview")
}

func sanitizeName(base string) string {
	if base == "." || base == "/" || base == "" {
		return ""
	}
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if !strings.ContainsRune(base, '.') {
		return ""
	}
	return base
}
