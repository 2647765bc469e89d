package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"newswire_listener/internal/category"
	"newswire_listener/internal/domain"
)

// RecordStore is the repository boundary for content records.
type RecordStore interface {
	// FindIDByMeta returns the id of at most one record whose meta
	// entry matches, regardless of publish status, or 0 when none.
	FindIDByMeta(ctx context.Context, key, value string) (int64, error)
	Create(ctx context.Context, rec *domain.Record) (int64, error)
	Update(ctx context.Context, id int64, title, excerpt string, modifiedAt time.Time) error
	SetBody(ctx context.Context, id int64, body string) error
	SetMeta(ctx context.Context, id int64, key, value string) error
	SetTaxonomy(ctx context.Context, id int64, taxonomy domain.Taxonomy, terms []string, appendTerms bool) error
	SetFeaturedImage(ctx context.Context, id, assetID int64) error
	FeaturedImage(ctx context.Context, id int64) (int64, error)
	AppendGallery(ctx context.Context, id int64, assetIDs []int64) error
}

// AssetFinder looks up already-imported media assets.
type AssetFinder interface {
	FindByPublicURL(ctx context.Context, publicURL string) (*domain.MediaAsset, error)
}

// MediaImporter resolves a source URL to a local asset, importing on
// first sight.
type MediaImporter interface {
	Resolve(ctx context.Context, sourceURL string, ownerRecordID int64) (*domain.MediaAsset, error)
}

// Renderer produces the final record body from payload fragments.
type Renderer interface {
	Render(ctx context.Context, fragments []string, cat category.Context, p *domain.Payload, recordID int64) string
}

// Publisher emits ingest events for downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, result *domain.IngestResult) error
	Close() error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
