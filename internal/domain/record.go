package domain

import "time"

// Meta keys persisted alongside a record.
const (
	MetaReferenceID = "reference_id"
	MetaRawBody     = "raw_body"
	MetaCategory    = "category"
)

type Taxonomy string

const (
	TaxonomyCategory Taxonomy = "category"
	TaxonomyTag      Taxonomy = "post_tag"
)

// Record is the persisted content unit.
type Record struct {
	ID              int64     `db:"id"`
	Title           string    `db:"title"`
	Body            string    `db:"body"`
	Excerpt         string    `db:"excerpt"`
	Author          string    `db:"author"`
	Status          string    `db:"status"`
	FeaturedAssetID *int64    `db:"featured_asset_id"`
	PublishedAt     time.Time `db:"published_at"`
	ModifiedAt      time.Time `db:"modified_at"`
	CreatedAt       time.Time `db:"created_at"`
}

// MediaAsset is one imported binary, deduplicated by SourceURL.
type MediaAsset struct {
	ID          int64     `db:"id"`
	RecordID    int64     `db:"record_id"`
	SourceURL   string    `db:"source_url"`
	StoragePath string    `db:"storage_path"`
	PublicURL   string    `db:"public_url"`
	CreatedAt   time.Time `db:"created_at"`
}
