// Package category fixes the per-category extension points of the
// ingestion pipeline: taxonomy terms, image-url extraction, and the
// placeholder grammar applied before block conversion. Each provider
// category is a thin variant of the same pipeline.
package category

import (
	"context"
	"fmt"
	"html"

	"newswire_listener/internal/domain"
)

type Name string

const (
	RealEstate Name = "real-estate"
	Weather    Name = "weather"
	Hurricane  Name = "hurricane"
	Traffic    Name = "traffic"
)

// ImageResolver returns a locally-hosted asset for a remote source URL,
// reusing an existing asset or importing the image now.
type ImageResolver interface {
	Resolve(ctx context.Context, sourceURL string, ownerRecordID int64) (*domain.MediaAsset, error)
}

// TermAssignment is one taxonomy term to apply to a record. Append
// false replaces the record's existing terms in that taxonomy.
type TermAssignment struct {
	Taxonomy domain.Taxonomy
	Term     string
	Append   bool
}

// Context is the strategy value for one category. BeforeProcess and
// AfterProcess may be nil (identity).
type Context struct {
	Name Name

	// Terms returns the taxonomy assignments applied once, when the
	// record is first created.
	Terms func(p *domain.Payload) []TermAssignment

	// ImageURLs returns the source URLs to import after persisting.
	ImageURLs func(p *domain.Payload) []string

	// BeforeProcess resolves the category's placeholder tokens in the
	// joined content, importing media as needed. A token whose URL is
	// empty or whose import fails resolves to the empty string.
	BeforeProcess func(ctx context.Context, p *domain.Payload, content string, recordID int64, images ImageResolver) string

	// AfterProcess runs on the final content, after block conversion.
	AfterProcess func(content string) string
}

var registry = map[Name]Context{
	RealEstate: realEstateContext(),
	Weather:    weatherContext(),
	Hurricane:  hurricaneContext(),
	Traffic:    trafficContext(),
}

// ByName returns the category context for a route segment.
func ByName(n Name) (Context, bool) {
	c, ok := registry[n]
	return c, ok
}

// All lists the registered categories in route order.
func All() []Name {
	return []Name{Hurricane, RealEstate, Traffic, Weather}
}

// ImageTag renders the image element substituted for placeholders and
// inline provider images.
func ImageTag(src string) string {
	if src == "" {
		return ""
	}
	return fmt.Sprintf(`<img src="%s" />`, html.EscapeString(src))
}
