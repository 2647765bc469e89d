package category

import (
	"context"
	"regexp"

	"newswire_listener/internal/domain"
)

var streetviewPlaceholder = regexp.MustCompile(`\{PLACEHOLDER:STREETVIEW_(.*?)\}`)

func realEstateContext() Context {
	return Context{
		Name:          RealEstate,
		Terms:         realEstateTerms,
		ImageURLs:     realEstateImageURLs,
		BeforeProcess: resolveStreetviewPlaceholders,
	}
}

func realEstateTerms(p *domain.Payload) []TermAssignment {
	terms := []TermAssignment{
		{Taxonomy: domain.TaxonomyCategory, Term: "Real Estate"},
	}

	d := p.Description
	if d == nil {
		return terms
	}

	switch {
	case d.City != "":
		terms = append(terms,
			TermAssignment{Taxonomy: domain.TaxonomyCategory, Term: "Sold", Append: true},
			TermAssignment{Taxonomy: domain.TaxonomyTag, Term: d.City, Append: true},
		)
	case d.ZipGroup != "":
		terms = append(terms,
			TermAssignment{Taxonomy: domain.TaxonomyTag, Term: d.ZipGroup, Append: true},
		)
	}

	return terms
}

func realEstateImageURLs(p *domain.Payload) []string {
	if p.Description == nil {
		return nil
	}

	var urls []string
	if p.Description.Streetview != "" {
		urls = append(urls, p.Description.Streetview)
	}
	urls = append(urls, p.Description.Streetviews...)
	return urls
}

// resolveStreetviewPlaceholders replaces {PLACEHOLDER:STREETVIEW_<url>}
// tokens with image elements, importing each street-view image as it is
// encountered. A token resolves to the empty string when its URL is
// empty or the import fails.
func resolveStreetviewPlaceholders(ctx context.Context, _ *domain.Payload, content string, recordID int64, images ImageResolver) string {
	return streetviewPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		groups := streetviewPlaceholder.FindStringSubmatch(match)
		if len(groups) < 2 || groups[1] == "" {
			return ""
		}

		asset, err := images.Resolve(ctx, groups[1], recordID)
		if err != nil || asset == nil {
			return ""
		}
		return ImageTag(asset.PublicURL)
	})
}
