package category

import (
	"encoding/json"

	"newswire_listener/internal/domain"
)

func hurricaneContext() Context {
	return Context{
		Name: Hurricane,
		Terms: func(*domain.Payload) []TermAssignment {
			return []TermAssignment{{Taxonomy: domain.TaxonomyCategory, Term: "Hurricane"}}
		},
		ImageURLs: hurricaneImageURLs,
	}
}

// hurricaneImageURLs reads the hurricane shape of description.images:
// a plain array of source URLs.
func hurricaneImageURLs(p *domain.Payload) []string {
	if p.Description == nil || len(p.Description.Images) == 0 {
		return nil
	}

	var urls []string
	if err := json.Unmarshal(p.Description.Images, &urls); err != nil {
		return nil
	}

	filtered := urls[:0]
	for _, u := range urls {
		if u != "" {
			filtered = append(filtered, u)
		}
	}
	return filtered
}
