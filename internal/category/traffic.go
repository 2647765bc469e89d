package category

import "newswire_listener/internal/domain"

func trafficContext() Context {
	return Context{
		Name: Traffic,
		Terms: func(*domain.Payload) []TermAssignment {
			return []TermAssignment{{Taxonomy: domain.TaxonomyCategory, Term: "Traffic"}}
		},
		ImageURLs: func(p *domain.Payload) []string {
			if p.Description == nil || p.Description.Image == "" {
				return nil
			}
			return []string{p.Description.Image}
		},
	}
}
