package category

import (
	"context"
	"encoding/json"
	"regexp"

	"newswire_listener/internal/domain"
)

var imagePlaceholder = regexp.MustCompile(`\{PLACEHOLDER:IMAGE_(.*?)\}`)

// Weather warning image keys, preferred order. The horizontal crop wins
// when the provider sends both.
const (
	warningImageHorizontal = "WeatherWarningImageHorizontal"
	warningImage           = "WeatherWarningImage"
)

func weatherContext() Context {
	return Context{
		Name: Weather,
		Terms: func(*domain.Payload) []TermAssignment {
			return []TermAssignment{{Taxonomy: domain.TaxonomyCategory, Term: "Weather"}}
		},
		ImageURLs:     weatherImageURLs,
		BeforeProcess: resolveWeatherImagePlaceholders,
	}
}

type keyedImage struct {
	URL string `json:"url"`
}

// keyedImages decodes the weather shape of description.images: an
// object keyed by image name with {url: ...} values.
func keyedImages(d *domain.Description) map[string]keyedImage {
	if d == nil || len(d.Images) == 0 {
		return nil
	}
	var images map[string]keyedImage
	if err := json.Unmarshal(d.Images, &images); err != nil {
		return nil
	}
	return images
}

func weatherImageURLs(p *domain.Payload) []string {
	images := keyedImages(p.Description)
	if len(images) == 0 {
		return nil
	}

	if img, ok := images[warningImageHorizontal]; ok && img.URL != "" {
		return []string{img.URL}
	}
	if img, ok := images[warningImage]; ok && img.URL != "" {
		return []string{img.URL}
	}
	return nil
}

// resolveWeatherImagePlaceholders replaces {PLACEHOLDER:IMAGE_<key>}
// tokens with image elements resolved through description.images.
func resolveWeatherImagePlaceholders(ctx context.Context, p *domain.Payload, content string, recordID int64, images ImageResolver) string {
	keyed := keyedImages(p.Description)

	return imagePlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		groups := imagePlaceholder.FindStringSubmatch(match)
		if len(groups) < 2 || groups[1] == "" {
			return ""
		}

		img, ok := keyed[groups[1]]
		if !ok || img.URL == "" {
			return ""
		}

		asset, err := images.Resolve(ctx, img.URL, recordID)
		if err != nil || asset == nil {
			return ""
		}
		return ImageTag(asset.PublicURL)
	})
}
