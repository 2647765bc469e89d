package category

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newswire_listener/internal/domain"
)

// fakeResolver maps source URLs to public URLs without touching storage.
type fakeResolver struct {
	byURL map[string]string
	err   error
	calls []string
}

func (f *fakeResolver) Resolve(_ context.Context, sourceURL string, _ int64) (*domain.MediaAsset, error) {
	f.calls = append(f.calls, sourceURL)
	if f.err != nil {
		return nil, f.err
	}
	public, ok := f.byURL[sourceURL]
	if !ok {
		return nil, nil
	}
	return &domain.MediaAsset{SourceURL: sourceURL, PublicURL: public}, nil
}

func TestByName(t *testing.T) {
	for _, name := range All() {
		c, ok := ByName(name)
		require.True(t, ok, "category %s not registered", name)
		assert.Equal(t, name, c.Name)
		assert.NotNil(t, c.Terms)
		assert.NotNil(t, c.ImageURLs)
	}

	_, ok := ByName("sports")
	assert.False(t, ok)
}

func TestImageTag(t *testing.T) {
	assert.Equal(t, `<img src="https://cdn.example.com/a.jpg" />`, ImageTag("https://cdn.example.com/a.jpg"))
	assert.Equal(t, `<img src="https://x.test/?a=1&amp;b=2" />`, ImageTag("https://x.test/?a=1&b=2"))
	assert.Equal(t, "", ImageTag(""))
}

func TestRealEstateTerms_City(t *testing.T) {
	p := &domain.Payload{Description: &domain.Description{City: "Springfield"}}

	terms := realEstateTerms(p)

	require.Len(t, terms, 3)
	assert.Equal(t, TermAssignment{Taxonomy: domain.TaxonomyCategory, Term: "Real Estate"}, terms[0])
	assert.Equal(t, TermAssignment{Taxonomy: domain.TaxonomyCategory, Term: "Sold", Append: true}, terms[1])
	assert.Equal(t, TermAssignment{Taxonomy: domain.TaxonomyTag, Term: "Springfield", Append: true}, terms[2])
}

func TestRealEstateTerms_ZipGroup(t *testing.T) {
	p := &domain.Payload{Description: &domain.Description{ZipGroup: "62704"}}

	terms := realEstateTerms(p)

	require.Len(t, terms, 2)
	assert.Equal(t, TermAssignment{Taxonomy: domain.TaxonomyTag, Term: "62704", Append: true}, terms[1])
}

func TestRealEstateTerms_NoDescription(t *testing.T) {
	terms := realEstateTerms(&domain.Payload{})

	require.Len(t, terms, 1)
	assert.Equal(t, "Real Estate", terms[0].Term)
}

func TestRealEstateImageURLs(t *testing.T) {
	p := &domain.Payload{Description: &domain.Description{
		Streetview:  "https://maps.googleapis.com/maps/api/streetview?location=a",
		Streetviews: []string{"https://maps.googleapis.com/maps/api/streetview?location=b"},
	}}

	urls := realEstateImageURLs(p)

	assert.Equal(t, []string{
		"https://maps.googleapis.com/maps/api/streetview?location=a",
		"https://maps.googleapis.com/maps/api/streetview?location=b",
	}, urls)

	assert.Nil(t, realEstateImageURLs(&domain.Payload{}))
}

func TestResolveStreetviewPlaceholders(t *testing.T) {
	resolver := &fakeResolver{byURL: map[string]string{
		"https://maps.googleapis.com/maps/api/streetview?location=a": "https://cms.example.com/media/aa.jpg",
	}}

	content := "<p>Sold.</p>\n\n{PLACEHOLDER:STREETVIEW_https://maps.googleapis.com/maps/api/streetview?location=a}"
	got := resolveStreetviewPlaceholders(context.Background(), nil, content, 7, resolver)

	assert.Equal(t, "<p>Sold.</p>\n\n"+`<img src="https://cms.example.com/media/aa.jpg" />`, got)
	assert.Equal(t, []string{"https://maps.googleapis.com/maps/api/streetview?location=a"}, resolver.calls)
}

func TestResolveStreetviewPlaceholders_FailureDropsToken(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("download failed")}

	got := resolveStreetviewPlaceholders(context.Background(), nil, "a {PLACEHOLDER:STREETVIEW_https://x.test/v} b", 7, resolver)

	assert.Equal(t, "a  b", got)
}

func TestResolveStreetviewPlaceholders_EmptyURL(t *testing.T) {
	resolver := &fakeResolver{}

	got := resolveStreetviewPlaceholders(context.Background(), nil, "{PLACEHOLDER:STREETVIEW_}", 7, resolver)

	assert.Equal(t, "", got)
	assert.Empty(t, resolver.calls)
}

func TestWeatherImageURLs_PrefersHorizontal(t *testing.T) {
	p := &domain.Payload{Description: &domain.Description{Images: json.RawMessage(`{
		"WeatherWarningImage": {"url": "https://img.test/square.png"},
		"WeatherWarningImageHorizontal": {"url": "https://img.test/wide.png"}
	}`)}}

	assert.Equal(t, []string{"https://img.test/wide.png"}, weatherImageURLs(p))
}

func TestWeatherImageURLs_FallsBackToSquare(t *testing.T) {
	p := &domain.Payload{Description: &domain.Description{Images: json.RawMessage(`{
		"WeatherWarningImage": {"url": "https://img.test/square.png"}
	}`)}}

	assert.Equal(t, []string{"https://img.test/square.png"}, weatherImageURLs(p))
}

func TestWeatherImageURLs_NoWarningImages(t *testing.T) {
	p := &domain.Payload{Description: &domain.Description{Images: json.RawMessage(`{
		"SomethingElse": {"url": "https://img.test/other.png"}
	}`)}}

	assert.Nil(t, weatherImageURLs(p))
	assert.Nil(t, weatherImageURLs(&domain.Payload{}))
}

func TestResolveWeatherImagePlaceholders(t *testing.T) {
	p := &domain.Payload{Description: &domain.Description{Images: json.RawMessage(`{
		"RadarLoop": {"url": "https://img.test/radar.gif"}
	}`)}}
	resolver := &fakeResolver{byURL: map[string]string{
		"https://img.test/radar.gif": "https://cms.example.com/media/radar.gif",
	}}

	got := resolveWeatherImagePlaceholders(context.Background(), p, "{PLACEHOLDER:IMAGE_RadarLoop}", 3, resolver)

	assert.Equal(t, `<img src="https://cms.example.com/media/radar.gif" />`, got)
}

func TestResolveWeatherImagePlaceholders_UnknownKey(t *testing.T) {
	p := &domain.Payload{Description: &domain.Description{Images: json.RawMessage(`{}`)}}
	resolver := &fakeResolver{}

	got := resolveWeatherImagePlaceholders(context.Background(), p, "x {PLACEHOLDER:IMAGE_Missing} y", 3, resolver)

	assert.Equal(t, "x  y", got)
	assert.Empty(t, resolver.calls)
}

func TestHurricaneImageURLs(t *testing.T) {
	p := &domain.Payload{Description: &domain.Description{
		Images: json.RawMessage(`["https://img.test/track.png", "", "https://img.test/cone.png"]`),
	}}

	assert.Equal(t, []string{"https://img.test/track.png", "https://img.test/cone.png"}, hurricaneImageURLs(p))
}

func TestHurricaneImageURLs_WrongShape(t *testing.T) {
	p := &domain.Payload{Description: &domain.Description{
		Images: json.RawMessage(`{"keyed": {"url": "x"}}`),
	}}

	assert.Nil(t, hurricaneImageURLs(p))
}

func TestTrafficImageURLs(t *testing.T) {
	c, ok := ByName(Traffic)
	require.True(t, ok)

	p := &domain.Payload{Description: &domain.Description{Image: "https://img.test/jam.jpg"}}
	assert.Equal(t, []string{"https://img.test/jam.jpg"}, c.ImageURLs(p))
	assert.Nil(t, c.ImageURLs(&domain.Payload{}))
}
