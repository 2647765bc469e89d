// Package render converts the ordered body-text fragments of a payload
// into normalized rich-text markup: paragraph wrapping, emphasis-tag
// normalization, inline image substitution, placeholder resolution, and
// block conversion.
package render

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"newswire_listener/internal/category"
	"newswire_listener/internal/domain"
)

const (
	placeholderPrefix = "{PLACEHOLDER"
	// The footer sentinel marks provider boilerplate that is dropped
	// from the rendered content entirely.
	footerPlaceholder = "{PLACEHOLDER:FOOTER}"
)

var placeholderToken = regexp.MustCompile(`\{PLACEHOLDER:[^}]*\}`)

// Bullet glyph variants the provider prefixes list-style paragraphs with.
var bulletPrefixes = []string{"·", "•", "∙"}

var emphasisNormalizer = strings.NewReplacer(
	"<i>", "<em>", "</i>", "</em>",
	"<b>", "<strong>", "</b>", "</strong>",
)

// BlockConverter turns flat HTML into block-structured markup.
type BlockConverter interface {
	Convert(content string) string
}

type Renderer struct {
	images   category.ImageResolver
	blocks   BlockConverter
	ownHosts map[string]struct{}
	logger   *slog.Logger
}

// New builds a Renderer. ownHosts lists hosts whose image URLs already
// point at this system; those are never re-imported.
func New(images category.ImageResolver, blocks BlockConverter, ownHosts []string, logger *slog.Logger) *Renderer {
	hosts := make(map[string]struct{}, len(ownHosts))
	for _, h := range ownHosts {
		if h != "" {
			hosts[strings.ToLower(h)] = struct{}{}
		}
	}
	return &Renderer{
		images:   images,
		blocks:   blocks,
		ownHosts: hosts,
		logger:   logger,
	}
}

// Render produces the final content for a record. It never fails: a
// fragment whose image import errors keeps its original text, and a
// placeholder token that cannot be resolved renders as empty string.
func (r *Renderer) Render(ctx context.Context, fragments []string, cat category.Context, p *domain.Payload, recordID int64) string {
	parts := make([]string, 0, len(fragments))

	for _, fragment := range fragments {
		trimmed := strings.TrimSpace(fragment)
		if trimmed == footerPlaceholder {
			continue
		}
		if strings.HasPrefix(trimmed, placeholderPrefix) {
			// Resolved later by the category hook.
			parts = append(parts, fragment)
			continue
		}
		parts = append(parts, r.renderFragment(ctx, fragment, recordID))
	}

	content := strings.Join(parts, "\n\n")
	content = emphasisNormalizer.Replace(content)

	if cat.BeforeProcess != nil {
		content = cat.BeforeProcess(ctx, p, content, recordID, r.images)
	}

	// Tokens with no resolution rule never reach the rendered output.
	content = placeholderToken.ReplaceAllString(content, "")

	if !looksLikeBlocks(content) && r.blocks != nil {
		content = r.blocks.Convert(content)
	}

	if cat.AfterProcess != nil {
		content = cat.AfterProcess(content)
	}

	return content
}

func (r *Renderer) renderFragment(ctx context.Context, fragment string, recordID int64) string {
	if !hasTag(fragment) {
		return "<p>" + stripBulletPrefix(fragment) + "</p>"
	}

	src, ok := firstImgSrc(fragment)
	if !ok {
		// Pre-formatted HTML, leave as-is.
		return fragment
	}
	if r.isOwnHost(src) {
		return fragment
	}

	asset, err := r.images.Resolve(ctx, src, recordID)
	if err != nil || asset == nil {
		r.logger.Warn("inline image import failed, keeping fragment",
			"src", src,
			"error", err,
		)
		return fragment
	}

	return category.ImageTag(asset.PublicURL)
}

func (r *Renderer) isOwnHost(src string) bool {
	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return false
	}
	_, ok := r.ownHosts[strings.ToLower(u.Hostname())]
	return ok
}

func stripBulletPrefix(fragment string) string {
	s := strings.TrimSpace(fragment)
	for _, glyph := range bulletPrefixes {
		if strings.HasPrefix(s, glyph) {
			return strings.TrimSpace(strings.TrimPrefix(s, glyph))
		}
	}
	return s
}

func looksLikeBlocks(content string) bool {
	return strings.Contains(content, "<!-- wp:")
}
