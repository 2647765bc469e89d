// Package payload decodes raw provider push bodies. The provider's
// output is inconsistent: bodies arrive as plain JSON, as JSON wrapped
// in an extra layer of string encoding, or as broken JSON where HTML
// embedded in text fields carries unescaped double quotes.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"newswire_listener/internal/domain"
)

var (
	// ErrEmpty means the request carried no body at all.
	ErrEmpty = errors.New("empty payload body")
	// ErrMalformed means the body could not be parsed even after recovery.
	ErrMalformed = errors.New("malformed payload body")
)

// Bodies that already carry escaped quotes start with the literal
// prefix `"{\` — a historical double-encoding artifact. Those must be
// unwrapped as a JSON string, never run through quote recovery again.
const escapedPrefix = `"{\`

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// Decode parses a raw push body into a Payload. It also returns the
// canonical JSON bytes that parsed successfully, which callers persist
// verbatim as the record's raw-body snapshot.
func Decode(raw []byte) (*domain.Payload, []byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil, ErrEmpty
	}

	s := string(trimmed)

	if strings.HasPrefix(s, escapedPrefix) {
		var inner string
		if err := json.Unmarshal([]byte(s), &inner); err != nil {
			return nil, nil, fmt.Errorf("%w: unwrap double-encoded body: %v", ErrMalformed, err)
		}
		p, err := parse(inner)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return p, []byte(inner), nil
	}

	// Some pushes wrap the object in one or more bare quote pairs.
	s = strings.Trim(s, `"`)

	if p, err := parse(s); err == nil {
		return p, []byte(s), nil
	}

	recovered := escapeQuotesInTags(s)
	p, err := parse(recovered)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return p, []byte(recovered), nil
}

func parse(s string) (*domain.Payload, error) {
	var p domain.Payload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// escapeQuotesInTags escapes double quotes only inside HTML-tag-like
// substrings, leaving the surrounding JSON quoting untouched.
func escapeQuotesInTags(s string) string {
	tags := htmlTagPattern.FindAllString(s, -1)
	if len(tags) == 0 {
		return s
	}

	seen := make(map[string]struct{}, len(tags))
	pairs := make([]string, 0, len(tags)*2)
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		if !strings.Contains(tag, `"`) || strings.Contains(tag, `\"`) {
			continue
		}
		pairs = append(pairs, tag, strings.ReplaceAll(tag, `"`, `\"`))
	}
	if len(pairs) == 0 {
		return s
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
