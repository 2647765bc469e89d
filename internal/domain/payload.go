package domain

import (
	"encoding/json"
	"time"
)

// Payload is the decoded form of one provider push. Field presence varies
// by content category; everything except title and body parts is optional.
type Payload struct {
	Article     Article      `json:"article"`
	Description *Description `json:"description,omitempty"`
	Sent        Sent         `json:"sent"`

	// LegacyReferenceID is the top-level key the oldest pushes carried.
	// Article.ID is canonical; this is only consulted when it is absent.
	LegacyReferenceID string `json:"referenceId,omitempty"`
}

type Article struct {
	ID   string      `json:"id"`
	Text ArticleText `json:"text"`
}

type ArticleText struct {
	Title     string   `json:"title"`
	BodyParts []string `json:"bodyParts"`
}

// Description holds the category-specific fields. Images is left raw
// because its shape differs per category: hurricane pushes send a plain
// array of URLs, weather pushes a keyed object of {url: ...} entries.
type Description struct {
	Seo         *Seo            `json:"seo,omitempty"`
	City        string          `json:"city,omitempty"`
	ZipGroup    string          `json:"zipGroup,omitempty"`
	Streetview  string          `json:"streetview,omitempty"`
	Streetviews []string        `json:"streetviews,omitempty"`
	Image       string          `json:"image,omitempty"`
	Images      json.RawMessage `json:"images,omitempty"`
}

type Seo struct {
	Summary string `json:"summary"`
}

// Sent carries the provider's first-sent / last-updated timestamps as
// ISO-8601 strings on the wire.
type Sent struct {
	First  string `json:"first,omitempty"`
	Latest string `json:"latest,omitempty"`
}

// ReferenceID returns the canonical external reference id for this
// payload, or "" when the provider sent none.
func (p *Payload) ReferenceID() string {
	if p.Article.ID != "" {
		return p.Article.ID
	}
	return p.LegacyReferenceID
}

func (p *Payload) Title() string {
	return p.Article.Text.Title
}

func (p *Payload) BodyParts() []string {
	return p.Article.Text.BodyParts
}

func (p *Payload) Summary() string {
	if p.Description != nil && p.Description.Seo != nil {
		return p.Description.Seo.Summary
	}
	return ""
}

// FirstSent parses the provider's first-sent time. ok is false when the
// field is absent or unparseable.
func (s Sent) FirstSent() (time.Time, bool) {
	return parseSent(s.First)
}

// LatestSent parses the provider's last-updated time, falling back to
// the first-sent time when latest is absent.
func (s Sent) LatestSent() (time.Time, bool) {
	if t, ok := parseSent(s.Latest); ok {
		return t, true
	}
	return parseSent(s.First)
}

func parseSent(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
