// Package domain contains core business entities and rules.
package domain

import (
	"strings"
	"time"
)

// Quote is a short textual quotation with optional attribution.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is assigned by storage on insert and never changes afterwards.
	ID int64

	// Content is the text of the quote. Never empty once stored.
	Content string

	// Source is who or what the quote is attributed to.
	Source *string

	// SubSource narrows the attribution (a book, an episode, a speech).
	SubSource *string

	// WhenAdded is the creation timestamp. Nil until the quote is stored.
	WhenAdded *time.Time
}

// NewQuote builds an unsaved quote from its editable fields.
func NewQuote(content string, source, subSource *string) *Quote {
	return &Quote{
		Content:   content,
		Source:    source,
		SubSource: subSource,
	}
}

// Revise overwrites the editable fields. ID and WhenAdded are left untouched.
func (q *Quote) Revise(content string, source, subSource *string) {
	q.Content = content
	q.Source = source
	q.SubSource = subSource
}

// ContainsFold reports whether the quote's content contains query,
// comparing both lower-cased with a simple ordinal fold.
func (q *Quote) ContainsFold(query string) bool {
	return strings.Contains(strings.ToLower(q.Content), strings.ToLower(query))
}
