package dto

import (
	"time"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// QuoteView is the client-facing projection of a quote. It is both the
// request body for create/update and the response body for most endpoints.
// Absent source fields are rendered as null.
type QuoteView struct {
	ID        int64   `json:"id"`
	Content   string  `json:"content"`
	Source    *string `json:"source"`
	SubSource *string `json:"subSource"`
}

// QuoteRecord is the full stored record, returned only by search.
type QuoteRecord struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	Source    *string    `json:"source"`
	SubSource *string    `json:"subSource"`
	WhenAdded *time.Time `json:"whenAdded"`
}

// QuoteIDParam binds the :id path segment.
type QuoteIDParam struct {
	ID int64 `uri:"id"`
}

// NewQuoteView projects a quote, dropping WhenAdded.
func NewQuoteView(q *domain.Quote) QuoteView {
	return QuoteView{
		ID:        q.ID,
		Content:   q.Content,
		Source:    q.Source,
		SubSource: q.SubSource,
	}
}

// NewQuoteViews projects quotes in order. The result is never nil.
func NewQuoteViews(quotes []*domain.Quote) []QuoteView {
	views := make([]QuoteView, 0, len(quotes))
	for _, q := range quotes {
		views = append(views, NewQuoteView(q))
	}

	return views
}

// NewQuoteRecords copies quotes in order. The result is never nil.
func NewQuoteRecords(quotes []*domain.Quote) []QuoteRecord {
	records := make([]QuoteRecord, 0, len(quotes))
	for _, q := range quotes {
		records = append(records, QuoteRecord{
			ID:        q.ID,
			Content:   q.Content,
			Source:    q.Source,
			SubSource: q.SubSource,
			WhenAdded: q.WhenAdded,
		})
	}

	return records
}
