package persistence

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Column limits in bytes of the single-byte Windows-1252 encoding.
const (
	maxContentBytes   = 255
	maxSourceBytes    = 50
	maxSubSourceBytes = 50
)

// quoteRecord is the row shape of the quotes table.
type quoteRecord struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Content   string     `gorm:"column:content;type:varchar(255);not null;check:chk_quotes_content_not_empty,content <> ''"`
	Source    *string    `gorm:"column:source;type:varchar(50)"`
	SubSource *string    `gorm:"column:sub_source;type:varchar(50)"`
	WhenAdded *time.Time `gorm:"column:when_added;default:CURRENT_TIMESTAMP"`
}

func (quoteRecord) TableName() string {
	return "quotes"
}

func newQuoteRecord(q *domain.Quote) *quoteRecord {
	return &quoteRecord{
		ID:        q.ID,
		Content:   q.Content,
		Source:    q.Source,
		SubSource: q.SubSource,
		WhenAdded: q.WhenAdded,
	}
}

func (r *quoteRecord) toDomain() *domain.Quote {
	return &domain.Quote{
		ID:        r.ID,
		Content:   r.Content,
		Source:    r.Source,
		SubSource: r.SubSource,
		WhenAdded: r.WhenAdded,
	}
}

// applyColumnPolicy fits the editable fields to their columns. Characters
// Windows-1252 cannot represent are stored as '?', as a non-Unicode varchar
// column does. Content is required and every text column must fit its
// limit once encoded. q is updated to the text that will be stored.
func applyColumnPolicy(q *domain.Quote) error {
	if q.Content == "" {
		return &ColumnError{Column: "content", Reason: "must not be empty"}
	}

	content, err := fitText("content", q.Content, maxContentBytes)
	if err != nil {
		return err
	}

	source, err := fitOptionalText("source", q.Source, maxSourceBytes)
	if err != nil {
		return err
	}

	subSource, err := fitOptionalText("sub_source", q.SubSource, maxSubSourceBytes)
	if err != nil {
		return err
	}

	q.Content, q.Source, q.SubSource = content, source, subSource

	return nil
}

func fitOptionalText(column string, value *string, limit int) (*string, error) {
	if value == nil {
		return nil, nil
	}

	fitted, err := fitText(column, *value, limit)
	if err != nil {
		return nil, err
	}

	return &fitted, nil
}

func fitText(column, value string, limit int) (string, error) {
	encoded := encodeWindows1252(value)
	if len(encoded) > limit {
		return "", &ColumnError{Column: column, Reason: fmt.Sprintf("%d bytes exceeds limit of %d", len(encoded), limit)}
	}

	var b strings.Builder
	for _, c := range encoded {
		b.WriteRune(charmap.Windows1252.DecodeByte(c))
	}

	return b.String(), nil
}

// encodeWindows1252 encodes s one byte per rune, substituting '?' for
// runes outside the code page.
func encodeWindows1252(s string) []byte {
	out := make([]byte, 0, len(s))

	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}

		out = append(out, c)
	}

	return out
}
