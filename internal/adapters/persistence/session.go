package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
)

const spanComponent = "quotes.store"

// session is a request-scoped unit of work over one gorm transaction.
// It is not safe for concurrent use.
type session struct {
	tx   *gorm.DB
	now  func() time.Time
	done bool
}

func (s *session) Insert(ctx context.Context, q *domain.Quote) (err error) {
	ctx, span := telemetry.StartSpan(ctx, spanComponent, "insert")
	defer func() { telemetry.EndSpan(span, err) }()

	if s.done {
		return ErrSessionClosed
	}

	if err := applyColumnPolicy(q); err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}

	rec := newQuoteRecord(q)
	rec.ID = 0
	if rec.WhenAdded == nil {
		stamped := s.now()
		rec.WhenAdded = &stamped
	}

	if err := s.tx.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("insert quote: %w", translate(err))
	}

	q.ID = rec.ID
	q.WhenAdded = rec.WhenAdded
	span.SetAttributes(attribute.Int64("quote.id", q.ID))

	return nil
}

func (s *session) FindByID(ctx context.Context, id int64) (_ *domain.Quote, err error) {
	ctx, span := telemetry.StartSpan(ctx, spanComponent, "find", attribute.Int64("quote.id", id))
	defer func() { telemetry.EndSpan(span, err) }()

	if s.done {
		return nil, ErrSessionClosed
	}

	var rec quoteRecord
	if err := s.tx.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("quote", id)
		}

		return nil, fmt.Errorf("find quote %d: %w", id, err)
	}

	return rec.toDomain(), nil
}

func (s *session) List(ctx context.Context) (_ []*domain.Quote, err error) {
	ctx, span := telemetry.StartSpan(ctx, spanComponent, "list")
	defer func() { telemetry.EndSpan(span, err) }()

	if s.done {
		return nil, ErrSessionClosed
	}

	var recs []quoteRecord
	if err := s.tx.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	quotes := make([]*domain.Quote, 0, len(recs))
	for i := range recs {
		quotes = append(quotes, recs[i].toDomain())
	}

	span.SetAttributes(attribute.Int("quote.count", len(quotes)))

	return quotes, nil
}

// Filter streams the table row by row so only matches are held in memory.
func (s *session) Filter(ctx context.Context, keep func(*domain.Quote) bool) (_ []*domain.Quote, err error) {
	ctx, span := telemetry.StartSpan(ctx, spanComponent, "filter")
	defer func() { telemetry.EndSpan(span, err) }()

	if s.done {
		return nil, ErrSessionClosed
	}

	db := s.tx.WithContext(ctx)

	rows, err := db.Model(&quoteRecord{}).Order("id").Rows()
	if err != nil {
		return nil, fmt.Errorf("scan quotes: %w", err)
	}
	defer rows.Close()

	matches := make([]*domain.Quote, 0)
	scanned := 0

	for rows.Next() {
		var rec quoteRecord
		if err := db.ScanRows(rows, &rec); err != nil {
			return nil, fmt.Errorf("scan quote row: %w", err)
		}

		scanned++

		if q := rec.toDomain(); keep(q) {
			matches = append(matches, q)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan quotes: %w", err)
	}

	span.SetAttributes(
		attribute.Int("quote.scanned", scanned),
		attribute.Int("quote.count", len(matches)),
	)

	return matches, nil
}

func (s *session) Update(ctx context.Context, q *domain.Quote) (err error) {
	ctx, span := telemetry.StartSpan(ctx, spanComponent, "update", attribute.Int64("quote.id", q.ID))
	defer func() { telemetry.EndSpan(span, err) }()

	if s.done {
		return ErrSessionClosed
	}

	if err := applyColumnPolicy(q); err != nil {
		return fmt.Errorf("update quote %d: %w", q.ID, err)
	}

	res := s.tx.WithContext(ctx).
		Model(&quoteRecord{ID: q.ID}).
		Select("content", "source", "sub_source").
		Updates(&quoteRecord{Content: q.Content, Source: q.Source, SubSource: q.SubSource})
	if res.Error != nil {
		return fmt.Errorf("update quote %d: %w", q.ID, translate(res.Error))
	}

	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("quote", q.ID)
	}

	return nil
}

func (s *session) Remove(ctx context.Context, q *domain.Quote) (err error) {
	ctx, span := telemetry.StartSpan(ctx, spanComponent, "remove", attribute.Int64("quote.id", q.ID))
	defer func() { telemetry.EndSpan(span, err) }()

	if s.done {
		return ErrSessionClosed
	}

	res := s.tx.WithContext(ctx).Delete(&quoteRecord{}, q.ID)
	if res.Error != nil {
		return fmt.Errorf("remove quote %d: %w", q.ID, translate(res.Error))
	}

	if res.RowsAffected == 0 {
		return domain.NewNotFoundError("quote", q.ID)
	}

	return nil
}

func (s *session) Commit(ctx context.Context) (err error) {
	_, span := telemetry.StartSpan(ctx, spanComponent, "commit")
	defer func() { telemetry.EndSpan(span, err) }()

	if s.done {
		return ErrSessionClosed
	}

	// The transaction is finished whether or not commit succeeds.
	s.done = true

	if err := s.tx.Commit().Error; err != nil {
		return fmt.Errorf("commit: %w", translate(err))
	}

	return nil
}

func (s *session) Close() error {
	if s.done {
		return nil
	}

	s.done = true

	if err := s.tx.Rollback().Error; err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) {
		return fmt.Errorf("rollback: %w", err)
	}

	return nil
}
