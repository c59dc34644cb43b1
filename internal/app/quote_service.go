// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// QuoteService implements the quote use cases. Every call runs in its own
// store session; mutating calls commit before returning.
type QuoteService struct {
	store  ports.QuoteStore
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Store  ports.QuoteStore
	Logger *slog.Logger
}

// NewQuoteService creates a quote service. It panics without a store.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteService requires a Store")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		store:  cfg.Store,
		logger: logger,
	}
}

// inSession runs fn inside a fresh session and always closes it.
func (s *QuoteService) inSession(ctx context.Context, fn func(ports.QuoteSession) error) (err error) {
	sess, err := s.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	defer func() {
		if closeErr := sess.Close(); closeErr != nil {
			s.logger.WarnContext(ctx, "closing session", slog.Any("error", closeErr))
		}
	}()

	return fn(sess)
}

// Create stores a new quote built from content, source and subSource.
// The returned quote carries the assigned ID and WhenAdded.
func (s *QuoteService) Create(ctx context.Context, content string, source, subSource *string) (*domain.Quote, error) {
	quote := domain.NewQuote(content, source, subSource)

	err := s.inSession(ctx, func(sess ports.QuoteSession) error {
		if err := sess.Insert(ctx, quote); err != nil {
			return err
		}

		return sess.Commit(ctx)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create quote", slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "created quote", slog.Int64("quote_id", quote.ID))

	return quote, nil
}

// List returns every quote in storage order.
func (s *QuoteService) List(ctx context.Context) ([]*domain.Quote, error) {
	var quotes []*domain.Quote

	err := s.inSession(ctx, func(sess ports.QuoteSession) error {
		var err error
		quotes, err = sess.List(ctx)

		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list quotes", slog.Any("error", err))
		return nil, err
	}

	s.logger.DebugContext(ctx, "listed quotes", slog.Int("count", len(quotes)))

	return quotes, nil
}

// Get returns the quote with id, or a domain.ErrNotFound error.
func (s *QuoteService) Get(ctx context.Context, id int64) (*domain.Quote, error) {
	var quote *domain.Quote

	err := s.inSession(ctx, func(sess ports.QuoteSession) error {
		var err error
		quote, err = sess.FindByID(ctx, id)

		return err
	})
	if err != nil {
		s.logUnlessNotFound(ctx, "failed to get quote", id, err)
		return nil, err
	}

	return quote, nil
}

// Search returns every quote whose content contains query, ignoring case.
// An empty result is not an error.
func (s *QuoteService) Search(ctx context.Context, query string) ([]*domain.Quote, error) {
	var matches []*domain.Quote

	err := s.inSession(ctx, func(sess ports.QuoteSession) error {
		var err error
		matches, err = sess.Filter(ctx, func(q *domain.Quote) bool {
			return q.ContainsFold(query)
		})

		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search quotes",
			slog.String("query", query),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.DebugContext(ctx, "searched quotes",
		slog.String("query", query),
		slog.Int("matches", len(matches)),
	)

	return matches, nil
}

// Update overwrites the editable fields of quote id. Last write wins.
func (s *QuoteService) Update(ctx context.Context, id int64, content string, source, subSource *string) error {
	err := s.inSession(ctx, func(sess ports.QuoteSession) error {
		quote, err := sess.FindByID(ctx, id)
		if err != nil {
			return err
		}

		quote.Revise(content, source, subSource)

		if err := sess.Update(ctx, quote); err != nil {
			return err
		}

		return sess.Commit(ctx)
	})
	if err != nil {
		s.logUnlessNotFound(ctx, "failed to update quote", id, err)
		return err
	}

	s.logger.InfoContext(ctx, "updated quote", slog.Int64("quote_id", id))

	return nil
}

// Delete removes quote id and returns it as it was before removal.
func (s *QuoteService) Delete(ctx context.Context, id int64) (*domain.Quote, error) {
	var quote *domain.Quote

	err := s.inSession(ctx, func(sess ports.QuoteSession) error {
		var err error
		quote, err = sess.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := sess.Remove(ctx, quote); err != nil {
			return err
		}

		return sess.Commit(ctx)
	})
	if err != nil {
		s.logUnlessNotFound(ctx, "failed to delete quote", id, err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "deleted quote", slog.Int64("quote_id", id))

	return quote, nil
}

func (s *QuoteService) logUnlessNotFound(ctx context.Context, msg string, id int64, err error) {
	if domain.IsNotFound(err) {
		s.logger.DebugContext(ctx, "quote not found", slog.Int64("quote_id", id))
		return
	}

	s.logger.ErrorContext(ctx, msg, slog.Int64("quote_id", id), slog.Any("error", err))
}
