// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never persistence rows or driver types
//   - Absence is reported as domain.ErrNotFound
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// QuoteStore hands out request-scoped sessions over the quote table.
// The store owns the canonical copy of every quote; callers only ever hold
// transient copies for the lifetime of one session.
//
// Example usage in application layer:
//
//	sess, err := store.Begin(ctx)
//	if err != nil {
//	    return err
//	}
//	defer sess.Close()
//
//	if err := sess.Insert(ctx, quote); err != nil {
//	    return err
//	}
//	return sess.Commit(ctx)
type QuoteStore interface {
	// Begin checks out a new session. Every session must be closed.
	Begin(ctx context.Context) (QuoteSession, error)
}

// QuoteSession is a unit of work against the quote table.
// Writes become durable only when Commit succeeds.
type QuoteSession interface {
	// Insert stores a new quote, assigning ID and, if unset, WhenAdded.
	Insert(ctx context.Context, quote *domain.Quote) error

	// FindByID loads a quote. Returns domain.ErrNotFound if it does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Quote, error)

	// List returns every stored quote in storage order.
	List(ctx context.Context) ([]*domain.Quote, error)

	// Filter scans every stored quote and returns those the predicate accepts.
	Filter(ctx context.Context, keep func(*domain.Quote) bool) ([]*domain.Quote, error)

	// Update writes the editable fields of an existing quote.
	// ID and WhenAdded are never written.
	Update(ctx context.Context, quote *domain.Quote) error

	// Remove deletes an existing quote.
	Remove(ctx context.Context, quote *domain.Quote) error

	// Commit durably applies all pending writes since the session began.
	Commit(ctx context.Context) error

	// Close releases the session, discarding uncommitted writes.
	// Calling Close after Commit is a no-op.
	Close() error
}
