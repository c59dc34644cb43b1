package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/mocks"
)

var errStorage = errors.New("connection reset")

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

// newService wires a service to a store mock that hands out sess once.
func newService(t *testing.T, sess *mocks.MockQuoteSession) *QuoteService {
	t.Helper()

	store := mocks.NewMockQuoteStore(t)
	store.EXPECT().Begin(mock.Anything).Return(sess, nil).Once()

	return NewQuoteService(QuoteServiceConfig{Store: store, Logger: discardLogger()})
}

func TestNewQuoteService_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Logger: slog.Default()})
	})
}

func TestNewQuoteService_DefaultsLogger(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{Store: mocks.NewMockQuoteStore(t)})

	require.NotNil(t, svc)
	assert.Equal(t, slog.Default(), svc.logger)
}

func TestQuoteService_BeginFails(t *testing.T) {
	store := mocks.NewMockQuoteStore(t)
	store.EXPECT().Begin(mock.Anything).Return(nil, errStorage)

	svc := NewQuoteService(QuoteServiceConfig{Store: store, Logger: discardLogger()})

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, errStorage)
	assert.Contains(t, err.Error(), "open session")
}

func TestQuoteService_Create(t *testing.T) {
	stamped := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(*mocks.MockQuoteSession)
		wantErr   error
	}{
		{
			name: "success",
			setupMock: func(m *mocks.MockQuoteSession) {
				m.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(q *domain.Quote) bool {
					return q.ID == 0 && q.Content == "Be yourself." && *q.Source == "Wilde"
				})).RunAndReturn(func(_ context.Context, q *domain.Quote) error {
					q.ID = 1
					q.WhenAdded = &stamped
					return nil
				})
				m.EXPECT().Commit(mock.Anything).Return(nil)
				m.EXPECT().Close().Return(nil)
			},
		},
		{
			name: "insert fails - nothing committed",
			setupMock: func(m *mocks.MockQuoteSession) {
				m.EXPECT().Insert(mock.Anything, mock.Anything).Return(errStorage)
				m.EXPECT().Close().Return(nil)
			},
			wantErr: errStorage,
		},
		{
			name: "commit fails",
			setupMock: func(m *mocks.MockQuoteSession) {
				m.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
				m.EXPECT().Commit(mock.Anything).Return(errStorage)
				m.EXPECT().Close().Return(nil)
			},
			wantErr: errStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := mocks.NewMockQuoteSession(t)
			tt.setupMock(sess)

			quote, err := newService(t, sess).Create(context.Background(), "Be yourself.", strPtr("Wilde"), nil)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, quote)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), quote.ID)
			assert.Equal(t, &stamped, quote.WhenAdded)
		})
	}
}

func TestQuoteService_List(t *testing.T) {
	stored := []*domain.Quote{
		{ID: 1, Content: "one"},
		{ID: 2, Content: "two"},
	}

	sess := mocks.NewMockQuoteSession(t)
	sess.EXPECT().List(mock.Anything).Return(stored, nil)
	sess.EXPECT().Close().Return(nil)

	quotes, err := newService(t, sess).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, quotes)
}

func TestQuoteService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockQuoteSession)
		want      *domain.Quote
		errCheck  func(error) bool
	}{
		{
			name: "found",
			setupMock: func(m *mocks.MockQuoteSession) {
				m.EXPECT().FindByID(mock.Anything, int64(5)).Return(&domain.Quote{ID: 5, Content: "five"}, nil)
			},
			want: &domain.Quote{ID: 5, Content: "five"},
		},
		{
			name: "not found",
			setupMock: func(m *mocks.MockQuoteSession) {
				m.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, domain.NewNotFoundError("quote", 5))
			},
			errCheck: domain.IsNotFound,
		},
		{
			name: "storage error",
			setupMock: func(m *mocks.MockQuoteSession) {
				m.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, errStorage)
			},
			errCheck: func(err error) bool { return errors.Is(err, errStorage) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := mocks.NewMockQuoteSession(t)
			tt.setupMock(sess)
			sess.EXPECT().Close().Return(nil)

			quote, err := newService(t, sess).Get(context.Background(), 5)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))
				assert.Nil(t, quote)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, quote)
		})
	}
}

func TestQuoteService_Search(t *testing.T) {
	stored := []*domain.Quote{
		{ID: 1, Content: "Hello World"},
		{ID: 2, Content: "goodbye"},
		{ID: 3, Content: "oh HELLO there"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{"lower case query", "hello", []int64{1, 3}},
		{"upper case query", "WORLD", []int64{1}},
		{"no matches", "xyz", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := mocks.NewMockQuoteSession(t)
			sess.EXPECT().Filter(mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, keep func(*domain.Quote) bool) ([]*domain.Quote, error) {
					out := []*domain.Quote{}
					for _, q := range stored {
						if keep(q) {
							out = append(out, q)
						}
					}
					return out, nil
				})
			sess.EXPECT().Close().Return(nil)

			matches, err := newService(t, sess).Search(context.Background(), tt.query)
			require.NoError(t, err)

			ids := []int64{}
			for _, q := range matches {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestQuoteService_Update(t *testing.T) {
	added := time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)

	t.Run("revises editable fields only", func(t *testing.T) {
		sess := mocks.NewMockQuoteSession(t)
		sess.EXPECT().FindByID(mock.Anything, int64(9)).
			Return(&domain.Quote{ID: 9, Content: "old", Source: strPtr("src"), WhenAdded: &added}, nil)
		sess.EXPECT().Update(mock.Anything, &domain.Quote{
			ID:        9,
			Content:   "new",
			SubSource: strPtr("sub"),
			WhenAdded: &added,
		}).Return(nil)
		sess.EXPECT().Commit(mock.Anything).Return(nil)
		sess.EXPECT().Close().Return(nil)

		err := newService(t, sess).Update(context.Background(), 9, "new", nil, strPtr("sub"))
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		sess := mocks.NewMockQuoteSession(t)
		sess.EXPECT().FindByID(mock.Anything, int64(9)).Return(nil, domain.NewNotFoundError("quote", 9))
		sess.EXPECT().Close().Return(nil)

		err := newService(t, sess).Update(context.Background(), 9, "new", nil, nil)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("update fails", func(t *testing.T) {
		sess := mocks.NewMockQuoteSession(t)
		sess.EXPECT().FindByID(mock.Anything, int64(9)).Return(&domain.Quote{ID: 9, Content: "old"}, nil)
		sess.EXPECT().Update(mock.Anything, mock.Anything).Return(errStorage)
		sess.EXPECT().Close().Return(nil)

		err := newService(t, sess).Update(context.Background(), 9, "", nil, nil)
		assert.ErrorIs(t, err, errStorage)
	})
}

func TestQuoteService_Delete(t *testing.T) {
	t.Run("returns the removed quote", func(t *testing.T) {
		existing := &domain.Quote{ID: 4, Content: "bye", Source: strPtr("me")}

		sess := mocks.NewMockQuoteSession(t)
		sess.EXPECT().FindByID(mock.Anything, int64(4)).Return(existing, nil)
		sess.EXPECT().Remove(mock.Anything, existing).Return(nil)
		sess.EXPECT().Commit(mock.Anything).Return(nil)
		sess.EXPECT().Close().Return(nil)

		quote, err := newService(t, sess).Delete(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, existing, quote)
	})

	t.Run("not found", func(t *testing.T) {
		sess := mocks.NewMockQuoteSession(t)
		sess.EXPECT().FindByID(mock.Anything, int64(4)).Return(nil, domain.NewNotFoundError("quote", 4))
		sess.EXPECT().Close().Return(nil)

		quote, err := newService(t, sess).Delete(context.Background(), 4)
		assert.True(t, domain.IsNotFound(err))
		assert.Nil(t, quote)
	})
}

func TestQuoteService_CloseErrorIsNotReturned(t *testing.T) {
	sess := mocks.NewMockQuoteSession(t)
	sess.EXPECT().List(mock.Anything).Return([]*domain.Quote{}, nil)
	sess.EXPECT().Close().Return(errors.New("rollback failed"))

	quotes, err := newService(t, sess).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, quotes)
}
