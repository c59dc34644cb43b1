package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockChecker implements HealthChecker for testing.
type mockChecker struct {
	name string
	err  error
}

func (m *mockChecker) Name() string {
	return m.name
}

func (m *mockChecker) Check(ctx context.Context) error {
	return m.err
}

// blockingChecker waits for its context to end.
type blockingChecker struct {
	name string
}

func (b *blockingChecker) Name() string {
	return b.name
}

func (b *blockingChecker) Check(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestNewHealthRegistry(t *testing.T) {
	registry := NewHealthRegistry(time.Second)

	require.NotNil(t, registry)
	assert.Empty(t, registry.checkers)
	assert.Equal(t, time.Second, registry.checkTimeout)
}

func TestRegister_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry(0)

	require.NoError(t, registry.Register(&mockChecker{name: "database"}))

	err := registry.Register(&mockChecker{name: "database"})

	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "database")
	assert.Len(t, registry.checkers, 1)
}

func TestCheckAll_NoCheckers(t *testing.T) {
	result := NewHealthRegistry(0).CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestCheckAll_MixedResults(t *testing.T) {
	registry := NewHealthRegistry(0)
	require.NoError(t, registry.Register(&mockChecker{name: "database"}))
	require.NoError(t, registry.Register(&mockChecker{name: "disk", err: errors.New("read-only filesystem")}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	require.Len(t, result.Checks, 2)
	assert.Equal(t, HealthStatusHealthy, result.Checks["database"].Status)
	assert.Empty(t, result.Checks["database"].Message)
	assert.Equal(t, HealthStatusUnhealthy, result.Checks["disk"].Status)
	assert.Equal(t, "read-only filesystem", result.Checks["disk"].Message)
}

func TestCheckAll_PerCheckTimeout(t *testing.T) {
	registry := NewHealthRegistry(20 * time.Millisecond)
	require.NoError(t, registry.Register(&blockingChecker{name: "database"}))

	start := time.Now()
	result := registry.CheckAll(context.Background())

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["database"].Message, "deadline exceeded")
}

func TestCheckAll_CallerCancellation(t *testing.T) {
	registry := NewHealthRegistry(0)
	require.NoError(t, registry.Register(&blockingChecker{name: "database"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["database"].Message, "context canceled")
}
