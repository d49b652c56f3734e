package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestBreaker(name string, threshold uint) *CircuitBreaker[string] {
	return New[string](Config{
		Name:             name,
		Enabled:          true,
		MaxRequests:      1,
		Interval:         100 * time.Millisecond,
		Timeout:          100 * time.Millisecond,
		FailureThreshold: threshold,
	})
}

func TestNewReturnsNilWhenDisabled(t *testing.T) {
	t.Parallel()

	require.Nil(t, New[string](Config{Name: "payments", Enabled: false}))
}

func TestNewCarriesName(t *testing.T) {
	t.Parallel()

	cb := newTestBreaker("payments", 5)

	require.NotNil(t, cb)
	require.Equal(t, "payments", cb.Name())
}

func TestExecutePassesThroughNilBreaker(t *testing.T) {
	t.Parallel()

	result, err := Execute[string](nil, func() (string, error) {
		return "direct", nil
	})
	require.NoError(t, err)
	require.Equal(t, "direct", result)

	_, err = Execute[string](nil, func() (string, error) {
		return "", errors.New("direct error")
	})
	require.ErrorContains(t, err, "direct error")
}

func TestExecuteReturnsFunctionResult(t *testing.T) {
	t.Parallel()

	cb := newTestBreaker("charge", 5)

	result, err := Execute(cb, func() (string, error) {
		return "charged", nil
	})
	require.NoError(t, err)
	require.Equal(t, "charged", result)

	_, err = Execute(cb, func() (string, error) {
		return "", errors.New("charge failed")
	})
	require.ErrorContains(t, err, "charge failed")
}

func TestExecuteRejectsWhenOpen(t *testing.T) {
	t.Parallel()

	cb := newTestBreaker("charge", 1)

	_, err := Execute(cb, func() (string, error) {
		return "", errors.New("failure")
	})
	require.Error(t, err)

	_, err = Execute(cb, func() (string, error) {
		return "should not execute", nil
	})
	require.ErrorIs(t, err, ErrCircuitOpen)
}

func TestExecuteRecoversViaHalfOpen(t *testing.T) {
	t.Parallel()

	cb := newTestBreaker("charge", 1)

	_, _ = Execute(cb, func() (string, error) {
		return "", errors.New("failure")
	})

	time.Sleep(150 * time.Millisecond)

	result, err := Execute(cb, func() (string, error) {
		return "recovered", nil
	})
	require.NoError(t, err)
	require.Equal(t, "recovered", result)
}

func TestExecuteLimitsHalfOpenProbes(t *testing.T) {
	t.Parallel()

	cb := newTestBreaker("charge", 1)

	_, _ = Execute(cb, func() (string, error) {
		return "", errors.New("failure")
	})

	time.Sleep(150 * time.Millisecond)

	started := make(chan struct{})
	done := make(chan struct{})

	go func() {
		close(started)
		_, _ = Execute(cb, func() (string, error) {
			time.Sleep(50 * time.Millisecond)

			return "slow", nil
		})
		close(done)
	}()

	<-started
	time.Sleep(10 * time.Millisecond)

	_, err := Execute(cb, func() (string, error) {
		return "should not run", nil
	})
	require.ErrorIs(t, err, ErrTooManyRequests)

	<-done
}

func TestExecuteWithStructResult(t *testing.T) {
	t.Parallel()

	type receipt struct {
		OrderID string
		Amount  int64
	}

	cb := New[*receipt](Config{
		Name:             "charge",
		Enabled:          true,
		MaxRequests:      5,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 3,
	})
	require.NotNil(t, cb)

	result, err := Execute(cb, func() (*receipt, error) {
		return &receipt{OrderID: "ord-1", Amount: 4999}, nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(4999), result.Amount)

	empty, err := Execute(cb, func() (*receipt, error) {
		return nil, nil
	})
	require.NoError(t, err)
	require.Nil(t, empty)
}
