package retry

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/dropworks/mint-engine/pkg/retry/backoff"
)

func TestLimit(t *testing.T) {
	err := errors.New("err")

	strategy := Limit(1)
	assert.False(t, strategy(1, err))

	strategy = Limit(2)
	assert.True(t, strategy(1, err))
	assert.False(t, strategy(2, err))

	calls := 0
	_, actual := Retry(func() error {
		calls++
		return err
	}, Limit(3))
	assert.Equal(t, err, actual)
	assert.Equal(t, 3, calls)
}

func TestRetriableErrors(t *testing.T) {
	retriable := errors.New("retriable")
	other := errors.New("other")

	strategy := RetriableErrors(retriable)
	assert.True(t, strategy(1, retriable))
	assert.False(t, strategy(1, other))

	// Wrapped errors are still detected.
	assert.True(t, strategy(1, errors.Wrap(retriable, "wrapper")))
}

func TestNonRetriableErrors(t *testing.T) {
	nonRetriable := errors.New("terminal")
	other := errors.New("other")

	strategy := NonRetriableErrors(nonRetriable)
	assert.False(t, strategy(1, nonRetriable))
	assert.True(t, strategy(1, other))

	assert.False(t, strategy(1, errors.Wrap(nonRetriable, "wrapper")))
}

func TestBackoff(t *testing.T) {
	sleeper := &testSleeper{}
	sleeperImpl = sleeper
	defer func() {
		sleeperImpl = &realSleeper{}
	}()

	strategy := Backoff(backoff.BinaryExponential(100*time.Millisecond), 500*time.Millisecond)
	for i := uint(1); i <= 5; i++ {
		assert.True(t, strategy(i, errors.New("err")))
	}

	// 100, 200, 400, then capped at 500.
	expected := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		500 * time.Millisecond,
		500 * time.Millisecond,
	}
	assert.Equal(t, expected, sleeper.sleepTimes)
}

func TestBackoffWithJitter(t *testing.T) {
	sleeper := &testSleeper{}
	sleeperImpl = sleeper
	defer func() {
		sleeperImpl = &realSleeper{}
	}()

	strategy := BackoffWithJitter(backoff.Constant(100*time.Millisecond), 500*time.Millisecond, 0.1)
	for i := 0; i < 10000; i++ {
		assert.True(t, strategy(1, errors.New("err")))
	}

	for _, s := range sleeper.sleepTimes {
		assert.True(t, s >= 90*time.Millisecond)
		assert.True(t, s <= 110*time.Millisecond)
	}

	assert.InDelta(t, float64(100*time.Millisecond), float64(sleeper.mean()), float64(time.Millisecond))
}

type testSleeper struct {
	sleepTimes []time.Duration
}

func (s *testSleeper) Sleep(d time.Duration) {
	s.sleepTimes = append(s.sleepTimes, d)
}

func (s *testSleeper) mean() time.Duration {
	var total time.Duration
	for _, t := range s.sleepTimes {
		total += t
	}
	if len(s.sleepTimes) == 0 {
		return 0
	}
	return total / time.Duration(len(s.sleepTimes))
}
