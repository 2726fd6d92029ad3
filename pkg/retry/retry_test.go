package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/remixgram/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func TestDoWithDataRetriesTransientFailures(t *testing.T) {
	log := logger.New(logger.Opts{})
	attempts := 0

	got, err := DoWithData(context.Background(), log, "flaky", func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	}, fastConfig())

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, attempts)
}

func TestDoWithDataStopsOnPermanentError(t *testing.T) {
	log := logger.New(logger.Opts{})
	permanent := errors.New("no point retrying")
	attempts := 0

	_, err := DoWithData(context.Background(), log, "doomed", func() (int, error) {
		attempts++
		return 0, backoff.Permanent(permanent)
	}, fastConfig())

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts)
}

func TestDoWithDataGivesUpAfterMaxRetries(t *testing.T) {
	log := logger.New(logger.Opts{})
	attempts := 0

	_, err := DoWithData(context.Background(), log, "always-failing", func() (int, error) {
		attempts++
		return 0, errors.New("still broken")
	}, fastConfig())

	require.Error(t, err)
	assert.Equal(t, 4, attempts, "initial attempt plus max retries")
}
