package generation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorsSurviveWrapping(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrInvalidRequest,
		ErrTransientFailure,
		ErrPermanentFailure,
		ErrContentBlocked,
		ErrTextOnlyResponse,
		ErrInvalidConfig,
	}

	for _, sentinel := range sentinels {
		wrapped := fmt.Errorf("%w: upstream said no", sentinel)
		assert.True(t, errors.Is(wrapped, sentinel), "expected %v to match after wrapping", sentinel)
	}
}
