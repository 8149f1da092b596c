package zipmin_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/deltadebug/cache"
	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
	"github.com/corvid-labs/deltadebug/outcome"
	"github.com/corvid-labs/deltadebug/zipmin"
)

// oracle fails iff every digit 0-9 appears somewhere in the configuration.
func failsUnlessAllDigitsPresent(cfg configuration.Configuration[rune]) (outcome.Outcome, error) {
	s := string(cfg.Data())
	for i := 0; i < 10; i++ {
		if !strings.Contains(s, strconv.Itoa(i)) {
			return outcome.Pass, nil
		}
	}
	return outcome.Fail, nil
}

func TestZipMinReducesToDigits(t *testing.T) {
	text := "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz1234567890ABCDEFGHI"
	in := input.New([]rune(text))

	z := zipmin.New[rune]()
	result, err := z.Run(context.Background(), in, failsUnlessAllDigitsPresent, cache.NewHashCache[rune]())
	require.NoError(t, err)
	require.Equal(t, "1234567890", string(result.Data()))
}

func TestZipMinName(t *testing.T) {
	require.Equal(t, "zipmin", zipmin.New[rune]().Name())
}
