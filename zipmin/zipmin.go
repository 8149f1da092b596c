package zipmin

import (
	"context"

	"github.com/corvid-labs/deltadebug/algorithm"
	"github.com/corvid-labs/deltadebug/cache"
	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/input"
)

// ZipMin is the coarse-to-fine byte reducer. The zero value is ready to use.
type ZipMin[E comparable] struct{}

// New returns a ready-to-use ZipMin.
func New[E comparable]() *ZipMin[E] {
	return &ZipMin[E]{}
}

// Name implements algorithm.Algorithm.
func (*ZipMin[E]) Name() string { return "zipmin" }

// removeLastChar tests dropping config's last element. On FAIL it is
// dropped for good; otherwise it is folded back into post.
func removeLastChar[E comparable](oracle algorithm.OracleFunc[E], pre, config, post configuration.Configuration[E], c cache.Cache[E]) (configuration.Configuration[E], configuration.Configuration[E], configuration.Configuration[E], error) {
	dropped := config.Slice(0, config.Len()-1)
	trial, err := configuration.Concat(pre, dropped, post)
	if err != nil {
		return pre, config, post, err
	}
	o, err := algorithm.Test(oracle, trial, c)
	if err != nil {
		return pre, config, post, err
	}
	if o.IsFail() {
		return pre, dropped, post, nil
	}
	last := config.Slice(config.Len()-1, config.Len())
	newPost, err := configuration.Concat(last, post)
	if err != nil {
		return pre, config, post, err
	}
	return pre, dropped, newPost, nil
}

// removeCheckEachFragment splits config into chunks of length and drops
// each chunk whose removal still reproduces the failure, returning the
// surviving configuration and the number of dropped chunks in excess of
// the number of elements they removed (the "deficit" fed into a following
// trim pass).
func removeCheckEachFragment[E comparable](oracle algorithm.OracleFunc[E], pre, config, post configuration.Configuration[E], length int, c cache.Cache[E]) (configuration.Configuration[E], int, error) {
	kept := configuration.Empty[E](config.Input())
	count := 0

	for i := 0; i < config.Len(); i += length {
		end := i + length
		if end > config.Len() {
			end = config.Len()
		}
		removed := config.Slice(i, end)
		remaining := config.Slice(end, config.Len())
		trial, err := configuration.Concat(pre, kept, remaining, post)
		if err != nil {
			return kept, 0, err
		}
		o, err := algorithm.Test(oracle, trial, c)
		if err != nil {
			return kept, 0, err
		}
		if !o.IsFail() {
			kept, err = kept.Union(removed)
			if err != nil {
				return kept, 0, err
			}
		} else {
			count++
		}
	}

	deficit := count - (config.Len() - kept.Len())
	if deficit < 0 {
		deficit = 0
	}
	return kept, deficit, nil
}

// Run implements algorithm.Algorithm.
func (z *ZipMin[E]) Run(ctx context.Context, in *input.Input[E], oracle algorithm.OracleFunc[E], c cache.Cache[E]) (configuration.Configuration[E], error) {
	config := configuration.FromInput(in)
	length := config.Len() / 2
	count := 0
	deficit := 0
	pre := configuration.Empty[E](in)
	post := configuration.Empty[E](in)

	for length > 0 && config.Len() > 0 {
		select {
		case <-ctx.Done():
			result, _ := configuration.Concat(pre, config, post)
			return result, ctx.Err()
		default:
		}

		var err error
		next := config
		if count%2 == 1 {
			for i := 0; i < deficit; i++ {
				pre, next, post, err = removeLastChar(oracle, pre, next, post, c)
				if err != nil {
					return configuration.Configuration[E]{}, err
				}
			}
			deficit = 0
		} else {
			next, deficit, err = removeCheckEachFragment(oracle, pre, config, post, length, c)
			if err != nil {
				return configuration.Configuration[E]{}, err
			}
			if next.Equal(config) {
				length /= 2
			}
		}
		config = next
		count++
	}

	return configuration.Concat(pre, config, post)
}
