package hdd_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/ddmin"
	"github.com/corvid-labs/deltadebug/hdd"
	"github.com/corvid-labs/deltadebug/input"
	"github.com/corvid-labs/deltadebug/node"
	"github.com/corvid-labs/deltadebug/outcome"
)

// csvParser splits a flat byte input into comma-separated top-level
// fields, with no internal structure: a one-level tree, enough to
// exercise HDD's node-local reduction without a real grammar.
type csvParser struct{}

func (csvParser) ExpandWhitespace() bool { return false }
func (csvParser) String() string         { return "csv" }

func (csvParser) Parse(cfg configuration.Configuration[byte]) (*node.Node, error) {
	data := cfg.Data()
	root := node.New("root", 0, len(data), 0)
	start := 0
	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == ',' {
			root.Children = append(root.Children, node.New("field", start, i, 1))
			start = i + 1
		}
	}
	return root, nil
}

func TestHDDReducesToRequiredFields(t *testing.T) {
	data := []byte("alpha,drop1,drop2,zeta")
	in := input.New(data)

	oracle := func(cfg configuration.Configuration[byte]) (outcome.Outcome, error) {
		s := string(cfg.Data())
		if strings.Contains(s, "alpha") && strings.Contains(s, "zeta") {
			return outcome.Fail, nil
		}
		return outcome.Pass, nil
	}

	h := hdd.New[byte](csvParser{}, ddmin.New[int]())
	result, err := h.Run(context.Background(), in, oracle, nil)
	require.NoError(t, err)
	require.Equal(t, "alphazeta", string(result.Data()))
}

func TestHDDName(t *testing.T) {
	h := hdd.New[byte](csvParser{}, ddmin.New[int]())
	require.Equal(t, "HDD with ddmin using csv", h.Name())
}

func TestHDDSingleFieldUntouched(t *testing.T) {
	data := []byte("onlyfield")
	in := input.New(data)
	calls := 0
	oracle := func(cfg configuration.Configuration[byte]) (outcome.Outcome, error) {
		calls++
		return outcome.Fail, nil
	}
	h := hdd.New[byte](csvParser{}, ddmin.New[int]())
	result, err := h.Run(context.Background(), in, oracle, nil)
	require.NoError(t, err)
	require.Equal(t, "onlyfield", string(result.Data()))
	require.Zero(t, calls, "a node with a single child is never reduced")
}
