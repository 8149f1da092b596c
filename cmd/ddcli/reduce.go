package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/corvid-labs/deltadebug/algorithm"
	"github.com/corvid-labs/deltadebug/cache"
	"github.com/corvid-labs/deltadebug/configuration"
	"github.com/corvid-labs/deltadebug/ddmin"
	"github.com/corvid-labs/deltadebug/debugger"
	"github.com/corvid-labs/deltadebug/examples/elfparser"
	"github.com/corvid-labs/deltadebug/examples/lineparser"
	"github.com/corvid-labs/deltadebug/hdd"
	"github.com/corvid-labs/deltadebug/input"
	"github.com/corvid-labs/deltadebug/internal/logging"
	"github.com/corvid-labs/deltadebug/node"
	"github.com/corvid-labs/deltadebug/outcome"
	"github.com/corvid-labs/deltadebug/probdd"
	"github.com/corvid-labs/deltadebug/zipmin"
)

var (
	inputPath  string
	outputPath string
)

var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Reduce a file to the smallest input that still reproduces a failure",
	RunE:  runReduce,
}

func init() {
	reduceCmd.Flags().StringVar(&inputPath, "input", "", "file to reduce (required)")
	reduceCmd.Flags().StringVar(&outputPath, "output", "", "where to write the reduced file (default: stdout)")
	_ = reduceCmd.MarkFlagRequired("input")
}

func runReduce(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	log := logging.New(logging.Config{Level: cfg.Logging.Level, Format: logging.Format(cfg.Logging.Format)})

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	in := input.New(data)

	alg, err := buildAlgorithm(cfg)
	if err != nil {
		return err
	}

	oracle := shellOracle(cfg.Oracle)

	var c cache.Cache[byte]
	switch cfg.Cache.Kind {
	case "tree":
		c = cache.NewTreeCache[byte]()
	case "hash":
		c = cache.NewHashCache[byte]()
	}

	d := debugger.New[byte](alg, oracle, debugger.WithCache(c), debugger.WithLogger[byte](log))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	result, err := d.Debug(ctx, in)
	if err != nil {
		return fmt.Errorf("reduce: %w", err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), d.Report())

	if outputPath == "" {
		_, err = cmd.OutOrStdout().Write(result.Data())
		return err
	}
	return os.WriteFile(outputPath, result.Data(), 0o644)
}

func buildAlgorithm(cfg *Config) (algorithm.Algorithm[byte], error) {
	switch cfg.Algorithm.Name {
	case "ddmin", "":
		return ddmin.New[byte](), nil
	case "zipmin":
		return zipmin.New[byte](), nil
	case "probdd":
		return probdd.New[byte](), nil
	case "hdd":
		return buildHDD(cfg)
	default:
		return nil, fmt.Errorf("unknown algorithm %q", cfg.Algorithm.Name)
	}
}

func buildHDD(cfg *Config) (algorithm.Algorithm[byte], error) {
	var parser node.Parser[byte]
	var opts []hdd.Option[byte]
	switch cfg.Algorithm.Parser {
	case "elf":
		parser = elfparser.Parser{}
	case "lines", "":
		parser = lineparser.Parser{}
		opts = append(opts, hdd.WithWhitespacePredicate(lineparser.IsWhitespace))
	default:
		return nil, fmt.Errorf("unknown parser %q", cfg.Algorithm.Parser)
	}

	inner, err := buildInner(cfg.Algorithm.Inner)
	if err != nil {
		return nil, err
	}
	return hdd.New[byte](parser, inner, opts...), nil
}

func buildInner(name string) (algorithm.Algorithm[int], error) {
	switch name {
	case "ddmin", "":
		return ddmin.New[int](), nil
	case "zipmin":
		return zipmin.New[int](), nil
	case "probdd":
		return probdd.New[int](), nil
	default:
		return nil, fmt.Errorf("unknown inner algorithm %q", name)
	}
}

// shellOracle runs cfg.Command against a temp file holding the candidate
// bytes, with "{}" substituted for the temp file's path. Exit status 0 is
// Pass; anything else is Fail.
func shellOracle(cfg OracleConfig) algorithm.OracleFunc[byte] {
	return func(c configuration.Configuration[byte]) (outcome.Outcome, error) {
		f, err := os.CreateTemp("", "ddcli-candidate-*")
		if err != nil {
			return 0, fmt.Errorf("create candidate file: %w", err)
		}
		defer os.Remove(f.Name())

		if _, err := f.Write(c.Data()); err != nil {
			f.Close()
			return 0, fmt.Errorf("write candidate file: %w", err)
		}
		if err := f.Close(); err != nil {
			return 0, fmt.Errorf("close candidate file: %w", err)
		}

		ctx := context.Background()
		if cfg.TimeoutSeconds > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
			defer cancel()
		}

		command := strings.ReplaceAll(cfg.Command, "{}", f.Name())
		cmd := exec.CommandContext(ctx, "sh", "-c", command)
		if err := cmd.Run(); err != nil {
			if _, ok := err.(*exec.ExitError); ok {
				return outcome.Fail, nil
			}
			return 0, fmt.Errorf("run oracle command: %w", err)
		}
		return outcome.Pass, nil
	}
}
