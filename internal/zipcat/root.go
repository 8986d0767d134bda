// Package zipcat implements the zipcat command, which prints the lines of
// several files side by side, stopping at the end of the shortest file.
package zipcat

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	zippedrange "github.com/smukherj1/zipped-range"
	"github.com/smukherj1/zipped-range/internal/zlog"
)

type options struct {
	format    format
	separator string
	header    bool
	upper     bool
	debug     bool
}

// NewRootCmd returns the zipcat command. levelVar is lowered to debug
// when --debug is passed.
func NewRootCmd(levelVar *slog.LevelVar) *cobra.Command {
	opts := options{format: formatText}

	cmd := &cobra.Command{
		Use:           "zipcat FILE FILE [FILE...]",
		Short:         "Print the lines of several files side by side",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug && levelVar != nil {
				levelVar.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, opts, args)
		},
	}

	isTerm := isatty.IsTerminal(os.Stdout.Fd())

	flags := cmd.Flags()
	flags.VarP(&opts.format, "format", "f", "output format: text, json or yaml")
	flags.StringVarP(&opts.separator, "separator", "s", "\t", "field separator for text output")
	flags.BoolVar(&opts.header, "header", isTerm, "print the file names before the rows")
	flags.BoolVar(&opts.upper, "upper", false, "upper-case every field in place before printing")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug log")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts options, paths []string) error {
	cols, err := loadColumns(ctx, paths)
	if err != nil {
		return err
	}

	logger := zlog.From(ctx)
	b := zippedrange.NewBuilder(
		zippedrange.WithLogger(logger),
		zippedrange.WithOnExhausted(func(info zippedrange.ExhaustInfo) {
			logger.Debug("truncated at shortest file",
				slog.String("path", paths[info.Slot]),
				slog.Int("rows", info.Steps),
			)
		}),
	)
	for _, col := range cols {
		b.Add(zippedrange.Slice(col))
	}
	r, err := b.Build()
	if err != nil {
		return fmt.Errorf("zipcat: %w", err)
	}

	w := newRowWriter(cmd.OutOrStdout(), opts.format, opts.separator)
	if opts.header {
		names := make([]string, len(paths))
		for i, p := range paths {
			names[i] = filepath.Base(p)
		}
		if err := w.Header(names); err != nil {
			return err
		}
	}

	var line int
	err = r.ForEach(func(t zippedrange.Tuple) error {
		line++
		fields := make([]string, t.Len())
		for i := range fields {
			f := zippedrange.Field[*string](t, i)
			if opts.upper {
				*f = strings.ToUpper(*f)
			}
			fields[i] = *f
		}
		return w.Row(record{Line: line, Fields: fields})
	})
	if err != nil {
		return err
	}

	return w.Flush()
}

// Execute runs zipcat with the process arguments and returns the exit code.
func Execute() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var levelVar slog.LevelVar
	levelVar.Set(slog.LevelInfo)

	logger := zlog.NewTextLogger(os.Stderr, &levelVar)
	ctx = zlog.ContextWithLogger(ctx, logger)

	if err := NewRootCmd(&levelVar).ExecuteContext(ctx); err != nil {
		logger.Error(err.Error())
		return 1
	}
	return 0
}
