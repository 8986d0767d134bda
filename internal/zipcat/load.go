package zipcat

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/smukherj1/zipped-range/internal/zlog"
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 << 20

// loadColumns reads every file concurrently and returns their lines in
// argument order.
func loadColumns(ctx context.Context, paths []string) ([][]string, error) {
	cols := make([][]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			lines, err := readLines(ctx, path)
			if err != nil {
				return fmt.Errorf("%v: %w", path, err)
			}
			zlog.From(ctx).Debug("loaded column", "path", path, "lines", len(lines))
			cols[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return cols, nil
}

func readLines(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
