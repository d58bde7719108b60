package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/duscan/internal/duscan"
)

// dotWindow is the number of progress dots shown before the indicator
// rolls over.
const dotWindow = 5

func logic(options duscan.Options) error {
	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Rolling dot indicator: one dot per progress tick, reset after
	// five, printed in place on stderr. The hook may be invoked from
	// concurrent walk callbacks, hence the atomic counter.
	var (
		progressHook func(files int64)
		ticks        atomic.Int64
	)

	if enableProgress {
		progressHook = func(int64) {
			dots := strings.Repeat(".", int((ticks.Add(1)-1)%dotWindow)+1)
			fmt.Fprintf(os.Stderr, "\r\033[2K%s", dots)
		}
	}

	result, err := duscan.Run(ctx, options, progressHook)

	// Clear the indicator line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(result, os.Stdout)
	case "table":
		return PrintReport(result, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
