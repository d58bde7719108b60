package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/idelchi/duscan/internal/config"
	"github.com/idelchi/duscan/internal/duscan"
	"github.com/idelchi/duscan/internal/integration"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		duscan gathers disk usage information from a target location and down.

		It reports partition space and inode utilization, then the largest
		directories and files found under the target. Subdirectories on other
		partitions are not crossed, and pseudo-filesystem directories under
		the filesystem root (dev, proc, selinux) are never entered.

		Usage:

			duscan [flags] TARGET

		Positional Arguments:
		  TARGET                 Filesystem location to start from. Required.

		The '-i' flag is available if using the integration script for shell usage.
		It will then run an interactive mode where the target is picked via 'fzf'.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		options    duscan.Options
		minSizeStr string
	)

	allowedOutputs := []string{"table", "json"}

	pflag.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	pflag.StringVarP(&options.Config, "config", "c", "", "Path to exclusion config file (YAML)")
	pflag.StringVar(&minSizeStr, "min-size", "0B", "Minimum file size for the largest-files list (e.g., 1KB)")
	pflag.IntVar(&options.TopFiles, "top-files", duscan.DefaultTopFiles, "Number of largest files to report")
	pflag.IntVar(&options.TopDirs, "top-dirs", duscan.DefaultTopDirs, "Number of largest directories to report")
	pflag.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	pflag.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")
	pflag.BoolVarP(&options.Integration, "init", "i", false, "Output init script for shell usage")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if options.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if options.Integration {
		rendered, err := integration.Render()
		if err != nil {
			return fmt.Errorf("rendering integration script: %w", err)
		}

		//nolint:forbidigo // Integration script output to console
		fmt.Println(rendered)

		return nil
	}

	if !slices.Contains(allowedOutputs, options.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if options.TopFiles <= 0 || options.TopDirs <= 0 {
		return errors.New("top-files and top-dirs must be positive")
	}

	if pflag.NArg() == 0 {
		pflag.Usage()

		return errors.New("you must supply a filesystem location to start from")
	}

	options.Target = pflag.Args()[0]

	// Parse minSize string to bytes
	if minSizeStr != "" {
		size, err := humanize.ParseBytes(minSizeStr)
		if err != nil {
			return fmt.Errorf("invalid min-size: %w", err)
		}

		options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
	}

	if options.Config != "" {
		cfg, err := config.Load(options.Config)
		if err != nil {
			return err
		}

		options.ExcludeRoot = cfg.ExcludeRoot
		options.Exclude = cfg.Exclude
	}

	return logic(options)
}
