// Package cli wires the memfile commands.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iamNilotpal/memfile/config"
	"github.com/iamNilotpal/memfile/internal/core/ports"
	"github.com/iamNilotpal/memfile/pkg/fs"
	"github.com/iamNilotpal/memfile/pkg/logger"
)

const serviceName = "memfile"

// app carries what every command needs once flags are parsed.
type app struct {
	cfg *config.Config
	log *zap.SugaredLogger
	fs  ports.FileSystemPort
	out io.Writer

	configPath string
	debug      bool
}

// NewRootCommand builds the memfile command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{fs: fs.NewLocalFileSystem(), out: out}

	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Load data into an in-memory file and report its size and checksum",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(newChecksumCommand(a), newExportCommand(a), newInspectCommand(a))
	return root
}

func (a *app) init() error {
	a.cfg = config.DefaultConfig()
	if a.configPath != "" {
		cfg, err := config.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	switch {
	case a.debug:
		a.log = logger.NewDevelopment(serviceName)
	default:
		a.log = logger.NewWithLevel(serviceName, a.cfg.LogLevel)
	}
	return nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
