package cli

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/iamNilotpal/memfile/internal/adapters/checksum"
	"github.com/iamNilotpal/memfile/internal/core/domain"
	"github.com/iamNilotpal/memfile/internal/core/services/file"
	"github.com/iamNilotpal/memfile/pkg/errors"
	"github.com/iamNilotpal/memfile/pkg/system"
)

// loadFlags are shared by every command that builds a file from inputs.
type loadFlags struct {
	kind      string
	label     string
	algorithm string
	remove    int
}

func (l *loadFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&l.kind, "kind", "property", "file kind: property or image")
	cmd.Flags().StringVar(&l.label, "path", "", "path label of the in-memory file (defaults to the first input)")
	cmd.Flags().StringVar(&l.algorithm, "algorithm", "", "checksum algorithm (defaults to the configured one)")
	cmd.Flags().IntVar(&l.remove, "remove", 0, "units to remove from the tail after loading")
}

// load builds a file from inputs. Property inputs must be UTF-8 text and
// are appended as UTF-16 code units; image inputs are appended byte by byte.
func (a *app) load(ctx context.Context, flags *loadFlags, inputs []string) (*file.File, error) {
	kind, err := domain.ParseFileKind(flags.kind)
	if err != nil {
		return nil, errors.NewValidationError("kind", flags.kind, err)
	}

	opts := a.cfg.ChecksumOptions()
	if flags.algorithm != "" {
		opts.Algorithm = domain.ChecksumAlgorithm(flags.algorithm)
	}
	alg, err := checksum.FromOptions(opts)
	if err != nil {
		return nil, errors.NewValidationError("algorithm", opts.Algorithm, err)
	}

	label := flags.label
	if label == "" && len(inputs) > 0 {
		label = inputs[0]
	}

	f := file.New(label, kind, file.WithChecksum(alg), file.WithLogger(a.log))

	ctx, cancel := context.WithTimeout(ctx, a.cfg.LoadTimeout)
	defer cancel()

	err = system.RunWithContext(ctx, func(ctx context.Context) error {
		for _, input := range inputs {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := a.fs.ReadFile(input)
			if err != nil {
				return errors.NewFileError(errors.ErrorStorage, "read input", input, err)
			}

			if kind == domain.KindImage {
				err = f.AppendImage(domain.UnitsFromBytes(data))
			} else {
				if !utf8.Valid(data) {
					return errors.NewValidationError("input", input, fmt.Errorf("property input is not valid UTF-8"))
				}
				err = f.AppendProperty(domain.UnitsFromString(string(data)))
			}
			if err != nil {
				return err
			}

			a.log.Debugw("input loaded", "input", input, "bytes", len(data), "size", f.Size())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := f.RemoveContent(flags.remove); err != nil {
		return nil, err
	}

	return f, nil
}

func (a *app) report(f *file.File) {
	sum := f.Checksum()
	a.printf(
		"path=%s kind=%s size=%d checksum=%d (0x%08x) algorithm=%s\n",
		f.Path(), f.Kind(), f.Size(), sum, sum, f.ChecksumName(),
	)
}
