package cli

import (
	"github.com/spf13/cobra"

	"github.com/iamNilotpal/memfile/internal/core/domain/config"
	"github.com/iamNilotpal/memfile/internal/core/services/snapshot"
	"github.com/iamNilotpal/memfile/pkg/errors"
)

func newChecksumCommand(a *app) *cobra.Command {
	flags := &loadFlags{}

	cmd := &cobra.Command{
		Use:   "checksum [flags] FILE...",
		Short: "Load inputs into an in-memory file and print its size and checksum",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.load(cmd.Context(), flags, args)
			if err != nil {
				return err
			}

			a.report(f)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newExportCommand(a *app) *cobra.Command {
	flags := &loadFlags{}
	var out string

	cmd := &cobra.Command{
		Use:   "export [flags] --out SNAPSHOT FILE...",
		Short: "Load inputs into an in-memory file and write a snapshot of it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.load(cmd.Context(), flags, args)
			if err != nil {
				return err
			}

			codec, err := a.codec()
			if err != nil {
				return err
			}
			defer codec.Close()

			data, err := codec.Encode(f)
			if err != nil {
				return err
			}

			if err := a.fs.WriteFile(out, 0644, data); err != nil {
				return errors.NewFileError(errors.ErrorStorage, "write snapshot", out, err)
			}

			a.log.Infow("snapshot written", "out", out, "path", f.Path(), "bytes", len(data))
			a.report(f)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "snapshot output path")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect SNAPSHOT",
		Short: "Decode a snapshot, restore the file and verify its checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.fs.ReadFile(args[0])
			if err != nil {
				return errors.NewFileError(errors.ErrorStorage, "read snapshot", args[0], err)
			}

			codec, err := a.codec()
			if err != nil {
				return err
			}
			defer codec.Close()

			s, err := codec.Decode(data)
			if err != nil {
				return err
			}

			f, err := codec.Restore(s)
			if err != nil {
				return err
			}

			a.printf("id=%s created=%s\n", s.ID, s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"))
			a.report(f)
			return nil
		},
	}
}

func (a *app) codec() (*snapshot.Codec, error) {
	return snapshot.NewCodec(
		snapshot.WithCompression(a.cfg.CompressionOptions()),
		snapshot.WithLimits(config.NewSnapshotLimits(
			config.WithMaxEncodedSize(a.cfg.Snapshot.MaxEncodedSize),
			config.WithMaxUnits(a.cfg.Snapshot.MaxUnits),
		)),
		snapshot.WithLogger(a.log),
	)
}
