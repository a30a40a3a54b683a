package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"romsieve/pkg/catalog"
	"romsieve/pkg/config"
	"romsieve/pkg/errors"
	"romsieve/pkg/group"
	"romsieve/pkg/logging"
	"romsieve/pkg/output"
	"romsieve/pkg/policy"
	"romsieve/pkg/selection"
	"romsieve/pkg/source"
)

var (
	pickAnalyze bool
	pickAttrs   bool
	pickOutput  string

	pickCmd = &cobra.Command{
		Use:   "pick <list-file|dir>",
		Short: MsgPickShort,
		Long:  MsgPickLong,
		Args:  cobra.ExactArgs(1),
		RunE:  runPick,
	}
)

func init() {
	pickCmd.Flags().BoolVar(&pickAnalyze, "analyze", false, "Print every candidate's score and veto state instead of the winner list")
	pickCmd.Flags().BoolVar(&pickAttrs, "attrs", false, "Print every distinct tag attribute encountered")
	pickCmd.Flags().StringVarP(&pickOutput, "output", "o", "", "Write the result to a file instead of stdout")
}

func runPick(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cmd.pick")

	pol, err := loadPolicy()
	if err != nil {
		return err
	}

	names, err := source.Read(args[0])
	if err != nil {
		return err
	}
	logger.Info().Str("source", args[0]).Int("entries", len(names)).Msg("Catalog read")

	entries := make([]catalog.Entry, 0, len(names))
	for _, name := range names {
		// Invalid entries stay in the run: the engine reports and counts
		// them instead of scoring them.
		e, parseErr := catalog.ParseEntry(name)
		if parseErr != nil {
			logger.Debug().Str("name", name).Msg("Entry has no region tag group")
		}
		entries = append(entries, e)
	}

	var opts []selection.Option
	if pickAnalyze {
		opts = append(opts, selection.WithTrace())
	}
	engine := selection.NewEngine(pol, group.SequentialPrefix(), opts...)
	res := engine.Run(entries)

	w, closer, err := resultWriter(cmd, pickOutput)
	if err != nil {
		return err
	}
	defer closer()

	renderer := output.NewRenderer(w, noColor)
	switch {
	case pickAttrs:
		return renderer.WriteAttributes(res)
	case pickAnalyze:
		return renderer.WriteAnalysis(res)
	default:
		if len(res.Winners) == 0 && pickOutput == "" {
			cmd.Println(MsgNoWinners)
			return nil
		}
		return renderer.WriteWinners(res)
	}
}

// loadPolicy builds the validated policy from the layered configuration.
// Shared by pick and dat.
func loadPolicy() (*policy.Policy, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	return policy.New(cfg)
}

// resultWriter returns the command's stdout or the --output file.
func resultWriter(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot create output file %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}
