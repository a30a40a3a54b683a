package main

import (
	"github.com/spf13/cobra"

	"romsieve/pkg/config"
	"romsieve/pkg/dat"
	"romsieve/pkg/group"
	"romsieve/pkg/logging"
	"romsieve/pkg/output"
	"romsieve/pkg/policy"
	"romsieve/pkg/selection"
)

var (
	datAnalyze      bool
	datAttrs        bool
	datOutput       string
	datManufacturer string

	datCmd = &cobra.Command{
		Use:   "dat <datfile>",
		Short: MsgDatShort,
		Long:  MsgDatLong,
		Args:  cobra.ExactArgs(1),
		RunE:  runDat,
	}
)

func init() {
	datCmd.Flags().BoolVar(&datAnalyze, "analyze", false, "Print every candidate's score and veto state instead of the filtered dat")
	datCmd.Flags().BoolVar(&datAttrs, "attrs", false, "Print every distinct tag attribute encountered")
	datCmd.Flags().StringVarP(&datOutput, "output", "o", "", "Write the filtered dat to a file instead of stdout")
	datCmd.Flags().StringVarP(&datManufacturer, "manufacturer", "m", "", "Keep only entries of this manufacturer (overrides the config)")
}

func runDat(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cmd.dat")

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if datManufacturer != "" {
		cfg.ManufacturerFilter = datManufacturer
	}
	pol, err := policy.New(cfg)
	if err != nil {
		return err
	}

	cat, err := dat.Load(args[0])
	if err != nil {
		return err
	}
	logger.Info().Str("dat", args[0]).Int("entries", len(cat.Entries)).Msg("Dat catalog loaded")

	opts := []selection.Option{}
	if datAnalyze {
		opts = append(opts, selection.WithTrace())
	}
	grouper := group.NewExplicitLink()
	engine := selection.NewEngine(pol, grouper, opts...)
	res := engine.Run(cat.Entries)

	w, closer, err := resultWriter(cmd, datOutput)
	if err != nil {
		return err
	}
	defer closer()

	renderer := output.NewRenderer(w, noColor)
	switch {
	case datAttrs:
		return renderer.WriteAttributes(res)
	case datAnalyze:
		return renderer.WriteAnalysis(res)
	}

	doc, err := cat.Project(res.Winners, grouper.Clones(), dat.ProjectOptions{
		Manufacturer: pol.ManufacturerFilter(),
	})
	if err != nil {
		return err
	}
	return renderer.WriteDat(doc)
}
