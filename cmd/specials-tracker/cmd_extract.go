package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/specials-tracker/constants"
	"github.com/joseph-ayodele/specials-tracker/internal/common"
	"github.com/joseph-ayodele/specials-tracker/internal/entity"
	"github.com/joseph-ayodele/specials-tracker/internal/pipeline"
)

var extractFlags struct {
	kind string
}

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Extract specials from one URL and print them as JSON (no store writes)",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFlags.kind, "kind", "", "Force the source kind: web, pdf or image")
}

func runExtract(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateLLM(); err != nil {
		return err
	}
	src := entity.Source{URL: args[0]}
	if v := common.HTTPURL("url", src.URL); v != nil {
		return common.NewAppError("INVALID_INPUT", v.Error(), common.ErrInvalidInput)
	}
	if extractFlags.kind != "" {
		kind, ok := constants.ParseSourceKind(extractFlags.kind)
		if !ok {
			return fmt.Errorf("unknown kind %q", extractFlags.kind)
		}
		src.Kind = kind
	}

	proc := pipeline.NewProcessor(
		common.Component(logger, "pipeline"),
		pipeline.Config{},
		newNormalizer(cfg, logger),
		newExtractor(cfg, logger),
		nil,
		nil,
	)
	records, err := proc.ExtractSource(cmd.Context(), src)
	if err != nil {
		return err
	}
	if records == nil {
		records = []entity.SpecialRecord{}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
