package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docufill/idextract/internal/config"
	"github.com/docufill/idextract/internal/logger"
	"github.com/docufill/idextract/internal/pipeline"
)

func newExtractCmd(cfg config.Config) *cobra.Command {
	var outputPath string
	var perDocument bool

	cmd := &cobra.Command{
		Use:   "extract [documents...]",
		Short: "Extract a structured identity record from one or more documents",
		Long: `Process one or more identity documents and print the extracted record
as JSON. PDF inputs are read through their embedded text layer; image
inputs (.jpg, .jpeg, .png) go through the full preprocessing and OCR
sweep.

When several documents are given, per-document records are merged by
keeping the most complete value for each field.`,
		Example: `  # One Aadhaar scan
  idextract extract aadhaar.jpg

  # Merge an Aadhaar scan with a PAN PDF, write to a file
  idextract extract aadhaar.jpg pan.pdf -o record.json

  # Keep the per-document records instead of merging
  idextract extract front.jpg back.jpg --per-document`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.WithComponent("extract")
			p := pipeline.New(cfg, log)

			var result any
			if perDocument {
				records := make([]recordWithPath, 0, len(args))
				for _, path := range args {
					data, err := p.ProcessFile(path)
					if err != nil {
						return err
					}
					records = append(records, recordWithPath{Path: path, Record: data})
				}
				result = records
			} else {
				merged, err := p.ProcessFiles(args)
				if err != nil {
					return err
				}
				result = merged
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			out = append(out, '\n')

			if outputPath != "" {
				return os.WriteFile(outputPath, out, 0644)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&perDocument, "per-document", false, "Print one record per document instead of merging")
	return cmd
}

type recordWithPath struct {
	Path   string `json:"path"`
	Record any    `json:"record"`
}
