package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/export"
	"github.com/halvard/ansuz/internal/export/htmlconv"
	"github.com/halvard/ansuz/internal/store"
	"github.com/halvard/ansuz/internal/tags"
)

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export documents to JSON, plain text, or HTML",
		ArgsUsage: "<output-path>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "html", Usage: "Export format: json, txt, or html"},
			&cli.StringFlag{Name: "tags", Aliases: []string{"t"}, Usage: "Filter by tags (comma-separated)"},
			&cli.BoolFlag{Name: "single-file", Aliases: []string{"s"}, Usage: "Write one aggregate file instead of one per document"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			output := cmd.Args().First()
			if output == "" {
				return fmt.Errorf("output path is required: %w", apperr.ErrValidation)
			}
			opts := export.Options{
				Format:     export.Format(cmd.String("format")),
				SingleFile: cmd.Bool("single-file"),
			}
			// Reject bad formats before touching the corpus.
			if err := opts.Validate(); err != nil {
				return err
			}

			s, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			docs, err := s.List(store.ListOptions{
				TagFilter: tags.Parse(cmd.String("tags")),
				SortKey:   store.SortByTitle,
			})
			if err != nil {
				return err
			}

			pipeline := export.NewPipeline(htmlconv.New())
			if err := pipeline.Export(docs, output, opts); err != nil {
				return err
			}
			if !cmd.Bool("quiet") {
				fmt.Printf("Exported %d document(s) to %s\n", len(docs), output)
			}
			return nil
		},
	}
}
