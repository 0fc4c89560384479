package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/models"
	"github.com/halvard/ansuz/internal/tags"
)

func tagCommand() *cli.Command {
	return &cli.Command{
		Name:  "tag",
		Usage: "List, rename, or merge tags across the corpus",
		Commands: []*cli.Command{
			tagListCommand(),
			tagRewriteCommand("rename", "Rename a tag in every document that carries it"),
			tagRewriteCommand("merge", "Merge a tag into another, removing the old one"),
		},
	}
}

func tagListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List all tags with usage counts",
		Action: func(_ context.Context, cmd *cli.Command) error {
			s, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			docs, err := s.LoadAll()
			if err != nil {
				return err
			}
			counts := tags.Count(docs)
			if len(counts) == 0 {
				fmt.Println("No tags found.")
				return nil
			}
			names := make([]string, 0, len(counts))
			total := 0
			for name, n := range counts {
				names = append(names, name)
				total += n
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%6d  %s\n", counts[name], name)
			}
			fmt.Printf("\n%d tag(s), %d total uses\n", len(names), total)
			return nil
		},
	}
}

func tagRewriteCommand(name, usage string) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<old-tag> <new-tag>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Skip confirmation"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			oldTag, newTag := cmd.Args().Get(0), cmd.Args().Get(1)
			if oldTag == "" || newTag == "" {
				return fmt.Errorf("old and new tag are required: %w", apperr.ErrValidation)
			}
			s, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			docs, err := s.LoadAll()
			if err != nil {
				return err
			}

			logger := newLogger(cmd)
			ask := func(affected []models.Document) bool {
				for _, d := range affected {
					fmt.Printf("  - %s\n", d.Title)
				}
				return confirm(fmt.Sprintf("%s tag %q -> %q in %d document(s)?", name, oldTag, newTag, len(affected)))
			}

			var res *tags.Result
			if name == "merge" {
				res = tags.Merge(docs, oldTag, newTag, cmd.Bool("force"), ask, s, logger)
			} else {
				res = tags.Rename(docs, oldTag, newTag, cmd.Bool("force"), ask, s, logger)
			}

			switch {
			case res.AffectedCount == 0:
				fmt.Printf("No documents carry tag %q\n", oldTag)
			case res.Cancelled:
				fmt.Println("Cancelled")
			default:
				for _, f := range res.Failures {
					fmt.Fprintf(os.Stderr, "Failed to update %q: %v\n", f.Title, f.Err)
				}
				fmt.Printf("Updated %d of %d document(s)\n", res.UpdatedCount, res.AffectedCount)
			}
			return nil
		},
	}
}
