package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/halvard/ansuz/internal/apperr"
	"github.com/halvard/ansuz/internal/backup"
	"github.com/halvard/ansuz/internal/models"
	"github.com/halvard/ansuz/internal/parser"
	"github.com/halvard/ansuz/internal/search"
	"github.com/halvard/ansuz/internal/store"
	"github.com/halvard/ansuz/internal/tags"
)

func createCommand() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a new document",
		ArgsUsage: "<title>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tags", Aliases: []string{"t"}, Usage: "Comma-separated tags"},
			&cli.StringFlag{Name: "template", Aliases: []string{"T"}, Usage: "Seed the body from another document file"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			title := cmd.Args().First()
			if title == "" {
				return fmt.Errorf("title is required: %w", apperr.ErrValidation)
			}
			s, _, err := openStore(cmd)
			if err != nil {
				return err
			}

			body := ""
			if tpl := cmd.String("template"); tpl != "" {
				data, err := os.ReadFile(tpl)
				if err != nil {
					return fmt.Errorf("read template: %w", err)
				}
				// Frontmatter of the template is discarded; only the body seeds
				// the new document.
				if _, tplBody, err := parser.Split(data); err == nil {
					body = tplBody
				} else {
					body = string(data)
				}
			}

			doc, err := s.Create(title, tags.Parse(cmd.String("tags")), body)
			if err != nil {
				return err
			}
			if !cmd.Bool("quiet") {
				fmt.Printf("Created %q (id %d) at %s\n", doc.Title, doc.ID,
					filepath.Join(cmd.String("dir"), doc.Location))
			}
			return nil
		},
	}
}

func viewCommand() *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "Print a document",
		ArgsUsage: "<identifier>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "raw", Aliases: []string{"r"}, Usage: "Print the stored file verbatim"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			identifier := cmd.Args().First()
			if identifier == "" {
				return fmt.Errorf("identifier is required: %w", apperr.ErrValidation)
			}
			s, fs, err := openStore(cmd)
			if err != nil {
				return err
			}
			doc, err := s.Resolve(identifier)
			if err != nil {
				return err
			}

			if cmd.Bool("raw") {
				data, err := fs.Read(doc.Location)
				if err != nil {
					return err
				}
				_, _ = os.Stdout.Write(data)
				return nil
			}

			fmt.Printf("Title:    %s\n", doc.Title)
			fmt.Printf("ID:       %d\n", doc.ID)
			if len(doc.Tags) > 0 {
				fmt.Printf("Tags:     %s\n", strings.Join(doc.Tags, ", "))
			}
			fmt.Printf("Created:  %s\n", parser.FormatTime(doc.Created))
			fmt.Printf("Modified: %s\n", parser.FormatTime(doc.Modified))
			fmt.Println()
			fmt.Println(doc.Body)
			return nil
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List documents",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tags", Aliases: []string{"t"}, Usage: "Filter by tags (comma-separated)"},
			&cli.StringFlag{Name: "sort-by", Aliases: []string{"s"}, Value: "modified", Usage: "Sort by title, created, modified, or size"},
			&cli.BoolFlag{Name: "reverse", Aliases: []string{"r"}, Usage: "Reverse sort order"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "Limit number of documents"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			s, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			docs, err := s.List(store.ListOptions{
				TagFilter: tags.Parse(cmd.String("tags")),
				SortKey:   store.SortKey(cmd.String("sort-by")),
				Reverse:   cmd.Bool("reverse"),
				Limit:     int(cmd.Int("limit")),
			})
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				fmt.Println("No documents found.")
				return nil
			}
			printDocumentTable(docs)
			fmt.Printf("\n%d document(s)\n", len(docs))
			return nil
		},
	}
}

func printDocumentTable(docs []models.Document) {
	fmt.Printf("%-8s  %-40s  %-30s  %s\n", "ID", "TITLE", "TAGS", "MODIFIED")
	for _, d := range docs {
		tagStr := "-"
		if len(d.Tags) > 0 {
			tagStr = strings.Join(d.Tags, ", ")
		}
		fmt.Printf("%-8d  %-40s  %-30s  %s\n", d.ID, d.Title, tagStr, d.Modified.Format("2006-01-02 15:04"))
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search documents by title or body",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "title-only", Aliases: []string{"t"}, Usage: "Search only titles"},
			&cli.BoolFlag{Name: "body-only", Aliases: []string{"b"}, Usage: "Search only bodies"},
			&cli.BoolFlag{Name: "case-sensitive", Aliases: []string{"c"}, Usage: "Match case"},
			&cli.StringFlag{Name: "tags", Usage: "Filter by tags (comma-separated)"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			query := cmd.Args().First()
			if query == "" {
				return fmt.Errorf("query is required: %w", apperr.ErrValidation)
			}
			scope := search.ScopeBoth
			switch {
			case cmd.Bool("title-only") && cmd.Bool("body-only"):
				return fmt.Errorf("cannot combine --title-only and --body-only: %w", apperr.ErrValidation)
			case cmd.Bool("title-only"):
				scope = search.ScopeTitle
			case cmd.Bool("body-only"):
				scope = search.ScopeBody
			}

			s, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			docs, err := s.LoadAll()
			if err != nil {
				return err
			}
			matches, err := search.Run(docs, search.Options{
				Query:         query,
				Scope:         scope,
				CaseSensitive: cmd.Bool("case-sensitive"),
				TagFilter:     tags.Parse(cmd.String("tags")),
			})
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Printf("No documents matching %q\n", query)
				return nil
			}
			fmt.Printf("%-8s  %-40s  %s\n", "ID", "TITLE", "MATCH")
			for _, m := range matches {
				fmt.Printf("%-8d  %-40s  %s\n", m.Doc.ID, m.Doc.Title, m.Context)
			}
			fmt.Printf("\n%d document(s) found\n", len(matches))
			return nil
		},
	}
}

func editCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Update a document's metadata",
		ArgsUsage: "<identifier>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rename", Aliases: []string{"r"}, Usage: "New title"},
			&cli.StringFlag{Name: "add-tags", Aliases: []string{"a"}, Usage: "Tags to add (comma-separated)"},
			&cli.StringFlag{Name: "remove-tags", Aliases: []string{"R"}, Usage: "Tags to remove (comma-separated)"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			identifier := cmd.Args().First()
			if identifier == "" {
				return fmt.Errorf("identifier is required: %w", apperr.ErrValidation)
			}
			req := store.EditRequest{
				Rename:     cmd.String("rename"),
				AddTags:    tags.Parse(cmd.String("add-tags")),
				RemoveTags: tags.Parse(cmd.String("remove-tags")),
			}
			if req.Rename == "" && len(req.AddTags) == 0 && len(req.RemoveTags) == 0 {
				return fmt.Errorf("nothing to change, pass --rename, --add-tags, or --remove-tags: %w", apperr.ErrValidation)
			}
			s, _, err := openStore(cmd)
			if err != nil {
				return err
			}
			doc, err := s.Edit(identifier, req)
			if err != nil {
				return err
			}
			if !cmd.Bool("quiet") {
				fmt.Printf("Updated %q (id %d)\n", doc.Title, doc.ID)
			}
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete documents, with an optional snapshot first",
		ArgsUsage: "<identifier>[,<identifier>...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Skip confirmation"},
			&cli.BoolFlag{Name: "no-backup", Usage: "Skip the pre-delete snapshot"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			raw := cmd.Args().First()
			identifiers := splitIdentifiers(raw)
			if len(identifiers) == 0 {
				return fmt.Errorf("no documents specified: %w", apperr.ErrValidation)
			}
			s, fs, err := openStore(cmd)
			if err != nil {
				return err
			}
			docs, err := s.LoadAll()
			if err != nil {
				return err
			}

			mgr := backup.NewManager(fs, newLogger(cmd))
			res, err := mgr.DeleteBatch(docs, identifiers, backup.DeleteOptions{
				Force:      cmd.Bool("force"),
				WithBackup: !cmd.Bool("no-backup"),
				Confirm: func(resolved []models.Document) bool {
					for _, d := range resolved {
						fmt.Fprintf(os.Stderr, "  - %s (id %d)\n", d.Title, d.ID)
					}
					return confirm(fmt.Sprintf("Delete %d document(s)?", len(resolved)))
				},
			})
			if len(res.NotFound) > 0 {
				fmt.Fprintf(os.Stderr, "Not found: %s\n", strings.Join(res.NotFound, ", "))
			}
			if err != nil {
				return err
			}
			if res.Cancelled {
				fmt.Println("Deletion cancelled")
				return nil
			}
			for _, f := range res.Failures {
				fmt.Fprintf(os.Stderr, "Failed to delete %q: %v\n", f.Title, f.Err)
			}
			if !cmd.Bool("quiet") {
				fmt.Printf("Deleted %d document(s)\n", len(res.Deleted))
				if res.BackupDir != "" {
					fmt.Printf("Backup saved to %s\n", filepath.Join(cmd.String("dir"), res.BackupDir))
				}
			}
			return nil
		},
	}
}

func splitIdentifiers(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
