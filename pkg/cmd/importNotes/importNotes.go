package importNotes

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/qnote/qnote/internal/editor"
	"github.com/qnote/qnote/internal/state"
)

func NewCmdImport(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "import [files...]",
		Aliases: []string{"imp"},
		Short:   "Import notes from markdown files.",
		Long: heredoc.Doc(`
			Create one note per file. Files use the qnote text format: the
			first line is the title, an optional #tag line follows, and the
			rest is content. Unreadable or empty files are skipped with a
			warning.
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imported := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Warning: cannot read %s: %v\n", path, err)
					continue
				}

				draft, ok := editor.Parse(string(data))
				if !ok {
					fmt.Fprintf(os.Stderr, "Warning: could not parse %s\n", path)
					continue
				}

				if _, err := s.Store.Create(draft.Title, draft.Content, draft.Tags); err != nil {
					return fmt.Errorf("import %s: %w", path, err)
				}
				imported++
				fmt.Printf("Imported: %s\n", path)
			}

			fmt.Printf("\nImported %d note(s)\n", imported)
			return nil
		},
	}
}
