package export

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/qnote/qnote/internal/editor"
	"github.com/qnote/qnote/internal/state"
	"github.com/qnote/qnote/pkg/shared/resolve"
	"github.com/qnote/qnote/utils"
)

func NewCmdExport(s *state.State) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [id|title]",
		Short: "Export a note to a markdown file.",
		Long: heredoc.Doc(`
			Write a note to disk in the qnote text format. The file name
			derives from the sanitized title unless --output is given.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolve.NoteOrPick(s.Store, args, "Export note")
			if err != nil {
				return err
			}

			note, err := s.Store.Get(id)
			if err != nil {
				return err
			}
			if note == nil {
				return fmt.Errorf("note %d not found", id)
			}

			path := output
			if path == "" {
				path = utils.ExportPath(note.Title)
			}

			content := editor.Serialize(editor.Draft{
				Title:   note.Title,
				Content: note.Content,
				Tags:    note.Tags,
			})
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			fmt.Printf("Exported to: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path.")

	return cmd
}
