package add

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/qnote/qnote/internal/state"
	"github.com/qnote/qnote/utils"
)

func NewCmdAdd(s *state.State) *cobra.Command {
	var tagsFlag string

	cmd := &cobra.Command{
		Use:     "add [title] [content]",
		Aliases: []string{"a", "new"},
		Short:   "Add a new note.",
		Long: heredoc.Doc(`
			Create a note directly from the command line with a title, optional
			content, and optional comma-separated tags.

			  qnote add "Shopping List" "milk, eggs" --tags errands,home
		`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			content := ""
			if len(args) > 1 {
				content = args[1]
			}

			note, err := s.Store.Create(title, content, utils.ParseTags(tagsFlag))
			if err != nil {
				return err
			}

			fmt.Printf("Note created with ID: %d\n", note.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tagsFlag, "tags", "t", "", "Comma-separated tags for the note.")

	return cmd
}
