package show

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/qnote/qnote/internal/state"
	"github.com/qnote/qnote/pkg/shared/resolve"
	"github.com/qnote/qnote/utils"
)

func NewCmdShow(s *state.State) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "show [id|title]",
		Aliases: []string{"view", "cat"},
		Short:   "Show a single note.",
		Long: heredoc.Doc(`
			Display a note by ID or title pattern. Without an argument an
			interactive picker opens. Content is rendered as markdown unless
			--plain is given.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolve.NoteOrPick(s.Store, args, "Show note")
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

			sep := strings.Repeat("=", 50)
			fmt.Printf(
				"\n%s\nTitle: %s\nTags: %s\nCreated: %s\nUpdated: %s\n%s\n\n",
				sep,
				note.Title,
				strings.Join(note.Tags, ", "),
				utils.FormatDate(note.CreatedAt, utils.DateFull),
				utils.FormatDate(note.UpdatedAt, utils.DateFull),
				sep,
			)

			if plain {
				fmt.Println(note.Content)
				return nil
			}
			fmt.Println(utils.RenderMarkdown(note.Content, utils.TerminalWidth(100)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&plain, "plain", "p", false, "Print raw content without markdown rendering.")

	return cmd
}
