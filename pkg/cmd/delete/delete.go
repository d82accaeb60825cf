package delete

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/qnote/qnote/internal/state"
	"github.com/qnote/qnote/pkg/shared/resolve"
)

func NewCmdDelete(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete [id|title]",
		Aliases: []string{"rm", "del"},
		Short:   "Delete a note.",
		Long: heredoc.Doc(`
			Delete a note by ID or title pattern. Asks for confirmation
			unless --yes is given.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolve.NoteOrPick(s.Store, args, "Delete note")
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

			if !yes && !confirm(fmt.Sprintf("Delete '%s'?", note.Title)) {
				fmt.Println("Cancelled.")
				return nil
			}

			if err := s.Store.Delete(id); err != nil {
				return err
			}
			fmt.Printf("Deleted '%s'.\n", note.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")

	return cmd
}

func confirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.TrimSpace(line) {
	case "y", "Y", "yes", "Yes":
		return true
	}
	return false
}
