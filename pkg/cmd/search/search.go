package search

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/qnote/qnote/internal/state"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "search [query]",
		Aliases: []string{"find", "grep"},
		Short:   "Search notes by keyword.",
		Long: heredoc.Doc(`
			Search titles, content, and tags case-insensitively and print the
			matches, most recently updated first.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := s.Store.Search(args[0])
			if err != nil {
				return err
			}

			if len(notes) == 0 {
				fmt.Printf("No notes matching %q.\n", args[0])
				return nil
			}

			for _, n := range notes {
				tags := ""
				if len(n.Tags) > 0 {
					tags = " [" + strings.Join(n.Tags, ", ") + "]"
				}
				fmt.Printf("%d\t%s%s\n", n.ID, n.Title, tags)
			}
			return nil
		},
	}
}
