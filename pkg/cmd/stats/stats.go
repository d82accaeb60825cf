package stats

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qnote/qnote/internal/state"
	"github.com/qnote/qnote/utils"
)

func NewCmdStats(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics about the note collection.",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.Store.CollectStats()
			if err != nil {
				return err
			}

			fmt.Println("Note Statistics")
			fmt.Println(strings.Repeat("=", 40))
			fmt.Printf("Total notes:   %d\n", st.TotalNotes)
			fmt.Printf("Unique tags:   %d\n", st.UniqueTags)
			fmt.Printf("Total size:    %d bytes\n", st.TotalBytes)

			if st.Oldest != nil {
				fmt.Printf("Oldest note:   %s (%s)\n", st.Oldest.Title, utils.FormatDate(st.Oldest.CreatedAt, utils.DateOnly))
			}
			if st.Newest != nil {
				fmt.Printf("Newest note:   %s (%s)\n", st.Newest.Title, utils.FormatDate(st.Newest.CreatedAt, utils.DateOnly))
			}
			return nil
		},
	}
}
