package tags

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qnote/qnote/internal/state"
)

func NewCmdTags(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List all tags with note counts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := s.Store.Tags()
			if err != nil {
				return err
			}

			if len(counts) == 0 {
				fmt.Println("No tags found.")
				return nil
			}

			fmt.Printf("Tags (%d total):\n", len(counts))
			for _, tc := range counts {
				fmt.Printf("  %s (%d)\n", tc.Tag, tc.Count)
			}
			return nil
		},
	}
}
