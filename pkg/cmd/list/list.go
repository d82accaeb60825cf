package list

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/qnote/qnote/internal/state"
	"github.com/qnote/qnote/internal/store"
	"github.com/qnote/qnote/utils"
)

func NewCmdList(s *state.State) *cobra.Command {
	var (
		tagFlag   string
		oneline   bool
		sortFlag  string
		limitFlag int
		sinceFlag string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List notes.",
		Long: heredoc.Doc(`
			List notes with optional filtering and sorting.

			  qnote list --tag work --sort title
			  qnote list --since "last monday" --limit 10
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			sortMode, err := store.ParseSortMode(sortFlag)
			if err != nil {
				return err
			}

			opts := store.ListOptions{
				Sort:  sortMode,
				Tag:   tagFlag,
				Limit: limitFlag,
			}
			if sinceFlag != "" {
				since, err := dateparse.ParseAny(sinceFlag)
				if err != nil {
					return fmt.Errorf("parse --since %q: %w", sinceFlag, err)
				}
				opts.Since = since
			}

			notes, err := s.Store.List(opts)
			if err != nil {
				return err
			}

			if len(notes) == 0 {
				fmt.Println("No notes found.")
				return nil
			}

			for _, n := range notes {
				if oneline {
					tags := ""
					if len(n.Tags) > 0 {
						tags = " [" + strings.Join(n.Tags, ", ") + "]"
					}
					fmt.Printf("%d\t%s%s\n", n.ID, n.Title, tags)
				} else {
					fmt.Printf(
						"\n[%d] %s\nTags: %s\nUpdated: %s\n",
						n.ID,
						n.Title,
						strings.Join(n.Tags, ", "),
						utils.FormatDate(n.UpdatedAt, utils.DateFull),
					)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tagFlag, "tag", "t", "", "Only show notes carrying this tag.")
	cmd.Flags().BoolVarP(&oneline, "oneline", "o", false, "One line per note.")
	cmd.Flags().StringVarP(&sortFlag, "sort", "s", "updated", "Sort order: updated, created, or title.")
	cmd.Flags().IntVarP(&limitFlag, "limit", "l", 0, "Maximum number of notes to show.")
	cmd.Flags().StringVar(&sinceFlag, "since", "", "Only show notes created after this date (flexible formats).")

	return cmd
}
