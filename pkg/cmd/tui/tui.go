package tui

import (
	"github.com/spf13/cobra"

	"github.com/qnote/qnote/internal/state"
	"github.com/qnote/qnote/internal/tui/notes"
)

func NewCmdTUI(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"ui"},
		Short:   "Open the interactive terminal interface.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return notes.Run(s)
		},
	}
}
