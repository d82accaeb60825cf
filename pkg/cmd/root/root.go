package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qnote/qnote/internal/state"
	"github.com/qnote/qnote/internal/tui/notes"
	"github.com/qnote/qnote/pkg/cmd/add"
	deletecmd "github.com/qnote/qnote/pkg/cmd/delete"
	"github.com/qnote/qnote/pkg/cmd/edit"
	"github.com/qnote/qnote/pkg/cmd/export"
	"github.com/qnote/qnote/pkg/cmd/importNotes"
	"github.com/qnote/qnote/pkg/cmd/list"
	"github.com/qnote/qnote/pkg/cmd/search"
	"github.com/qnote/qnote/pkg/cmd/settings"
	"github.com/qnote/qnote/pkg/cmd/show"
	"github.com/qnote/qnote/pkg/cmd/stats"
	"github.com/qnote/qnote/pkg/cmd/tags"
	"github.com/qnote/qnote/pkg/cmd/tui"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "qnote",
		Short: "A fast personal note manager for the terminal.",
		Long: heredoc.Doc(`
			qnote keeps short markdown notes in a local SQLite database and
			gives you two ways in: a scriptable command line and an
			interactive terminal interface.

			Run without arguments to open the interactive interface.

			           [title]     [content]
			qnote add "standup"   "ask about the release branch"
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		// The store opens after flag parsing so --config and --db are
		// honored. Subcommands share the same State pointer.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := state.NewState()
			if err != nil {
				return err
			}
			*s = *loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return notes.Run(s)
		},
	}

	cmd.PersistentFlags().
		String("config", "", "Path to the configuration file.")
	cmd.PersistentFlags().
		String("db", "", "Path to the note database.")
	viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("db", cmd.PersistentFlags().Lookup("db"))

	cmd.AddCommand(
		add.NewCmdAdd(s),
		list.NewCmdList(s),
		show.NewCmdShow(s),
		edit.NewCmdEdit(s),
		deletecmd.NewCmdDelete(s),
		search.NewCmdSearch(s),
		export.NewCmdExport(s),
		importNotes.NewCmdImport(s),
		tags.NewCmdTags(s),
		stats.NewCmdStats(s),
		tui.NewCmdTUI(s),
		settings.NewCmdSettings(s),
	)

	return cmd, nil
}
