package settings

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/qnote/qnote/internal/state"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"config"},
		Short:   "Show the configuration file location and contents.",
		Example: heredoc.Doc(`
			qnote settings
			qnote settings --show
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Config file: %s\n", s.ConfigPath)

			if show {
				out, err := yaml.Marshal(s.Config)
				if err != nil {
					return fmt.Errorf("encode config: %w", err)
				}
				fmt.Println()
				fmt.Print(string(out))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Print the resolved configuration as YAML")

	return cmd
}
