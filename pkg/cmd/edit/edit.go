package edit

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/qnote/qnote/internal/editor"
	"github.com/qnote/qnote/internal/state"
	"github.com/qnote/qnote/pkg/shared/resolve"
	"github.com/qnote/qnote/utils"
)

func NewCmdEdit(s *state.State) *cobra.Command {
	var (
		titleFlag   string
		contentFlag string
		tagsFlag    string
	)

	cmd := &cobra.Command{
		Use:     "edit [id|title]",
		Aliases: []string{"e"},
		Short:   "Edit a note.",
		Long: heredoc.Doc(`
			Edit a note by ID or title pattern. Field flags change single
			fields directly; without any flags the note opens in $EDITOR
			using the qnote text format (title line, optional #tag line,
			blank separator, content).
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolve.NoteOrPick(s.Store, args, "Edit note")
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

			if titleFlag != "" || contentFlag != "" || tagsFlag != "" {
				title := note.Title
				content := note.Content
				tags := note.Tags
				if titleFlag != "" {
					title = titleFlag
				}
				if contentFlag != "" {
					content = contentFlag
				}
				if tagsFlag != "" {
					tags = utils.ParseTags(tagsFlag)
				}
				if err := s.Store.Update(id, title, content, tags); err != nil {
					return err
				}
				fmt.Printf("Note %d updated.\n", id)
				return nil
			}

			return editExternal(s, note.ID, editor.Draft{
				Title:   note.Title,
				Content: note.Content,
				Tags:    note.Tags,
			})
		},
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "Replace the note title.")
	cmd.Flags().StringVar(&contentFlag, "content", "", "Replace the note content.")
	cmd.Flags().StringVarP(&tagsFlag, "tags", "t", "", "Replace the tags (comma-separated).")

	return cmd
}

// editExternal runs the blocking editor round trip outside the TUI: no
// terminal state needs saving, the editor simply inherits the tty.
func editExternal(s *state.State, id int64, draft editor.Draft) error {
	path, err := editor.WriteTempFile(draft, s.Config.Editor.SecureTempFiles)
	if err != nil {
		return err
	}
	defer editor.Cleanup(path)

	ed := editor.Command(s.Config, path)
	if err := ed.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	edited, ok, err := editor.ReadTempFile(path)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Edit abandoned, note unchanged.")
		return nil
	}

	if err := s.Store.Update(id, edited.Title, edited.Content, edited.Tags); err != nil {
		return err
	}
	fmt.Printf("Note %d updated.\n", id)
	return nil
}
