package cmd

import (
	"fmt"
	"os"

	"github.com/qnote/qnote/internal/state"
	"github.com/qnote/qnote/pkg/cmd/root"
)

func Execute() {
	s := &state.State{}

	rootCmd, err := root.NewCmdRoot(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	execErr := rootCmd.Execute()
	if closeErr := s.Close(); closeErr != nil && execErr == nil {
		execErr = closeErr
	}
	if execErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", execErr)
		os.Exit(1)
	}
}
