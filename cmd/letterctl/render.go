package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AwwwRyan/coverletter-gen/internal/letter"
)

var (
	renderProfilePath string
	renderLetterPath  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Fill placeholders in a raw letter from a profile file",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderProfilePath, "profile", "", "profile file (.yaml or .json)")
	renderCmd.Flags().StringVar(&renderLetterPath, "letter", "-", "raw letter file, - for stdin")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	raw, err := readText(renderLetterPath)
	if err != nil {
		return err
	}
	if renderProfilePath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), letter.Clean(raw, nil))
		return nil
	}
	p, err := loadProfile(renderProfilePath)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), letter.Clean(raw, p))
	return nil
}

// stdin is swapped in tests.
var stdin io.Reader = os.Stdin

func readAllStdin() ([]byte, error) {
	return io.ReadAll(stdin)
}
