package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AwwwRyan/coverletter-gen/internal/generation/domain"
	"github.com/AwwwRyan/coverletter-gen/internal/generation/prompt"
)

var (
	promptProfilePath string
	promptJobPath     string
	promptSource      string
	promptTone        string
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the prompt that would be sent to the model",
	RunE:  runPrompt,
}

func init() {
	promptCmd.Flags().StringVar(&promptProfilePath, "profile", "", "profile file (.yaml or .json)")
	promptCmd.Flags().StringVar(&promptJobPath, "job", "", "job description file, - for stdin")
	promptCmd.Flags().StringVar(&promptSource, "source", "", "where the job was posted")
	promptCmd.Flags().StringVar(&promptTone, "tone", string(domain.DefaultTone), "letter tone")
	_ = promptCmd.MarkFlagRequired("profile")
	_ = promptCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	p, err := loadProfile(promptProfilePath)
	if err != nil {
		return err
	}
	jd, err := readText(promptJobPath)
	if err != nil {
		return err
	}

	text, err := prompt.Build(domain.Request{
		Profile:        p,
		JobDescription: jd,
		JobSource:      promptSource,
		Tone:           domain.Tone(promptTone),
	})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
