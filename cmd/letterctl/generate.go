package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AwwwRyan/coverletter-gen/internal/client"
	"github.com/AwwwRyan/coverletter-gen/internal/generation/domain"
	profile "github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

var (
	genServer      string
	genToken       string
	genUserID      string
	genJobPath     string
	genProfilePath string
	genSource      string
	genTone        string
	genRaw         bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a letter through the API and print it cleaned",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genServer, "server", "http://localhost:8080", "API base URL")
	generateCmd.Flags().StringVar(&genToken, "token", os.Getenv("LETTERCTL_TOKEN"), "Firebase ID token (default: LETTERCTL_TOKEN)")
	generateCmd.Flags().StringVar(&genUserID, "user", "", "X-User-Id for dev servers")
	generateCmd.Flags().StringVar(&genJobPath, "job", "", "job description file, - for stdin")
	generateCmd.Flags().StringVar(&genProfilePath, "profile", "", "profile file; fetched from the server when empty")
	generateCmd.Flags().StringVar(&genSource, "source", "", "where the job was posted")
	generateCmd.Flags().StringVar(&genTone, "tone", string(domain.DefaultTone), "letter tone")
	generateCmd.Flags().BoolVar(&genRaw, "raw", false, "print the letter without post-processing")
	_ = generateCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jd, err := readText(genJobPath)
	if err != nil {
		return err
	}

	c := client.New(genServer, genToken, client.WithUserID(genUserID))

	p, err := resolveProfile(ctx, c)
	if err != nil {
		return err
	}

	raw, err := c.Generate(ctx, domain.Request{
		Profile:        p,
		JobDescription: jd,
		JobSource:      genSource,
		Tone:           domain.Tone(genTone),
	})
	if err != nil {
		return err
	}

	if genRaw {
		fmt.Fprintln(cmd.OutOrStdout(), raw)
		return nil
	}
	session := client.NewSession(p)
	session.SetLetter(raw)
	fmt.Fprintln(cmd.OutOrStdout(), session.Render())
	return nil
}

func resolveProfile(ctx context.Context, c *client.Client) (*profile.Profile, error) {
	if genProfilePath != "" {
		return loadProfile(genProfilePath)
	}
	return c.FetchProfile(ctx)
}
