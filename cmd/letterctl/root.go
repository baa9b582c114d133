package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	profile "github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

var rootCmd = &cobra.Command{
	Use:          "letterctl",
	Short:        "Cover letter tooling",
	Long:         "letterctl renders generated letters offline, previews prompts and calls the cover letter API.",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadProfile reads a profile from YAML (.yaml, .yml) or JSON (anything else).
func loadProfile(path string) (*profile.Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p profile.Profile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &p)
	default:
		err = json.Unmarshal(raw, &p)
	}
	if err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}

func readText(path string) (string, error) {
	if path == "-" {
		raw, err := readAllStdin()
		return string(raw), err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(raw), nil
}
