package cmd

import (
	"errors"
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/s0up4200/onering/config"
)

const defaultRepository = "s0up4200/onering"

var updateRepository string

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update onering to the latest release",
	Long: `Check GitHub for a newer onering release and replace the running binary.

Development builds cannot be updated.`,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateRepository, "repository", "", "GitHub owner/repo to update from (overrides update.repository)")
}

// releaseRepository picks the repository from the flag, then the config
// file, then the built-in default. A missing API key does not block updates.
func releaseRepository() string {
	if updateRepository != "" {
		return updateRepository
	}
	if loaded, err := config.Load(cfgFile); err == nil && loaded.Update.Repository != "" {
		return loaded.Update.Repository
	}
	return defaultRepository
}

// currentVersion parses the running version, refusing development builds
func currentVersion() (semver.Version, error) {
	if version == "dev" {
		return semver.Version{}, errors.New("cannot update a development build")
	}

	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("invalid version %q: %w", version, err)
	}
	return v, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	current, err := currentVersion()
	if err != nil {
		return err
	}

	repository := releaseRepository()
	fmt.Fprintf(out, "Checking %s for updates...\n", repository)

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repository))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", repository)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(out, "✓ Already up to date (%s)\n", current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(out, "✓ Updated %s -> %s\n", current, latest.Version())
	return nil
}
