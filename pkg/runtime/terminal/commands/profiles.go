package commands

import (
	"fmt"

	"github.com/de-tools/retail-dashboard/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	source *SourceFlags
}

func NewProfilesCmd(source *SourceFlags) *cobra.Command {
	pc := &ProfilesCmd{source: source}
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the upstream profiles found in the profiles file",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	registry, err := config.NewRegistry(pc.source.ProfilesPath)
	if err != nil {
		return fmt.Errorf("failed to read profiles from %s: %w", pc.source.ProfilesPath, err)
	}

	names, err := registry.GetProfiles(ctx)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in %s\n", pc.source.ProfilesPath)
		return nil
	}

	for _, name := range names {
		profile, err := registry.GetProfile(ctx, name)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t(invalid: %v)\n", name, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", profile.Name, profile.BaseURL)
	}

	return nil
}
