package commands

import (
	"fmt"
	"io"

	"github.com/de-tools/retail-dashboard/pkg/runtime/app"
	"github.com/de-tools/retail-dashboard/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// SourceFlags locate settings and upstream profiles. They are shared by all
// commands through persistent flags on the root command.
type SourceFlags struct {
	ConfigPath   string
	ProfilesPath string
}

type DashboardCmd struct {
	source   *SourceFlags
	profile  string
	logOut   io.Writer
	reporter *export.Reporter
}

func NewDashboardCmd(source *SourceFlags, reporter *export.Reporter, logOut io.Writer) *cobra.Command {
	dc := &DashboardCmd{source: source, reporter: reporter, logOut: logOut}
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Fetch the sales data once and print the dashboard",
		Args:  cobra.NoArgs,
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.profile, "profile", "", "Upstream profile to read from (see the profiles command)")

	return cmd
}

func (dc *DashboardCmd) run(cmd *cobra.Command, _ []string) error {
	settings, err := app.LoadSettings(cmd.Context(), app.Options{
		ConfigPath:   dc.source.ConfigPath,
		ProfilesPath: dc.source.ProfilesPath,
		Profile:      dc.profile,
	})
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	logger, err := app.NewLogger(dc.logOut, settings)
	if err != nil {
		return err
	}
	ctx := logger.WithContext(cmd.Context())

	loader, err := app.NewLoader(settings, nil)
	if err != nil {
		return err
	}

	// fetch failures are logged by the loader and only blank their section
	page := loader.NewSession().Page(ctx)

	return dc.reporter.Handle(page)
}
