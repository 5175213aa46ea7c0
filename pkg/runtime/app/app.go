package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/de-tools/retail-dashboard/pkg/services/config"
	"github.com/de-tools/retail-dashboard/pkg/services/dashboard"
	"github.com/de-tools/retail-dashboard/pkg/store/client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

const profilesFileName = ".salesdashcfg"

// Options select where settings come from. ConfigPath may be empty; Profile,
// when set, is looked up in ProfilesPath and overrides the upstream settings.
type Options struct {
	ConfigPath   string
	ProfilesPath string
	Profile      string
}

func DefaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return profilesFileName
	}
	return filepath.Join(home, profilesFileName)
}

func LoadSettings(ctx context.Context, opts Options) (*config.Settings, error) {
	settings, err := config.LoadSettings(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Profile == "" {
		return settings, nil
	}

	registry, err := config.NewRegistry(opts.ProfilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create config registry: %w", err)
	}

	profile, err := registry.GetProfile(ctx, opts.Profile)
	if err != nil {
		return nil, err
	}
	settings.ApplyProfile(profile)

	zerolog.Ctx(ctx).Debug().
		Str("profile", profile.Name).
		Str("base_url", profile.BaseURL).
		Msg("using upstream profile")

	return settings, settings.Validate()
}

func NewLogger(w io.Writer, settings *config.Settings) (zerolog.Logger, error) {
	level, err := settings.Log.ZerologLevel()
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// NewLoader builds the sales client and loader described by settings. The
// loader collectors are registered with reg when it is not nil.
func NewLoader(settings *config.Settings, reg prometheus.Registerer) (*dashboard.Loader, error) {
	maxBodySize, err := settings.Upstream.MaxBodySizeBytes()
	if err != nil {
		return nil, err
	}

	reader, err := client.NewSalesClient(client.Options{
		BaseURL:     settings.Upstream.BaseURL,
		Timeout:     settings.Upstream.Timeout,
		MaxBodySize: maxBodySize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sales client: %w", err)
	}

	policy, err := dashboard.ParsePolicy(settings.Loader.Policy)
	if err != nil {
		return nil, err
	}

	return dashboard.NewLoader(reader, policy, dashboard.NewMetrics(reg)), nil
}
