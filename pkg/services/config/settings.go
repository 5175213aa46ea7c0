package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/de-tools/retail-dashboard/pkg/services/dashboard"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "DASHBOARD"

type Settings struct {
	Server   ServerSettings   `mapstructure:"server"`
	Upstream UpstreamSettings `mapstructure:"upstream"`
	Loader   LoaderSettings   `mapstructure:"loader"`
	Log      LogSettings      `mapstructure:"log"`
}

type ServerSettings struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type UpstreamSettings struct {
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"` // 0 disables the timeout
	MaxBodySize string        `mapstructure:"max_body_size"`
}

type LoaderSettings struct {
	Policy string `mapstructure:"policy"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("upstream.base_url", "http://localhost:5000")
	v.SetDefault("upstream.timeout", time.Duration(0))
	v.SetDefault("upstream.max_body_size", "4MB")
	v.SetDefault("loader.policy", string(dashboard.PolicyIndependent))
	v.SetDefault("log.level", "info")
}

// LoadSettings reads the settings file at path (optional) and applies
// DASHBOARD_* environment overrides on top of the defaults.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// plain SERVER_HOST/SERVER_PORT are still honoured for existing .env files
	_ = v.BindEnv("server.host", envPrefix+"_SERVER_HOST", "SERVER_HOST")
	_ = v.BindEnv("server.port", envPrefix+"_SERVER_PORT", "SERVER_PORT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *Settings) Validate() error {
	if s.Server.Host == "" || s.Server.Port == "" {
		return fmt.Errorf("server host and port are required")
	}
	if s.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base_url is required")
	}
	if s.Upstream.Timeout < 0 {
		return fmt.Errorf("upstream timeout must not be negative")
	}
	if _, err := s.Upstream.MaxBodySizeBytes(); err != nil {
		return err
	}
	if _, err := dashboard.ParsePolicy(s.Loader.Policy); err != nil {
		return err
	}
	if _, err := s.Log.ZerologLevel(); err != nil {
		return err
	}
	return nil
}

// ApplyProfile points the upstream settings at the given profile.
func (s *Settings) ApplyProfile(p *Profile) {
	if p == nil {
		return
	}
	s.Upstream.BaseURL = p.BaseURL
	if p.Timeout > 0 {
		s.Upstream.Timeout = p.Timeout
	}
}

func (s ServerSettings) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

func (u UpstreamSettings) MaxBodySizeBytes() (int64, error) {
	var size datasize.ByteSize
	if err := size.UnmarshalText([]byte(u.MaxBodySize)); err != nil {
		return 0, fmt.Errorf("invalid upstream max_body_size %q: %w", u.MaxBodySize, err)
	}
	if size.Bytes() == 0 {
		return 0, fmt.Errorf("upstream max_body_size must be positive")
	}
	return int64(size.Bytes()), nil
}

func (l LogSettings) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
