package config

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/ini.v1"
)

// Profile names one sales API deployment
type Profile struct {
	Name    string
	BaseURL string
	Timeout time.Duration
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewRegistry loads upstream profiles from an ini file, one section per profile:
//
//	[default]
//	base_url = http://localhost:5000
//	timeout  = 5s
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	baseURL := section.Key("base_url").String()
	if baseURL == "" {
		return nil, fmt.Errorf("profile %s has no base_url", name)
	}

	return &Profile{
		Name:    name,
		BaseURL: baseURL,
		Timeout: section.Key("timeout").MustDuration(0),
	}, nil
}
