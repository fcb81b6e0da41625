package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/ini.v1"
)

// SMTPProfile is one named credential set from the profiles file.
type SMTPProfile struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

// Registry reads SMTP credential profiles from an INI file, one section per
// profile.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, profile string) (*SMTPProfile, error)
}

type smtpRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &smtpRegistry{cfg: cfg}, nil
}

func (r *smtpRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *smtpRegistry) GetProfile(_ context.Context, profile string) (*SMTPProfile, error) {
	if !r.cfg.HasSection(profile) {
		return nil, fmt.Errorf("profile %s not found", profile)
	}
	section := r.cfg.Section(profile)

	port, err := section.Key("port").Int()
	if err != nil {
		port = 587
	}

	return &SMTPProfile{
		Host:       section.Key("host").String(),
		Port:       port,
		Username:   section.Key("username").String(),
		Password:   section.Key("password").String(),
		From:       section.Key("from").String(),
		AdminEmail: section.Key("admin_email").String(),
	}, nil
}

// SMTPFromEnv builds a profile from environment variables, matching the
// variable names the deployment scripts export.
func SMTPFromEnv() *SMTPProfile {
	port := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			port = parsed
		}
	}

	return &SMTPProfile{
		Host:       envOr("SMTP_SERVER", "smtp.gmail.com"),
		Port:       port,
		Username:   os.Getenv("EMAIL_USERNAME"),
		Password:   os.Getenv("EMAIL_PASSWORD"),
		From:       envOr("FROM_EMAIL", "noreply@hotel.com"),
		AdminEmail: envOr("ADMIN_EMAIL", "admin@hotel.com"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
