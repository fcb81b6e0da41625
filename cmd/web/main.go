package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/booking-reports/pkg/adapters"
	"github.com/de-tools/booking-reports/pkg/server"
	"github.com/de-tools/booking-reports/pkg/services/config"
	"github.com/de-tools/booking-reports/pkg/services/mail"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	profilesPath string
	profileName  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the email service for the booking system",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVar(&profilesPath, "profiles", "",
		"Path to an SMTP profiles file (INI); omit to configure from the environment")
	rootCmd.Flags().StringVar(&profileName, "profile", "default",
		"Profile name to use from the profiles file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	smtpProfile := config.SMTPFromEnv()
	if profilesPath != "" {
		registry, err := config.NewRegistry(profilesPath)
		if err != nil {
			return fmt.Errorf("failed to load SMTP profiles: %w", err)
		}

		profiles, _ := registry.GetProfiles(ctx)
		logger.Info().Msgf("SMTP profiles found at `%s`: %v", profilesPath, profiles)

		smtpProfile, err = registry.GetProfile(ctx, profileName)
		if err != nil {
			return fmt.Errorf("failed to resolve SMTP profile %q: %w", profileName, err)
		}
	}

	smtpCfg := adapters.MapSMTPProfileToMailConfig(smtpProfile)
	sender := mail.NewSender(smtpCfg)

	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = "0.0.0.0"
	}
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8001"
	}
	addr := net.JoinHostPort(host, port)

	logger.Info().Str("admin_email", smtpCfg.AdminEmail).Str("from", smtpCfg.From).
		Msg("email service configured")

	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Sender:     sender,
			AdminEmail: smtpCfg.AdminEmail,
		},
	})

	return api.Start()
}
