package adapters

import (
	"github.com/de-tools/booking-reports/pkg/services/config"
	"github.com/de-tools/booking-reports/pkg/services/mail"
)

func MapSMTPProfileToMailConfig(profile *config.SMTPProfile) mail.SMTPConfig {
	return mail.SMTPConfig{
		Host:       profile.Host,
		Port:       profile.Port,
		Username:   profile.Username,
		Password:   profile.Password,
		From:       profile.From,
		AdminEmail: profile.AdminEmail,
	}
}
