package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/quizarena/internal/pkg/models"
)

// InitNewRelic starts the agent, or returns nil when it is disabled
func InitNewRelic(configs *models.Config) (*newrelic.Application, error) {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		return nil, nil
	}

	return newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
}
