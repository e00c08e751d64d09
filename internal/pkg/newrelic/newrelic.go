package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/triptrack/internal/pkg/logger"
	"github.com/piresc/triptrack/internal/pkg/models"
)

// InitNewRelic initializes New Relic application based on configuration.
// It returns nil when the agent is disabled or fails to start.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	logger.Info("Initializing New Relic",
		logger.String("app_name", configs.NewRelic.AppName),
		logger.Bool("forward_logs", configs.NewRelic.ForwardLogs))

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	return nrApp
}
