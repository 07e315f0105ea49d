package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carry9637/cryptocurrency-dashboard/pkg/config"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/logger"
)

// setup loads the environment, configuration and logger shared by every
// command.
func setup() (*config.Config, *logrus.Logger, error) {
	if err := config.LoadDotEnv(); err != nil {
		// The .env file is optional.
		fmt.Printf("Note: .env file not loaded: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return cfg, log, nil
}
