package logger

import (
	"go.uber.org/zap"
)

// Init builds the global zap logger for the given environment name and
// installs it via zap.ReplaceGlobals.
func Init(environment string) error {
	var (
		logger *zap.Logger
		err    error
	)

	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)

	return nil
}
