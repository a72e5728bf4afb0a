package internal

import (
	"go.uber.org/zap"
)

// NewLogger returns a new logger for the given environment.
func NewLogger(environment string) (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if environment == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}
