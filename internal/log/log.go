package log

import "go.uber.org/zap"

// New builds the production logger used across the service. The caller owns
// the Sync call on shutdown.
func New() (*zap.SugaredLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
