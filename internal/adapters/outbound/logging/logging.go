package logging

import "go.uber.org/zap"

// New builds the process logger. Debug mode switches to the human-oriented
// development encoder and drops the level to debug; otherwise only warnings
// and above reach the console, keeping scan output clean.
func New(debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
