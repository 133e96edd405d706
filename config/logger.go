package config

import (
	"go.uber.org/zap"
)

// LogConfig ...
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// NewLogger creates a json production logger, or a console logger in development
func NewLogger(conf LogConfig) *zap.Logger {
	var zapConf zap.Config
	if conf.Development {
		zapConf = zap.NewDevelopmentConfig()
	} else {
		zapConf = zap.NewProductionConfig()
	}

	level := zap.NewAtomicLevel()
	if conf.Level != "" {
		if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
			panic(err)
		}
	}
	zapConf.Level = level

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
