package observability

import (
	"github.com/smallbiznis/snackcat/internal/config"
)

// Config is the observability slice of the application config.
type Config struct {
	ServiceName  string
	Environment  string
	Version      string
	LogLevel     string
	LogFormat    string
	OTLPEndpoint string
	OTLPProtocol string
}

func LoadConfig(cfg config.Config) Config {
	return Config{
		ServiceName:  cfg.AppName,
		Environment:  cfg.Environment,
		Version:      cfg.AppVersion,
		LogLevel:     cfg.LogLevel,
		LogFormat:    cfg.LogFormat,
		OTLPEndpoint: cfg.OTLPEndpoint,
		OTLPProtocol: cfg.OTLPProtocol,
	}
}

func (c Config) Debug() bool {
	return c.Environment != "production"
}
