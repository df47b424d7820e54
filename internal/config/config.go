package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Port         string
	GinMode      string
	DefaultStore string // store scope applied when a request names none; empty means all stores
	AuditUser    string // acting user recorded on audit entries
}

// Load reads configuration from environment variables with a SHOPDASH_
// prefix (e.g. SHOPDASH_PORT), falling back to built-in defaults.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("SHOPDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8081")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("default_store", "")
	v.SetDefault("audit_user", "Sakshi Patil")

	return Config{
		Port:         v.GetString("port"),
		GinMode:      v.GetString("gin_mode"),
		DefaultStore: v.GetString("default_store"),
		AuditUser:    v.GetString("audit_user"),
	}
}

// Address returns the listen address for the HTTP server.
func (c Config) Address() string {
	return ":" + c.Port
}
