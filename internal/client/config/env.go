package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays cfg with values from PICSHARE_* environment variables
// (see the env tags on Config). Variables that are not set leave the
// current values untouched.
func parseEnv(cfg *Config) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}
