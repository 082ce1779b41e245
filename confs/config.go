package confs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds all runtime settings, sourced from the process environment.
type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	Port        string `envconfig:"PORT" default:"3000"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	CORSOrigin  string `envconfig:"CORS_ORIGIN" default:"http://localhost:5173"`
}

// LoadConfig loads environment variables from a .env file if present
// and resolves them into a Config.
func LoadConfig() (Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("could not load .env")
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
