package main

import (
	"flag"
	"os"

	"quizhub/config"
	"quizhub/logging"
	"quizhub/migrations"

	"github.com/rs/zerolog"
)

func main() {
	down := flag.Bool("down", false, "roll back all migrations instead of applying them")
	flag.Parse()

	cfg, log := loadConfig(".env")

	run, action := migrationStep(*down)
	if err := run(cfg.DSN()); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
	log.Info().Msgf("database migrations %s", action)
}

func loadConfig(dotenvPath string) (*config.Config, zerolog.Logger) {
	dotenvErr := config.LoadDotEnv(dotenvPath)
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogPretty)
	if dotenvErr != nil {
		log.Warn().Err(dotenvErr).Str("path", dotenvPath).Msg("failed to load .env")
	}
	return cfg, log
}

// migrationStep picks the migration direction and the verb used to report it.
func migrationStep(down bool) (func(databaseURL string) error, string) {
	if down {
		return migrations.Down, "rolled back"
	}
	return migrations.Up, "applied"
}
