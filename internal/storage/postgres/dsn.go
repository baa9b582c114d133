package postgres

import (
	"fmt"

	"github.com/AwwwRyan/coverletter-gen/config"
)

// DSN prefers DATABASE_URL and otherwise assembles a keyword/value DSN from the DB_* parts.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)
}
