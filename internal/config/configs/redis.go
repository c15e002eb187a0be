package configs

import "time"

// Redis configures the optional pass lock. With an empty Addr the runner
// does not coordinate with other instances.
type Redis struct {
	Addr     string        `env:"ADDRESS"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	LockKey  string        `env:"LOCK_KEY" envDefault:"kwai-ads:automation:pass"`
	LockTTL  time.Duration `env:"LOCK_TTL" envDefault:"5m"`
}
