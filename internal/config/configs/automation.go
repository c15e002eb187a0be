package configs

import "time"

// Automation configures the rule runner and its in-process trigger.
type Automation struct {
	// SchedulerEnabled starts the cron trigger inside the serve command.
	// When disabled an external trigger is expected to call the run
	// command or the HTTP run endpoint.
	SchedulerEnabled bool   `env:"SCHEDULER_ENABLED" envDefault:"true"`
	Schedule         string `env:"SCHEDULE" envDefault:"@every 5m"`
	// RescheduleInterval is added to the pass start time after a rule has
	// been processed successfully.
	RescheduleInterval time.Duration `env:"RESCHEDULE_INTERVAL" envDefault:"5m"`
	// PassTimeout bounds a single pass.
	PassTimeout      time.Duration `env:"PASS_TIMEOUT" envDefault:"4m"`
	RuleConcurrency  int           `env:"RULE_CONCURRENCY" envDefault:"8"`
	AdSetConcurrency int           `env:"ADSET_CONCURRENCY" envDefault:"4"`
	MetricWindow     time.Duration `env:"METRIC_WINDOW" envDefault:"24h"`
}
