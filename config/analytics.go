package config

// AnalyticsConfig contains page-visit analytics configuration.
type AnalyticsConfig struct {
	// Enabled toggles the beacon endpoint and background recorder.
	Enabled bool `env:"ANALYTICS_ENABLED" envDefault:"true"`

	// QueueSize bounds the in-memory beacon queue; beacons beyond it are dropped.
	QueueSize int `env:"ANALYTICS_QUEUE_SIZE" envDefault:"256"`
}

// Sanitize applies guardrails to analytics configuration values.
func (a *AnalyticsConfig) Sanitize() {
	const defaultQueueSize = 256
	if a.QueueSize <= 0 {
		a.QueueSize = defaultQueueSize
	}
}
