package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `koanf:"metrics_enabled"`
	Port         string `koanf:"metrics_port"`
	OtlpEndpoint string `koanf:"otel_endpoint"`
	OtlpInsecure bool   `koanf:"otel_insecure"`
	ServiceName  string `koanf:"service_name"`
}

func defaultMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      true,
		Port:         defaultMetricsPort,
		OtlpInsecure: true,
		ServiceName:  defaultServiceName,
	}
}
