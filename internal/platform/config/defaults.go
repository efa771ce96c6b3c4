package config

const (
	defaultServerPort = 5000

	defaultRateLimitBurst = 20

	defaultDBMaxOpenConns = 10
	defaultDBMaxIdleConns = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
// Every key that should be reachable from an APP_* variable must appear here
// or in base.yaml.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"server.readiness_timeout":               "2s",
		"server.rate_limit.requests_per_second": 0,
		"server.rate_limit.burst":               defaultRateLimitBurst,

		"log.level":  "info",
		"log.format": "json",

		"database.driver":            DriverMySQL,
		"database.user":              "",
		"database.password":          "",
		"database.host":              "localhost",
		"database.name":              "tasks",
		"database.params":            "",
		"database.max_open_conns":    defaultDBMaxOpenConns,
		"database.max_idle_conns":    defaultDBMaxIdleConns,
		"database.conn_max_lifetime": "5m",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "task-service",
	}
}
