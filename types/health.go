package types

// HealthStatus represents the health state of a component or the whole service.
type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "up"
	HealthStatusDown     HealthStatus = "down"
	HealthStatusDegraded HealthStatus = "degraded"
)

// HealthComponent is the probe result for one dependency.
type HealthComponent struct {
	Status  HealthStatus `json:"status"`
	Details string       `json:"details,omitempty"`
}

// HealthCheck aggregates component probes into an overall status.
type HealthCheck struct {
	Status        HealthStatus               `json:"status"`
	Components    map[string]HealthComponent `json:"components"`
	Version       string                     `json:"version"`
	UptimeSeconds int64                      `json:"uptimeSeconds"`
	Timestamp     string                     `json:"timestamp"`
}
