// Package health aggregates upstream availability checks.
package health

import "context"

// Pinger checks one upstream service's availability.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

// Service coordinates health checks across the upstream services.
type Service struct {
	search    Pinger
	workspace Pinger
	profiles  Pinger
}

// New creates a Service. Nil checkers are skipped.
func New(search, workspace, profiles Pinger) *Service {
	return &Service{search: search, workspace: workspace, profiles: profiles}
}

// Check runs health checks against all configured components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	components := []struct {
		name   string
		pinger Pinger
	}{
		{"search", s.search},
		{"workspace", s.workspace},
		{"user_profile", s.profiles},
	}

	failed := 0
	total := 0
	for _, c := range components {
		if c.pinger == nil {
			continue
		}
		total++
		if err := c.pinger.HealthCheck(ctx); err != nil {
			checks[c.name] = CheckError
			failed++
		} else {
			checks[c.name] = CheckOK
		}
	}

	status := Healthy
	switch {
	case total > 0 && failed == total:
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}
