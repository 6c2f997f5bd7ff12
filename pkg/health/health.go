// Package health aggregates component health checks for the /Health
// endpoint. The overall status is the worst individual result, ordered
// Healthy < Degraded < Unhealthy.
package health

import (
	"context"
	"time"
)

// Status is the health of a single component or of the whole service.
type Status int

const (
	StatusHealthy Status = iota
	StatusDegraded
	StatusUnhealthy
)

func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "Healthy"
	case StatusDegraded:
		return "Degraded"
	case StatusUnhealthy:
		return "Unhealthy"
	}
	return "Unhealthy"
}

// MarshalJSON encodes the status by name.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Check is a named health probe.
type Check interface {
	Name() string
	Check(ctx context.Context) Status
}

// CheckFunc adapts a function to the Check interface.
type CheckFunc struct {
	CheckName string
	Func      func(ctx context.Context) Status
}

func (c CheckFunc) Name() string {
	return c.CheckName
}

func (c CheckFunc) Check(ctx context.Context) Status {
	return c.Func(ctx)
}

// CheckResult is the outcome of one probe.
type CheckResult struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// Report is the aggregated outcome of all probes.
type Report struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks"`
}

// Service runs the registered checks.
type Service struct {
	checks []Check
}

// NewService creates a health service over the given checks.
func NewService(checks ...Check) *Service {
	return &Service{checks: checks}
}

// Check runs every probe and aggregates. An empty check set is Healthy.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{
		Status: StatusHealthy,
		Checks: make([]CheckResult, 0, len(s.checks)),
	}

	for _, check := range s.checks {
		status := check.Check(ctx)
		report.Checks = append(report.Checks, CheckResult{
			Name:   check.Name(),
			Status: status,
		})
		if status > report.Status {
			report.Status = status
		}
	}
	return report
}

// Pinger is the slice of a connection pool the database check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 5 * time.Second

// NewDatabaseCheck probes database connectivity.
func NewDatabaseCheck(name string, db Pinger) Check {
	return CheckFunc{
		CheckName: name,
		Func: func(ctx context.Context) Status {
			ctx, cancel := context.WithTimeout(ctx, pingTimeout)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				return StatusUnhealthy
			}
			return StatusHealthy
		},
	}
}
