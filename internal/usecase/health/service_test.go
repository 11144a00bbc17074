package health

import (
	"context"
	"errors"
	"testing"
)

type mockChecker struct {
	err error
}

func (m *mockChecker) HealthCheck(_ context.Context) error {
	return m.err
}

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockChecker{})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("Status = %q, want %q", report.Status, Healthy)
	}
	if report.Checks["classifier"] != CheckOK {
		t.Errorf("classifier check = %q, want %q", report.Checks["classifier"], CheckOK)
	}
}

func TestCheck_ClassifierDown(t *testing.T) {
	svc := New(&mockChecker{err: errors.New("connection refused")})

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Errorf("Status = %q, want %q", report.Status, Degraded)
	}
	if report.Checks["classifier"] != CheckError {
		t.Errorf("classifier check = %q, want %q", report.Checks["classifier"], CheckError)
	}
}

func TestCheck_NilChecker(t *testing.T) {
	svc := New(nil)

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("Status = %q, want %q", report.Status, Healthy)
	}
	if len(report.Checks) != 0 {
		t.Errorf("expected no checks, got %v", report.Checks)
	}
}
