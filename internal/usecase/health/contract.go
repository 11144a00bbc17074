package health

import "context"

// ClassifierChecker verifies that the classifier API is reachable.
type ClassifierChecker interface {
	HealthCheck(ctx context.Context) error
}
