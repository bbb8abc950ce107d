package alert

import (
	"context"
	"fmt"
	"time"

	"cambio/internal/adapters"
	"cambio/internal/domain"

	"github.com/sirupsen/logrus"
)

// EvaluateAlerts stamps notified_at on every watching alert whose condition
// holds for the current sell rate and returns how many were stamped. Stamped
// alerts are no longer watching.
func EvaluateAlerts(ctx context.Context, execID string, repo adapters.AlertRepository, rates domain.RateTable, now time.Time) (int, error) {
	// STEP 1: loading active alerts which were not notified yet
	watching, err := repo.ListWatching(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get watching alerts: %w", err)
	}

	if len(watching) == 0 {
		logrus.Debugf("No alerts to evaluate this time; execID: %s", execID)
		return 0, nil
	}

	// STEP 2: comparing each target against the sell rate
	current := rates.Sell
	reached := make([]string, 0, len(watching))
	for _, a := range watching {
		if a.Reached(current) {
			reached = append(reached, a.ID)
		}
	}

	if len(reached) == 0 {
		logrus.Infof("%d alerts evaluated, none reached at %s; execID: %s", len(watching), current, execID)
		return 0, nil
	}

	// STEP 3: stamping the reached ones in one statement
	if err = repo.MarkNotified(ctx, reached, now); err != nil {
		return 0, fmt.Errorf("failed to mark alerts notified: %w", err)
	}

	logrus.Infof("%d of %d alerts reached at %s; execID: %s", len(reached), len(watching), current, execID)
	return len(reached), nil
}
