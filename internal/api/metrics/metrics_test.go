package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/realto/plots-api/internal/core/domain"
)

func TestSessionObserver(t *testing.T) {
	selected := SessionTransitionsTotal.WithLabelValues("selected", "client")
	cleared := SessionTransitionsTotal.WithLabelValues("cleared", "none")
	beforeSelected := testutil.ToFloat64(selected)
	beforeCleared := testutil.ToFloat64(cleared)

	var obs SessionObserver
	obs.SessionChanged(domain.SessionEvent{
		Kind:    domain.SessionSelected,
		Session: &domain.Session{Role: domain.RoleClient},
	})
	obs.SessionChanged(domain.SessionEvent{Kind: domain.SessionCleared})

	if got := testutil.ToFloat64(selected) - beforeSelected; got != 1 {
		t.Errorf("expected one selected transition, got %v", got)
	}
	if got := testutil.ToFloat64(cleared) - beforeCleared; got != 1 {
		t.Errorf("expected one cleared transition, got %v", got)
	}
}
