// Package metrics defines and registers the custom Prometheus metrics of the
// plots API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/realto/plots-api/internal/core/domain"
)

const namespace = "realto"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionTransitionsTotal counts Session lifecycle transitions.
// Labels:
//   - event: "selected", "signed_in" or "cleared"
//   - role: the role of the new Session, "none" after a logout
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of Session transitions, by event and role.",
	},
	[]string{"event", "role"},
)

// ── Collection metrics ────────────────────────────────────────────────────────

// CollectionNoticesTotal counts storage problems reported to users as notices.
// Label:
//   - collection: "wishlist" or "savedLocations"
var CollectionNoticesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collection_notices_total",
		Help:      "Total number of collection responses that carried a storage notice.",
	},
	[]string{"collection"},
)

// ── Visit metrics ─────────────────────────────────────────────────────────────

// SiteVisitsTotal counts site visit lifecycle actions.
// Label:
//   - action: "booked", "approved", "completed", "cancelled", "feedback"
var SiteVisitsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "site_visits_total",
		Help:      "Total number of site visit actions.",
	},
	[]string{"action"},
)

// SellRequestsTotal counts submitted sell requests by urgency.
var SellRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sell_requests_total",
		Help:      "Total number of sell requests submitted, by urgency.",
	},
	[]string{"urgency"},
)

// AttendanceTotal counts attendance attempts.
// Label:
//   - result: "marked", "outside_site", "duplicate"
var AttendanceTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attendance_total",
		Help:      "Total number of attendance attempts, by result.",
	},
	[]string{"result"},
)

// SessionObserver feeds Session transitions into SessionTransitionsTotal.
type SessionObserver struct{}

func (SessionObserver) SessionChanged(ev domain.SessionEvent) {
	role := "none"
	if ev.Session != nil {
		role = ev.Session.Role.String()
	}
	SessionTransitionsTotal.WithLabelValues(string(ev.Kind), role).Inc()
}
