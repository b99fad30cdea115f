// Package metrics defines all custom Prometheus metrics for the clinic API.
// It is the single source of truth for metric names, labels, and help
// strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts bearer tokens issued at login and registration.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of JWT bearer tokens issued.",
	},
)

// PolicyDenialsTotal counts requests rejected by the access policy.
// Label:
//   - reason: "unauthenticated" (401) or "forbidden" (403)
var PolicyDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_denials_total",
		Help:      "Total number of requests denied by the access policy.",
	},
	[]string{"reason"},
)

// PatientsCreatedTotal counts newly registered patients.
var PatientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patients_created_total",
		Help:      "Total number of patient records created.",
	},
)

// QRMailsTotal counts QR email deliveries by outcome.
// Label:
//   - result: "sent" or "error"
var QRMailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "qr_mails_total",
		Help:      "Total number of QR email deliveries, by result.",
	},
	[]string{"result"},
)
