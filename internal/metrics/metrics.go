// Package metrics holds the prometheus collectors shared by the API and the worker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "airport_http_request_duration_seconds",
		Help:    "Duration of HTTP requests by route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airport_orders_created_total",
		Help: "The total number of orders created",
	})
	TicketsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airport_tickets_issued_total",
		Help: "The total number of tickets written by order creation and updates",
	})
	SeatConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airport_seat_conflicts_total",
		Help: "The total number of ticket requests rejected because the seat was taken",
	})

	FlightsCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "airport_flights_cache_requests_total",
		Help: "Flight listing cache lookups by result",
	}, []string{"result"})

	AccountingRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "airport_accounting_runs_total",
		Help: "Accounting passes by outcome",
	}, []string{"outcome"})
	FlightsAccounted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airport_flights_accounted_total",
		Help: "The total number of flights whose hours were credited to crew",
	})
	CrewHoursCredited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airport_crew_hours_credited_total",
		Help: "Flying hours credited, summed over crew members",
	})
	AccountingFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "airport_accounting_failures_total",
		Help: "Flights that could not be accounted during a pass",
	})
)
