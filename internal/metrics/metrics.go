package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Mutations counts data store writes by entity and verb.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rental_store_mutations_total",
		Help: "Number of data store mutations, by entity and verb.",
	}, []string{"entity", "verb"})

	// PersistFailures counts absorbed persistence errors. A rising counter
	// with a flat mutation counter means memory and storage are diverging.
	PersistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rental_store_persist_failures_total",
		Help: "Number of failed state writes to the storage backend.",
	})

	// Logins counts login attempts by outcome.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rental_logins_total",
		Help: "Number of login attempts, by outcome.",
	}, []string{"outcome"})

	// HTTPRequests counts handled requests by route and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rental_http_requests_total",
		Help: "Number of HTTP requests, by route and status class.",
	}, []string{"route", "status"})
)
