package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/event"
)

var (
	MongoConnectionsInUse = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mongo_connections_in_use",
		Help: "Connections currently checked out of the driver pool",
	})

	MongoConnectionsOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mongo_connections_open",
		Help: "Connections currently open in the driver pool",
	})
)

// MongoPoolMonitor mirrors driver pool events into prometheus gauges.
func MongoPoolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case event.ConnectionCreated:
				MongoConnectionsOpen.Inc()
			case event.ConnectionClosed:
				MongoConnectionsOpen.Dec()
			case event.GetSucceeded:
				MongoConnectionsInUse.Inc()
			case event.ConnectionReturned:
				MongoConnectionsInUse.Dec()
			}
		},
	}
}
