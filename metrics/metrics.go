package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/emplacekit/emplace"
	"github.com/emplacekit/emplace/errors"
)

// Prometheus metrics for slot lifecycle events.
var (
	slotsReserved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emplace_slots_reserved_total",
		Help: "Total slots reserved by driver calls",
	})

	slotsInitialized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emplace_slots_initialized_total",
		Help: "Total slots whose evidence passed verification",
	})

	slotsReleased = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emplace_slots_released_total",
		Help: "Total evidence handles released into owned values or scoped returns",
	})

	slotFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emplace_slot_failures_total",
		Help: "Total failed initialization attempts by reason",
	}, []string{"reason"})
)

// Failure reasons for the emplace_slot_failures_total counter.
const (
	ReasonInitializer       = "initializer"
	ReasonAllocation        = "allocation"
	ReasonProtocolViolation = "protocol_violation"
)

// Collector translates slot lifecycle events into Prometheus counters.
// Register it with emplace.Subscribe:
//
//	emplace.Subscribe(metrics.NewCollector())
type Collector struct{}

func NewCollector() *Collector {
	return &Collector{}
}

// OnSlotEvent implements emplace.Observer.
func (c *Collector) OnSlotEvent(ev emplace.Event) {
	switch ev.Type {
	case emplace.EventReserved:
		slotsReserved.Inc()
	case emplace.EventInitialized:
		slotsInitialized.Inc()
	case emplace.EventReleased:
		slotsReleased.Inc()
	case emplace.EventFailed:
		slotFailures.WithLabelValues(failureReason(ev.Err)).Inc()
	}
}

func failureReason(err error) string {
	switch {
	case errors.IsProtocolViolation(err):
		return ReasonProtocolViolation
	case errors.IsAllocation(err):
		return ReasonAllocation
	default:
		return ReasonInitializer
	}
}
