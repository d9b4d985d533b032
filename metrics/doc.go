// Package metrics exports slot lifecycle counters to Prometheus.
//
// The Collector implements emplace.Observer and maps lifecycle events
// onto four counters registered with the default registry:
//
//	emplace_slots_reserved_total     slots reserved by driver calls
//	emplace_slots_initialized_total  evidence that passed verification
//	emplace_slots_released_total     evidence released into owned values
//	emplace_slot_failures_total      failures, labeled by reason
//
// Failure reasons distinguish the error taxonomy: "initializer" for an
// initializer's own error, "allocation" for allocator failures, and
// "protocol_violation" for handshake violations.
//
// Wire it up once at startup:
//
//	emplace.Subscribe(metrics.NewCollector())
package metrics
