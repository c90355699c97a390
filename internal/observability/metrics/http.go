// Package metrics defines the standardised metric names and tag shapes the
// service emits, so dashboards do not depend on call-site naming choices.
package metrics

import (
	"strconv"
	"time"

	"github.com/hr3-suite/hr3-admin/internal/observability/statsd"
)

// Beacon result constants for metric tagging.
const (
	BeaconAccepted = "accepted"
	BeaconDropped  = "dropped"
	BeaconRejected = "rejected"
)

// RequestMetric captures details about one handled HTTP request.
type RequestMetric struct {
	Method   string
	Status   int
	Duration time.Duration
}

// EmitHTTPRequest emits count and timing metrics for a handled request.
// Paths are deliberately not tagged; ids in the path would explode cardinality.
func EmitHTTPRequest(sink statsd.Sink, in RequestMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"method": in.Method,
		"status": strconv.Itoa(in.Status),
	}

	sink.Count("http.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("http.request.duration", in.Duration, CloneTags(tags))
	}
}

// EmitBeacon counts one analytics beacon by outcome.
func EmitBeacon(sink statsd.Sink, result string) {
	if sink == nil {
		return
	}
	sink.Count("analytics.beacon", 1, map[string]string{"result": result})
}

// EmitQueueDepth records the current analytics queue depth.
func EmitQueueDepth(sink statsd.Sink, depth int) {
	if sink == nil {
		return
	}
	sink.Gauge("analytics.queue_depth", float64(depth), nil)
}

// CloneTags creates a shallow copy of a tag map, filtering out empty keys.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		if k == "" {
			continue
		}
		out[k] = v
	}
	return out
}
