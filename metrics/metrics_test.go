package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "get_pokemon_details",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "get_pokemon_details",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordUpstreamCall(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   string
		duration   float64
		status     int
		wantStatus string
	}{
		{
			name:       "completed call",
			endpoint:   "get",
			duration:   0.1,
			status:     200,
			wantStatus: "200",
		},
		{
			name:       "not found",
			endpoint:   "get",
			duration:   0.1,
			status:     404,
			wantStatus: "404",
		},
		{
			name:       "transport failure has no status",
			endpoint:   "list",
			duration:   0.0,
			status:     0,
			wantStatus: "none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordUpstreamCall(tt.endpoint, tt.duration, tt.status)

			counter, err := UpstreamRequestsTotal.GetMetricWithLabelValues(tt.endpoint, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordUpstreamError(t *testing.T) {
	initial := getCounterValue(t, UpstreamErrors.WithLabelValues("index", "transport"))

	RecordUpstreamError("index", "transport")

	if got := getCounterValue(t, UpstreamErrors.WithLabelValues("index", "transport")); got != initial+1 {
		t.Errorf("expected error counter %v, got %v", initial+1, got)
	}
}

func TestMetricsRegistered(t *testing.T) {
	// Verify all metrics are registered by checking they can be collected
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		UpstreamRequestsTotal,
		UpstreamLatency,
		UpstreamErrors,
		PanicsRecovered,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "pokeapi_mcp" {
		t.Errorf("expected namespace 'pokeapi_mcp', got '%s'", Namespace)
	}
}

// Helper to get counter value
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}
