package routedir

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/routedir-dev/routedir/pkg/source"
)

func TestMetricsRecorded(t *testing.T) {
	dir := writeRoutes(t, map[string]string{
		"middleware.ts":  "",
		"users.route.ts": "",
		"ghost.route.ts": "",
	})

	reg := source.NewRegistry()
	reg.AddFunc("middleware.ts", "default", handlerFunc())
	reg.AddFunc("users.route.ts", http.MethodGet, handlerFunc())
	reg.AddFunc("ghost.route.ts", "helper", handlerFunc())

	promReg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(promReg), WithNamespace("test"))

	if _, err := CreateRouter(context.Background(), &recordingAdapter{}, Options{
		RoutesDir: dir,
		Source:    reg,
		Metrics:   m,
	}); err != nil {
		t.Fatalf("CreateRouter() error: %v", err)
	}

	if got := testutil.ToFloat64(m.descriptors.WithLabelValues("route")); got != 2 {
		t.Errorf("descriptors{route} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.descriptors.WithLabelValues("middleware")); got != 1 {
		t.Errorf("descriptors{middleware} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.registrations.WithLabelValues("route", "get")); got != 1 {
		t.Errorf("registrations{route,get} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.registrations.WithLabelValues("middleware", "use")); got != 1 {
		t.Errorf("registrations{middleware,use} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.skipped.WithLabelValues("route", "no_callable")); got != 1 {
		t.Errorf("skipped{route,no_callable} = %v, want 1", got)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.recordDescriptor("route")
	m.recordRegistration("route", "get")
	m.recordSkip("route", "no_callable")
	m.observeRun(0)
}
