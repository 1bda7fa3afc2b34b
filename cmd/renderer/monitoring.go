package main

import (
	"fmt"

	"depthtrace/render"

	"contrib.go.opencensus.io/exporter/stackdriver"
	cloudtrace "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"
	"github.com/golang/glog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// setupMonitoring exports render metrics through opencensus/Stackdriver and
// render spans through OpenTelemetry/Cloud Trace.  The returned function
// pushes whatever is buffered; call it once rendering is over.
func setupMonitoring(project string, traceRatio float64) (func(), error) {
	if err := render.RegisterMetrics(); err != nil {
		return nil, fmt.Errorf("while registering metrics views: %w", err)
	}

	metricsOpts := stackdriver.Options{
		MetricPrefix: "depthtrace",
		ProjectID:    project,
	}
	exporter, err := stackdriver.NewExporter(metricsOpts)
	if err != nil {
		return nil, fmt.Errorf("while creating Stackdriver metrics exporter: %w", err)
	}
	if err := exporter.StartMetricsExporter(); err != nil {
		return nil, fmt.Errorf("while starting Stackdriver metrics exporter: %w", err)
	}

	traceOpts := []cloudtrace.Option{}
	if project != "" {
		traceOpts = append(traceOpts, cloudtrace.WithProjectID(project))
	}
	_, traceShutdown, err := cloudtrace.InstallNewPipeline(traceOpts, sdktrace.WithSampler(sdktrace.TraceIDRatioBased(traceRatio)))
	if err != nil {
		exporter.StopMetricsExporter()
		return nil, fmt.Errorf("while installing Cloud Trace pipeline: %w", err)
	}

	return func() {
		glog.Infof("Flushing monitoring data")
		traceShutdown()
		exporter.StopMetricsExporter()
		exporter.Flush()
	}, nil
}
