// Package metric provides Prometheus metrics for the RDF metadata loader.
//
// MetricsRegistry owns a private prometheus.Registry with the core loader
// metrics (Metrics) and the Go runtime collectors registered. Components with
// metrics of their own, such as the type cache, register them through the
// MetricsRegistrar methods under an owner name:
//
//	registry := metric.NewMetricsRegistry()
//	driver := metadata.NewXMLDriver(dirs, metadata.WithMetrics(registry.CoreMetrics()))
//
// Core metrics:
//
//	rdfmeta_driver_resolutions_total{result}           found | not_found | error
//	rdfmeta_driver_resolution_duration_seconds{result}
//	rdfmeta_driver_fields_loaded_total{kind}           property | collection
//	rdfmeta_driver_children_skipped_total
//
// Registering the same owner/name pair twice returns an invalid-class error.
package metric
