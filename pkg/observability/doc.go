/*
Package observability turns engine lifecycle hooks into Prometheus metrics.

Register the collector set on a Registerer, pass Hooks() to chime.New, and
expose the registry however the host prefers (the bundled HTTP adapter
mounts promhttp on /metrics).
*/
package observability
