// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection for bytering pipelines.
//
// Provides concurrent-safe counters with snapshot export and a probe
// registry that the demo harness uses to expose ring occupancy and
// transfer statistics without coupling the core to any reporter.
package control
