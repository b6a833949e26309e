// Package harness runs conformance scenarios against the search
// engine.
//
// A scenario is a YAML file naming a puzzle definition (inline or by
// path), an exploration order, and expectations over the emitted
// solution sequence. Golden snapshots pin the exact emission trace
// (boards and counters), so any change to orientation order, scan
// order, or frontier policy shows up as a diff.
package harness
