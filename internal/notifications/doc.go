// Package notifications signals run completion to the operator.
//
// Two channels exist: a terminal bell for attended runs (rung only on the
// success path, and only when stderr is a real terminal) and an optional ntfy
// push for unattended ones. Delivery failures are reported to the caller but
// are never a reason to fail a run.
package notifications
