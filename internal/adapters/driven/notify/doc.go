// Package notify provides driven.Notifier implementations.
//
//   - Terminal: prints replay outcomes for the user, styled when attached to a TTY
//   - Metrics: counts replay outcomes in Prometheus
//   - Multi: fans one notification out to several notifiers
package notify
