// Package defaults centralizes default timeout values used across the probe.
//
// Collecting timeouts in one place keeps the check's worst-case runtime easy
// to reason about: a monitoring supervisor typically kills plugins after a
// fixed interval, so every bounded operation here must fit well inside it.
package defaults
