// Package attention is the pure analysis engine behind cadence: given an
// immutable snapshot of a day's scheduled items and the user's attention
// preferences, it derives budget violations, context-switch costs,
// peak-hours alignment, scattering, ranked optimization suggestions, and a
// composite health score.
//
// Every function here is a deterministic transform of its arguments. The
// engine performs no I/O, reads no ambient state, and is safe to call
// concurrently on independent snapshots. Malformed input degrades (clamped
// limits, disabled analyses) rather than erroring: the worst case is a
// sparse report, never a failure.
package attention
