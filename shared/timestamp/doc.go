// Package timestamp is the conversion core: it validates raw Unix timestamps
// and renders them as human-readable strings in a requested timezone under one
// of five display modes.
//
// Usage Examples:
//
//  1. Validating untrusted input:
//     ts := timestamp.ValidateTimestamp("1747510600") // *int64, nil when invalid
//
//  2. Formatting a validated timestamp:
//     out, err := timestamp.FormatTimestamp(1747510600, "Australia/Sydney", timestamp.ModeCompact)
//
//  3. Formatting with a fallback instead of an error:
//     out := timestamp.SafeFormatTimestamp(1747510600, "Australia/Sydney", timestamp.ModeDefault, "n/a")
//
// Display modes: "default", "date", "compact", "iso" and "relative". The first
// four are pure functions of (timestamp, timezone); "relative" also depends on
// the wall clock at call time.
//
// Timezone identifiers are standard IANA names ("UTC", "Asia/Jakarta",
// "America/New_York"). An unrecognized identifier is not an error: the package
// logs a warning and renders in UTC instead.
package timestamp
