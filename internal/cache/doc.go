// Package cache persists lint results in SQLite so unchanged files are not
// re-parsed between runs.
//
// A cached entry is only returned when both the file content hash and the
// ruleset fingerprint match the values it was stored with.
package cache
