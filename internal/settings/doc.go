// Package settings persists the station record between sessions.
//
// The store is a single flat JSON file of string values at a fixed
// path in the user's home directory, the same file earlier releases of
// the generator wrote. Two compatibility rules keep old and new files
// interchangeable:
//
//   - Missing keys take the built-in defaults, so a file written by an
//     older release loads cleanly.
//   - Unknown keys are kept verbatim across a Load/Save cycle, so a
//     file written by a newer release survives a round trip.
//
// A corrupt file never stops the application: [Store.Load] falls back
// to the defaults and returns an error matching [ErrCorrupt] for the
// caller to report.
package settings
