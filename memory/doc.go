// Package memory provides minimal task transcript persistence.
//
// Persistence model:
//   - Only the task text and final result are stored per run. Intermediate
//     tool traffic lives in the audit sink, not here.
//   - Keeping initial storage simple for now; to be extended.
package memory
