// Package errors provides structured error handling for the Saltwind engine.
//
// Errors carry a Code, a human-readable message, an optional wrapped cause,
// and optional metadata. Components classify failures by code so callers can
// branch without string matching:
//
//	save, err := repo.Load(ctx, slot)
//	if errors.IsNotFound(err) {
//		// no save in that slot; report and continue
//	}
//
// Player-facing rejections (bad equip, unprepared spell, out-of-range target)
// are NOT errors. Those are ordinary outcomes of play and travel as message
// strings on structured results; this package is for programming and
// infrastructure failures only.
package errors
