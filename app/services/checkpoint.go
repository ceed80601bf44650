package services

import (
	"strconv"
	"time"

	"github.com/maytakahashi/pct-cup/app/models"
)

// NextCheckpoint returns the checkpoint whose end date is the earliest one
// at or after now, ties broken by smallest number. If every checkpoint has
// passed it returns the one with the largest number. Nil when there are no
// checkpoints at all. Pure function of (now, checkpoint list) so the
// "current checkpoint" is re-derived on every request, never cached.
func NextCheckpoint(now time.Time, cps []models.Checkpoint) *models.Checkpoint {
	var next *models.Checkpoint
	for i := range cps {
		cp := &cps[i]
		if cp.EndDate.Before(now) {
			continue
		}
		if next == nil || cp.EndDate.Before(next.EndDate) ||
			(cp.EndDate.Equal(next.EndDate) && cp.Number < next.Number) {
			next = cp
		}
	}
	if next != nil {
		return next
	}

	// All passed: fall back to the last checkpoint.
	var last *models.Checkpoint
	for i := range cps {
		cp := &cps[i]
		if last == nil || cp.Number > last.Number {
			last = cp
		}
	}
	return last
}

// FindCheckpoint looks up a checkpoint by its number.
func FindCheckpoint(number int, cps []models.Checkpoint) *models.Checkpoint {
	for i := range cps {
		if cps[i].Number == number {
			return &cps[i]
		}
	}
	return nil
}

// ResolveCheckpointNumber turns a raw query value into a checkpoint number.
// A positive integer is taken as-is (the caller 404s if it doesn't exist);
// anything else falls back to the next-checkpoint rule. Returns 0 when no
// checkpoints exist.
func ResolveCheckpointNumber(raw string, now time.Time, cps []models.Checkpoint) int {
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return n
	}
	if next := NextCheckpoint(now, cps); next != nil {
		return next.Number
	}
	return 0
}

// EndOfDay widens a checkpoint end date to the last instant of its calendar
// day, so attendance recorded at midnight on the deadline day still counts.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// CheckpointPassed reports whether the checkpoint deadline is behind now,
// end-of-day inclusive.
func CheckpointPassed(now time.Time, cp *models.Checkpoint) bool {
	return now.After(EndOfDay(cp.EndDate))
}
