// Package replay steps through a precomputed mst trace like a video player.
//
// Controller is the pure state machine:
//
//	         Play (cursor < last)
//	Stopped ─────────────────────▶ Playing
//	   ▲  ◀──────────────────────── │
//	   │   Pause, StepForward,       │ Tick: cursor++
//	   │   Reset, Load, Tick@last    ▼
//	   └──────────────────────── (cursor == last)
//
// It never re-runs the algorithm and never wraps past the last step. Speed
// is a multiplier in [MinSpeed, MaxSpeed] that only scales Interval.
//
// Player owns a Controller on a single goroutine and drives Tick from a
// clock timer; every command is serialized onto that goroutine. Interactive
// front ends that already have an event loop (Bubble Tea) drive the
// Controller directly instead.
package replay
