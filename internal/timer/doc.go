// Package timer implements the study countdown timer.
//
// A Countdown holds a configured duration and the seconds remaining. It is a
// plain state machine driven by Tick; Run drives Tick from a time.Ticker
// until its context is cancelled. When the countdown reaches zero it stops
// itself and emits a "timer.finished" event.
package timer
