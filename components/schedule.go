package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ActionHandle identifies a scheduled action. Handles grow monotonically and
// break ties between actions due at the same time.
type ActionHandle uint64

// ActionKind labels what a scheduled action does, for cancellation by kind.
type ActionKind int

const (
	ActionWindup ActionKind = iota
	ActionActivate
)

// DelayedAction is a continuation that runs once the clock reaches At.
type DelayedAction struct {
	Handle ActionHandle
	At     time.Duration
	Owner  donburi.Entity
	Kind   ActionKind
	Run    func()
}

// ScheduleData keeps pending actions sorted by (At, Handle).
type ScheduleData struct {
	Queue      []DelayedAction
	LastHandle ActionHandle
}

var Schedule = donburi.NewComponentType[ScheduleData]()
