package systems

import (
	"sort"
	"time"

	"github.com/automoto/fpsmelee/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreateSchedule(w donburi.World) *components.ScheduleData {
	entry, ok := components.Schedule.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Schedule))
	}
	return components.Schedule.Get(entry)
}

// Schedule queues run to execute once the clock reaches now+delay. Actions due
// at the same time run in the order they were scheduled.
func Schedule(w donburi.World, delay time.Duration, owner donburi.Entity, kind components.ActionKind, run func()) components.ActionHandle {
	if delay < 0 {
		delay = 0
	}
	s := getOrCreateSchedule(w)
	s.LastHandle++
	action := components.DelayedAction{
		Handle: s.LastHandle,
		At:     Now(w) + delay,
		Owner:  owner,
		Kind:   kind,
		Run:    run,
	}

	// Handles only grow, so inserting after every action due at or before At
	// keeps the (At, Handle) order.
	i := sort.Search(len(s.Queue), func(i int) bool { return s.Queue[i].At > action.At })
	s.Queue = append(s.Queue, components.DelayedAction{})
	copy(s.Queue[i+1:], s.Queue[i:])
	s.Queue[i] = action
	return action.Handle
}

// CancelAction removes a pending action. It reports whether it was pending.
func CancelAction(w donburi.World, handle components.ActionHandle) bool {
	s := getOrCreateSchedule(w)
	for i, a := range s.Queue {
		if a.Handle == handle {
			s.Queue = append(s.Queue[:i], s.Queue[i+1:]...)
			return true
		}
	}
	return false
}

// CancelOwned removes every pending action of the given kind owned by owner.
func CancelOwned(w donburi.World, owner donburi.Entity, kind components.ActionKind) int {
	s := getOrCreateSchedule(w)
	kept := s.Queue[:0]
	removed := 0
	for _, a := range s.Queue {
		if a.Owner == owner && a.Kind == kind {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	s.Queue = kept
	return removed
}

// PendingActions counts queued actions owned by owner.
func PendingActions(w donburi.World, owner donburi.Entity) int {
	n := 0
	for _, a := range getOrCreateSchedule(w).Queue {
		if a.Owner == owner {
			n++
		}
	}
	return n
}

// RunDueActions runs every action whose time has come and returns how many
// ran. Actions scheduled by a running action with zero delay run in the same
// pass.
func RunDueActions(w donburi.World) int {
	now := Now(w)
	ran := 0
	for {
		s := getOrCreateSchedule(w)
		if len(s.Queue) == 0 || s.Queue[0].At > now {
			return ran
		}
		action := s.Queue[0]
		s.Queue = s.Queue[1:]
		action.Run()
		ran++
	}
}

// UpdateScheduler runs due delayed actions (attack windups, draw activations).
func UpdateScheduler(e *ecs.ECS) {
	RunDueActions(e.World)
}
