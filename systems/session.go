package systems

import (
	"fmt"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// query is satisfied by component types and tags.
type query interface {
	Each(w donburi.World, fn func(*donburi.Entry))
}

// single returns the only entry matching q. A missing entry is reported as
// !ok and the caller skips its work for this tick. More than one entry
// panics when strict singletons are enabled and otherwise yields the first.
func single(w donburi.World, q query) (*donburi.Entry, bool) {
	var first *donburi.Entry
	count := 0
	q.Each(w, func(e *donburi.Entry) {
		if first == nil {
			first = e
		}
		count++
	})
	if count > 1 && cfg.Debug.StrictSingletons {
		panic(fmt.Sprintf("singleton query matched %d entries", count))
	}
	return first, first != nil
}

func getSession(ecs *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := single(ecs.World, components.Session)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// AdvanceClock records the delta of the coming tick. The host calls it
// before every ecs.Update.
func AdvanceClock(ecs *ecs.ECS, dt float64) {
	session, ok := getSession(ecs)
	if !ok {
		return
	}
	session.Delta = dt
	session.Elapsed += dt
	session.Tick++
}
