package config

// GameStateID is the session phase mirrored to spectators.
type GameStateID int

const (
	StatePlaying GameStateID = iota
	StatePaused
	StateDefeated
)

func (s GameStateID) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateDefeated:
		return "defeated"
	}
	return "unknown"
}
