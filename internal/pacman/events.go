package pacman

// Event is a discrete gameplay cue. The core raises these for an optional
// collaborator (sound playback, typically); it never manages audio itself.
type Event int

const (
	EventRoundStarted Event = iota
	EventPelletEaten
	EventPowerPellet
	EventGhostEaten
	EventPlayerDied
)

func (e Event) String() string {
	switch e {
	case EventRoundStarted:
		return "round_started"
	case EventPelletEaten:
		return "pellet_eaten"
	case EventPowerPellet:
		return "power_pellet"
	case EventGhostEaten:
		return "ghost_eaten"
	case EventPlayerDied:
		return "player_died"
	default:
		return "unknown"
	}
}

// EventSink consumes gameplay cues. Implementations must not call back into
// the game.
type EventSink interface {
	OnEvent(Event)
}
