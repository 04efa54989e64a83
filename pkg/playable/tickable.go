package playable

import "time"

// Tickable is an interface that allows a periodic tick to update the game state
// A game uses ticks to pace automated sequences (the initial deal, the
// dealer's auto-play) so a display can render the intermediate states.
type Tickable interface {
	// Interval is how long the wait between each tick should be
	Interval() time.Duration

	// Tick will be called periodically
	// Return true if the session should send updated state to the client
	Tick() (bool, error)

	// Busy returns true while an automated sequence is in progress.
	// Player actions are rejected while the game is busy.
	Busy() bool
}
