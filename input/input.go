// Package input holds the shared key-state map written by the host's
// keyboard adapter each frame and read by the player's per-tick behavior.
// It deliberately has no Ebiten dependency so game logic stays testable.
package input

// Key is a logical control, mapped from physical keys by the host adapter.
type Key string

const (
	Left  Key = "left"
	Right Key = "right"
	Up    Key = "up"
	Down  Key = "down"
	Fire  Key = "fire"
)

// Action is the recorded state of a key.
type Action int

const (
	Released Action = iota
	Pressed
)

// State maps keys to their last recorded action. The zero value for an
// unseen key is Released.
type State struct {
	keys map[Key]Action
}

func NewState() *State {
	return &State{keys: make(map[Key]Action)}
}

// Set records the action for k.
func (s *State) Set(k Key, a Action) {
	s.keys[k] = a
}

// Get returns the last recorded action for k, Released when unseen.
func (s *State) Get(k Key) Action {
	return s.keys[k]
}

// Pressed reports whether k is currently held.
func (s *State) Pressed(k Key) bool {
	return s.keys[k] == Pressed
}
