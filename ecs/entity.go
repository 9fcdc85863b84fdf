package ecs

// ID uniquely identifies an entity within a session. IDs are assigned by the
// World at insertion time, start at 1, and are never reused. The zero ID means
// "not yet inserted".
type ID uint64

// Entity is an ordered bag of component values belonging to one simulated
// object. Components are pointers to plain structs; at most one instance of a
// given type is expected per entity (lookup returns the first match, so
// duplicates are an assemblage bug).
type Entity struct {
	id         ID
	components []any
}

// NewEntity creates an entity with the given components, in order.
func NewEntity(components ...any) *Entity {
	return &Entity{components: components}
}

// ID returns the entity's ID, or 0 if it has not been inserted into a World.
func (e *Entity) ID() ID {
	return e.id
}

// Add appends a component to the entity.
func (e *Entity) Add(c any) {
	e.components = append(e.components, c)
}

// Remove removes the first component identical to c (pointer equality).
// It is a no-op if c is not present.
func (e *Entity) Remove(c any) {
	for i, have := range e.components {
		if have == c {
			e.components = append(e.components[:i], e.components[i+1:]...)
			return
		}
	}
}

// Get returns the first component of type *T attached to e, or nil.
func Get[T any](e *Entity) *T {
	for _, c := range e.components {
		if v, ok := c.(*T); ok {
			return v
		}
	}
	return nil
}

// Has reports whether e carries a component of type *T.
func Has[T any](e *Entity) bool {
	return Get[T](e) != nil
}
