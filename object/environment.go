package object

import "github.com/chalkline/loxwalk/token"

// Environment is a binding frame: a name-to-Value store plus a link to
// its enclosing frame. The global frame has Enclosing == nil and is the
// only frame whose lookups use name-only (undistanced) access; every
// other lookup goes through GetAt/AssignAt once the resolver has
// supplied a hop count, so evaluation-time lookup is O(distance) link
// hops plus a single name lookup in the target frame, rather than a name
// lookup in every frame walked.
type Environment struct {
	values    map[string]Value
	Enclosing *Environment
}

func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosedEnvironment builds a child frame of outer, the shape every
// block and call creates for the duration of its own scope.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.Enclosing = outer
	return env
}

// Define unconditionally creates or overwrites a slot in this frame.
func (e *Environment) Define(name string, v Value) {
	e.values[name] = v
}

// Get searches this frame then walks the enclosing chain, failing
// UndefinedVariable with tok for the offending name if nowhere found.
func (e *Environment) Get(name string, tok token.Token) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name, tok)
	}
	return nil, NewRuntimeError(UndefinedVariable, tok, "Undefined variable '%s'.", name)
}

// Assign walks the same chain as Get and overwrites the first slot
// found, failing UndefinedVariable if none exists.
func (e *Environment) Assign(name string, v Value, tok token.Token) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, v, tok)
	}
	return NewRuntimeError(UndefinedVariable, tok, "Undefined variable '%s'.", name)
}

// GetAt traverses exactly distance parent links and reads name from
// that frame. The resolver guarantees the name exists there.
func (e *Environment) GetAt(distance int, name string) Value {
	return e.ancestor(distance).values[name]
}

// AssignAt traverses exactly distance parent links and writes name in
// that frame.
func (e *Environment) AssignAt(distance int, name string, v Value) {
	e.ancestor(distance).values[name] = v
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}
