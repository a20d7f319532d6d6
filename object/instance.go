package object

import "github.com/chalkline/loxwalk/token"

// Instance owns a reference to its Class and a field map whose fields
// are created on first assignment. Mutation through any reference to the
// same Instance is visible to every other holder of that reference.
type Instance struct {
	Class  *Class
	fields map[string]Value
}

func (*Instance) Type() Type { return INSTANCE }

// Get returns the field's value or fails UndefinedProperty with tok.
func (i *Instance) Get(name string, tok token.Token) (Value, error) {
	if v, ok := i.fields[name]; ok {
		return v, nil
	}
	return nil, NewRuntimeError(UndefinedProperty, tok, "Undefined property '%s'.", name)
}

// Set writes the field, creating it if absent.
func (i *Instance) Set(name string, v Value) {
	i.fields[name] = v
}
