package object

// Class is a zero-arity Callable whose Call constructs a fresh
// Instance. It carries only its name per spec §4.D; method binding,
// inheritance, and superclass lookup are Open Questions (spec §9) this
// evaluator does not resolve.
type Class struct {
	Name string
}

func (*Class) Type() Type { return CLASS }

func (*Class) Arity() int { return 0 }

func (c *Class) Call(interp Interpreter, args []Value) (Value, error) {
	return &Instance{Class: c, fields: make(map[string]Value)}, nil
}
