package evaluator

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/chalkline/loxwalk/object"
	"github.com/chalkline/loxwalk/token"
)

// Builtins returns the native callables the driver seeds into the
// global environment before Interpret, the same small "clock()" style
// helper most tree-walking Lox ports carry for timing scripts, plus a
// hash/checkHash pair for scripts that want to store a password rather
// than the plaintext.
func Builtins() map[string]object.Value {
	return map[string]object.Value{
		"clock": &object.Builtin{
			Name:    "clock",
			NumArgs: 0,
			Fn: func(args []object.Value) (object.Value, error) {
				return object.Number(float64(time.Now().UnixNano()) / 1e9), nil
			},
		},
		"hash": &object.Builtin{
			Name:    "hash",
			NumArgs: 1,
			Fn:      builtinHash,
		},
		"checkHash": &object.Builtin{
			Name:    "checkHash",
			NumArgs: 2,
			Fn:      builtinCheckHash,
		},
	}
}

// builtinHash bcrypt-hashes a plaintext string, the same algorithm
// Pipefish's database layer uses to store a password instead of the
// plaintext (database/database.go, source/database/database.go).
func builtinHash(args []object.Value) (object.Value, error) {
	s, ok := args[0].(object.String)
	if !ok {
		return nil, object.NewRuntimeError(object.TypeError, token.Token{}, "hash() requires a string")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.DefaultCost)
	if err != nil {
		return nil, object.NewRuntimeError(object.TypeError, token.Token{}, "hash(): %s", err)
	}
	return object.String(digest), nil
}

// builtinCheckHash reports whether a plaintext matches a hash() digest.
func builtinCheckHash(args []object.Value) (object.Value, error) {
	plain, ok := args[0].(object.String)
	if !ok {
		return nil, object.NewRuntimeError(object.TypeError, token.Token{}, "checkHash() requires strings")
	}
	digest, ok := args[1].(object.String)
	if !ok {
		return nil, object.NewRuntimeError(object.TypeError, token.Token{}, "checkHash() requires strings")
	}
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	return object.MakeBool(err == nil), nil
}
