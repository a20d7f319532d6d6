package object_test

import (
	"testing"

	"github.com/chalkline/loxwalk/object"
	"github.com/chalkline/loxwalk/token"
)

func tok(name string) token.Token {
	return token.New(token.IDENTIFIER, name, nil, 1)
}

func TestDefineShadowsEnclosingFrame(t *testing.T) {
	outer := object.NewEnvironment()
	outer.Define("a", object.Number(1))

	inner := object.NewEnclosedEnvironment(outer)
	inner.Define("a", object.Number(2))

	v, err := inner.Get("a", tok("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != object.Number(2) {
		t.Errorf("inner.Get(a) = %v, want 2", v)
	}

	v, err = outer.Get("a", tok("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != object.Number(1) {
		t.Errorf("outer.Get(a) = %v, want 1 (shadowing must not leak upward)", v)
	}
}

func TestGetWalksEnclosingChain(t *testing.T) {
	outer := object.NewEnvironment()
	outer.Define("a", object.Number(42))
	inner := object.NewEnclosedEnvironment(outer)

	v, err := inner.Get("a", tok("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != object.Number(42) {
		t.Errorf("Get(a) = %v, want 42", v)
	}
}

func TestGetUndefinedVariableFails(t *testing.T) {
	env := object.NewEnvironment()
	_, err := env.Get("missing", tok("missing"))
	if err == nil {
		t.Fatal("expected an UndefinedVariable error, got nil")
	}
	rerr, ok := err.(*object.RuntimeError)
	if !ok || rerr.Kind != object.UndefinedVariable {
		t.Errorf("err = %v, want a RuntimeError with Kind UndefinedVariable", err)
	}
}

func TestAssignWalksEnclosingChainAndOverwritesFirstSlot(t *testing.T) {
	outer := object.NewEnvironment()
	outer.Define("a", object.Number(1))
	inner := object.NewEnclosedEnvironment(outer)

	if err := inner.Assign("a", object.Number(9), tok("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, _ := outer.Get("a", tok("a"))
	if v != object.Number(9) {
		t.Errorf("outer.Get(a) = %v, want 9 (assign must reach the defining frame)", v)
	}
}

func TestAssignUndefinedVariableFails(t *testing.T) {
	env := object.NewEnvironment()
	err := env.Assign("missing", object.Number(1), tok("missing"))
	if err == nil {
		t.Fatal("expected an UndefinedVariable error, got nil")
	}
}

func TestGetAtAssignAtUseExactDistance(t *testing.T) {
	global := object.NewEnvironment()
	global.Define("a", object.Number(0))
	middle := object.NewEnclosedEnvironment(global)
	middle.Define("a", object.Number(1))
	inner := object.NewEnclosedEnvironment(middle)
	inner.Define("a", object.Number(2))

	if v := inner.GetAt(0, "a"); v != object.Number(2) {
		t.Errorf("GetAt(0, a) = %v, want 2", v)
	}
	if v := inner.GetAt(1, "a"); v != object.Number(1) {
		t.Errorf("GetAt(1, a) = %v, want 1", v)
	}
	if v := inner.GetAt(2, "a"); v != object.Number(0) {
		t.Errorf("GetAt(2, a) = %v, want 0", v)
	}

	inner.AssignAt(2, "a", object.Number(100))
	if v, _ := global.Get("a", tok("a")); v != object.Number(100) {
		t.Errorf("AssignAt(2, ...) did not reach the global frame: got %v", v)
	}
}
