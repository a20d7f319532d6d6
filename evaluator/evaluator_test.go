package evaluator_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chalkline/loxwalk/evaluator"
)

// runProgram lexes, parses, resolves, and evaluates src against a fresh
// Evaluator and returns whatever it wrote to stdout, the same
// literal-source-to-literal-stdout shape as the teacher's
// []test_helper.TestItem{{input, want}} tables, adapted in-package
// since these programs need no file fixtures.
func runProgram(t *testing.T, src string) (string, evaluator.RunStatus) {
	t.Helper()
	var out, errOut bytes.Buffer
	eval := evaluator.New(&out)
	for name, builtin := range evaluator.Builtins() {
		eval.DefineGlobal(name, builtin)
	}
	status := evaluator.Run(eval, src, &errOut)
	if status == evaluator.StatusStaticError {
		t.Fatalf("static error for %q: %s", src, errOut.String())
	}
	return out.String(), status
}

func TestPrintArithmetic(t *testing.T) {
	got, _ := runProgram(t, `print 1 + 2;`)
	if got != "3 \n" {
		t.Errorf("got %q, want %q", got, "3 \n")
	}
}

func TestBlockShadowingRestoresOuterEnvironment(t *testing.T) {
	got, _ := runProgram(t, `var a = 1; { var a = 2; print a; } print a;`)
	want := "2 \n1 \n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestClosureCapturesMutableFrame(t *testing.T) {
	src := `
	fun make() {
		var n = 0;
		fun inc() {
			n = n + 1;
			return n;
		}
		return inc;
	}
	var f = make();
	print f();
	print f();
	`
	got, _ := runProgram(t, src)
	want := "1 \n2 \n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestForLoopContinueStillRunsIncrement(t *testing.T) {
	src := `for (var i = 0; i < 3; i = i + 1) { if (i == 1) continue; print i; }`
	got, _ := runProgram(t, src)
	want := "0 \n2 \n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStringLexicographicComparison(t *testing.T) {
	got, _ := runProgram(t, `print "a" < "b";`)
	if got != "true \n" {
		t.Errorf("got %q, want %q", got, "true \n")
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, status := runProgram(t, `var x = 1 / 0;`)
	if status != evaluator.StatusRuntimeError {
		t.Errorf("status = %v, want StatusRuntimeError", status)
	}
}

func TestBreakExitsLoop(t *testing.T) {
	src := `for (var i = 0; i < 5; i = i + 1) { if (i == 2) break; print i; }`
	got, _ := runProgram(t, src)
	want := "0 \n1 \n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWhileContinueReevaluatesCondition(t *testing.T) {
	src := `
	var i = 0;
	while (i < 3) {
		i = i + 1;
		if (i == 2) continue;
		print i;
	}
	`
	got, _ := runProgram(t, src)
	want := "1 \n3 \n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestShortCircuitOrSkipsRightOperand(t *testing.T) {
	src := `
	fun sideEffect() {
		print "evaluated";
		return true;
	}
	print true or sideEffect();
	`
	got, _ := runProgram(t, src)
	if strings.Contains(got, "evaluated") {
		t.Errorf("right operand of 'or' was evaluated despite truthy left operand: %q", got)
	}
	if got != "true \n" {
		t.Errorf("got %q, want %q", got, "true \n")
	}
}

func TestShortCircuitAndSkipsRightOperand(t *testing.T) {
	src := `
	fun sideEffect() {
		print "evaluated";
		return true;
	}
	print false and sideEffect();
	`
	got, _ := runProgram(t, src)
	if strings.Contains(got, "evaluated") {
		t.Errorf("right operand of 'and' was evaluated despite falsy left operand: %q", got)
	}
	if got != "false \n" {
		t.Errorf("got %q, want %q", got, "false \n")
	}
}

func TestTernaryEvaluatesOnlyOneBranch(t *testing.T) {
	src := `
	fun sideEffect() {
		print "evaluated";
		return 2;
	}
	print true ? 1 : sideEffect();
	`
	got, _ := runProgram(t, src)
	if strings.Contains(got, "evaluated") {
		t.Errorf("false branch of ternary was evaluated despite truthy condition: %q", got)
	}
	if got != "1 \n" {
		t.Errorf("got %q, want %q", got, "1 \n")
	}
}

func TestCommaOperatorYieldsRightOperand(t *testing.T) {
	got, _ := runProgram(t, `print (1, 2, 3);`)
	if got != "3 \n" {
		t.Errorf("got %q, want %q", got, "3 \n")
	}
}

func TestPrintWithMultipleArgumentsJoinsEachWithASpace(t *testing.T) {
	got, _ := runProgram(t, `print 1, 2, 3;`)
	if got != "1 2 3 \n" {
		t.Errorf("got %q, want %q", got, "1 2 3 \n")
	}
}

func TestStringifyIntegerValuedDoubleOmitsTrailingZero(t *testing.T) {
	got, _ := runProgram(t, `print 3.0; print 3.5;`)
	want := "3 \n3.5 \n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNilEqualsOnlyNil(t *testing.T) {
	got, _ := runProgram(t, `print nil == nil; print nil == 0;`)
	want := "true \nfalse \n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestClassConstructsInstanceAndFieldsRoundTrip(t *testing.T) {
	src := `
	class Point {}
	var p = Point();
	p.x = 3;
	print p.x;
	`
	got, _ := runProgram(t, src)
	if got != "3 \n" {
		t.Errorf("got %q, want %q", got, "3 \n")
	}
}

func TestReadingUndefinedPropertyIsRuntimeError(t *testing.T) {
	src := `
	class Point {}
	var p = Point();
	print p.x;
	`
	_, status := runProgram(t, src)
	if status != evaluator.StatusRuntimeError {
		t.Errorf("status = %v, want StatusRuntimeError", status)
	}
}

func TestCallingWithWrongArityIsRuntimeError(t *testing.T) {
	src := `
	fun one(a) { return a; }
	one(1, 2);
	`
	_, status := runProgram(t, src)
	if status != evaluator.StatusRuntimeError {
		t.Errorf("status = %v, want StatusRuntimeError", status)
	}
}

func TestCallingNonCallableIsTypeError(t *testing.T) {
	_, status := runProgram(t, `var x = 1; x();`)
	if status != evaluator.StatusRuntimeError {
		t.Errorf("status = %v, want StatusRuntimeError", status)
	}
}

func TestUnaryMinusRequiresNumber(t *testing.T) {
	_, status := runProgram(t, `var x = -"a";`)
	if status != evaluator.StatusRuntimeError {
		t.Errorf("status = %v, want StatusRuntimeError", status)
	}
}

func TestAssignmentToUndefinedVariableIsRuntimeError(t *testing.T) {
	_, status := runProgram(t, `x = 1;`)
	if status != evaluator.StatusRuntimeError {
		t.Errorf("status = %v, want StatusRuntimeError", status)
	}
}

func TestFunctionReturningNilByDefault(t *testing.T) {
	src := `
	fun noop() {}
	print noop();
	`
	got, _ := runProgram(t, src)
	if got != "nil \n" {
		t.Errorf("got %q, want %q", got, "nil \n")
	}
}

func TestStringConcatenation(t *testing.T) {
	got, _ := runProgram(t, `print "foo" + "bar";`)
	if got != "foobar \n" {
		t.Errorf("got %q, want %q", got, "foobar \n")
	}
}

func TestMixedTypePlusIsTypeError(t *testing.T) {
	_, status := runProgram(t, `var x = "foo" + 1;`)
	if status != evaluator.StatusRuntimeError {
		t.Errorf("status = %v, want StatusRuntimeError", status)
	}
}

func TestArrayExpressionsAreUnimplemented(t *testing.T) {
	_, status := runProgram(t, `var x = [1, 2, 3];`)
	if status != evaluator.StatusRuntimeError {
		t.Errorf("status = %v, want StatusRuntimeError (Unimplemented)", status)
	}
}

func TestMultipleDeclarationsPersistAcrossStatements(t *testing.T) {
	src := `
	var a = 1;
	var b = 2;
	print a + b;
	`
	got, _ := runProgram(t, src)
	if got != "3 \n" {
		t.Errorf("got %q, want %q", got, "3 \n")
	}
}

func TestHashRoundTripsThroughCheckHash(t *testing.T) {
	src := `
	var digest = hash("correct horse battery staple");
	print checkHash("correct horse battery staple", digest);
	print checkHash("wrong password", digest);
	`
	got, _ := runProgram(t, src)
	want := "true \nfalse \n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
