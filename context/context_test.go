package context

import (
	"testing"

	"github.com/rhartert/boolsmt/sat"
)

func TestAssertContradictionIsUnsat(t *testing.T) {
	c := New(DefaultConfig)
	a := c.BoolVar("a")
	f := c.And(a, c.Not(a))

	if err := c.Assert(f); err != nil {
		t.Fatalf("Assert: %v", err)
	}

	status, err := c.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if status != sat.Unsat {
		t.Errorf("Check() = %v, want Unsat", status)
	}
}

func TestAssertTautologyIsSat(t *testing.T) {
	c := New(DefaultConfig)
	a := c.BoolVar("a")
	f := c.Or(a, c.Not(a))

	if err := c.Assert(f); err != nil {
		t.Fatalf("Assert: %v", err)
	}

	status, err := c.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if status != sat.Sat {
		t.Errorf("Check() = %v, want Sat", status)
	}
}

func TestAssertIteEncodesChoice(t *testing.T) {
	c := New(DefaultConfig)
	cond := c.BoolVar("cond")
	then := c.BoolVar("then")
	els := c.BoolVar("els")

	ite := c.Ite(cond, then, els)
	if err := c.Assert(ite); err != nil {
		t.Fatalf("Assert: %v", err)
	}
	if err := c.Assert(cond); err != nil {
		t.Fatalf("Assert: %v", err)
	}
	if err := c.Assert(then); err != nil {
		t.Fatalf("Assert: %v", err)
	}

	status, err := c.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if status != sat.Sat {
		t.Errorf("Check() = %v, want Sat", status)
	}
}

func TestPushPopDiscardsAssertions(t *testing.T) {
	c := New(DefaultConfig)
	a := c.BoolVar("a")

	if err := c.Assert(a); err != nil {
		t.Fatalf("Assert: %v", err)
	}

	id := c.Push()
	if err := c.Assert(c.Not(a)); err != nil {
		t.Fatalf("Assert: %v", err)
	}
	status, err := c.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if status != sat.Unsat {
		t.Errorf("Check() inside pushed scope = %v, want Unsat", status)
	}
	if id.String() == "" {
		t.Error("Push() returned a zero-value uuid")
	}

	if err := c.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}

	status, err = c.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if status != sat.Sat {
		t.Errorf("Check() after Pop = %v, want Sat", status)
	}
}

func TestAssertRedundantEqualityChain(t *testing.T) {
	c := New(DefaultConfig)
	a := c.BoolVar("a")
	b := c.BoolVar("b")
	d := c.BoolVar("d")

	if err := c.Assert(c.Eq(a, b)); err != nil {
		t.Fatalf("Assert a=b: %v", err)
	}
	if err := c.Assert(c.Eq(b, d)); err != nil {
		t.Fatalf("Assert b=d: %v", err)
	}
	// a=d is implied by the chain above; re-asserting it must not introduce
	// a contradiction or change satisfiability.
	if err := c.Assert(c.Eq(a, d)); err != nil {
		t.Fatalf("Assert a=d: %v", err)
	}
	if err := c.Assert(a); err != nil {
		t.Fatalf("Assert a: %v", err)
	}

	status, err := c.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if status != sat.Sat {
		t.Errorf("Check() = %v, want Sat", status)
	}
}

func TestVersionAndTheory(t *testing.T) {
	c := New(DefaultConfig)
	if c.Version() == "" {
		t.Error("Version() returned empty string")
	}
	if _, ok := c.Theory().(interface{ AssertBound(sat.Atom) bool }); !ok {
		t.Error("Theory() does not implement AssertBound")
	}
}

func TestPopWithoutPushErrors(t *testing.T) {
	c := New(DefaultConfig)
	if err := c.Pop(); err == nil {
		t.Error("Pop() without a matching Push should return an error")
	}
}
