package dilo_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/dilo"
	"github.com/pkg/errors"
)

func trace(t *testing.T, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}

// testGate applies all input combinations to d, first input as msb, and
// checks output q against result.
func testGate(t *testing.T, d dilo.Device, result []bool) {
	t.Helper()
	ins := d.Inputs()
	tot := 1 << uint(len(ins))
	if len(result) != tot {
		t.Fatalf("expected %d results, got %d", tot, len(result))
	}
	inputs := make([]bool, len(ins))
	for i := 0; i < tot; i++ {
		for bit := range inputs {
			inputs[len(inputs)-bit-1] = (i & (1 << uint(bit))) != 0
		}
		for k, n := range ins {
			if err := d.SetInput(n, inputs[k]); err != nil {
				t.Fatal(err)
			}
		}
		out, err := d.Output("q")
		if err != nil {
			t.Fatal(err)
		}
		if out != result[i] {
			t.Errorf("%v = %v, got %v", inputs, result[i], out)
		}
	}
}

func Test_gate_builtin(t *testing.T) {
	td := []struct {
		name   string
		gate   func() *dilo.Part
		result []bool // a=0 && b=0, a=0 && b=1, a=1 && b=0, a=1 && b=1
	}{
		{"LOGIC0", dilo.Logic0, []bool{false}},
		{"LOGIC1", dilo.Logic1, []bool{true}},
		{"BUFFER", dilo.Buffer, []bool{false, true}},
		{"NOT", dilo.Not, []bool{true, false}},
		{"AND", dilo.And, []bool{false, false, false, true}},
		{"NAND", dilo.Nand, []bool{true, true, true, false}},
		{"OR", dilo.Or, []bool{false, true, true, true}},
		{"NOR", dilo.Nor, []bool{true, false, false, false}},
		{"XOR", dilo.Xor, []bool{false, true, true, false}},
		{"XNOR", dilo.Xnor, []bool{true, false, false, true}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			g := d.gate()
			if g.Name() != d.name {
				t.Errorf("expected name %s, got %s", d.name, g.Name())
			}
			testGate(t, g, d.result)
		})
	}
}

func TestPart_initial_outputs(t *testing.T) {
	td := []struct {
		name string
		gate func() *dilo.Part
		q    bool
	}{
		{"LOGIC0", dilo.Logic0, false},
		{"LOGIC1", dilo.Logic1, true},
		{"BUFFER", dilo.Buffer, false},
		{"NOT", dilo.Not, true},
		{"AND", dilo.And, false},
		{"NAND", dilo.Nand, true},
		{"NOR", dilo.Nor, true},
		{"XNOR", dilo.Xnor, true},
	}
	for _, d := range td {
		q, err := d.gate().Output("q")
		if err != nil {
			t.Fatal(err)
		}
		if q != d.q {
			t.Errorf("%s: expected q=%v on a new gate, got %v", d.name, d.q, q)
		}
	}
}

func TestPart_ports(t *testing.T) {
	g := dilo.And()
	if in := g.Inputs(); len(in) != 2 || in[0] != "a" || in[1] != "b" {
		t.Errorf("unexpected inputs %v", in)
	}
	if out := g.Outputs(); len(out) != 1 || out[0] != "q" {
		t.Errorf("unexpected outputs %v", out)
	}
	if err := g.SetInput("c", true); !errors.Is(err, dilo.ErrNoSuchPort) {
		t.Errorf("SetInput(c): expected ErrNoSuchPort, got %v", err)
	}
	if err := g.SetInput("A", true); !errors.Is(err, dilo.ErrNoSuchPort) {
		t.Errorf("SetInput(A): expected ErrNoSuchPort, got %v", err)
	}
	if _, err := g.Output("a"); !errors.Is(err, dilo.ErrNoSuchPort) {
		t.Errorf("Output(a): expected ErrNoSuchPort, got %v", err)
	}
	if err := dilo.Logic1().SetInput("a", false); !errors.Is(err, dilo.ErrNoSuchPort) {
		t.Errorf("constant SetInput: expected ErrNoSuchPort, got %v", err)
	}
}

func TestPart_idempotent_output(t *testing.T) {
	g := dilo.Xor()
	f := func(a, b bool) bool {
		if err := dilo.Apply(g, dilo.Signal{Port: "a", Value: a}, dilo.Signal{Port: "b", Value: b}); err != nil {
			t.Fatal(err)
		}
		q0, _ := g.Output("q")
		q1, _ := g.Output("q")
		return q0 == q1 && q0 == (a != b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPartSpec_custom(t *testing.T) {
	maj := &dilo.PartSpec{
		Name:    "MAJ",
		Inputs:  []string{"a", "b", "c"},
		Outputs: []string{"q"},
		Update: func(in, out []bool) {
			out[0] = in[0] && in[1] || in[0] && in[2] || in[1] && in[2]
		},
	}
	testGate(t, maj.New(), []bool{false, false, false, true, false, true, true, true})
}

func TestApply(t *testing.T) {
	g := dilo.And()
	err := dilo.Apply(g,
		dilo.Signal{Port: "a", Value: true},
		dilo.Signal{Port: "x", Value: true},
		dilo.Signal{Port: "b", Value: true},
	)
	if !errors.Is(err, dilo.ErrNoSuchPort) {
		t.Fatalf("expected ErrNoSuchPort, got %v", err)
	}
	// a was applied, b was not.
	outs, err := dilo.Outputs(g)
	if err != nil {
		t.Fatal(err)
	}
	if outs["q"] {
		t.Error("b must not have been applied")
	}
	if err = g.SetInput("b", true); err != nil {
		t.Fatal(err)
	}
	if q, _ := g.Output("q"); !q {
		t.Error("a must have been applied")
	}
}
