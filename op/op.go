package op

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/cbarrick/cgp"
)

// EvalFunc computes an operator's value given its already-evaluated children
// and the current sample row. Functions ignore sample; variables ignore
// children; constants ignore both.
type EvalFunc func(children []float64, sample []float64) float64

// Operator is a named function with fixed arity and a pure evaluator, a
// variable bound to a sample column, or a constant. Its evaluator never
// depends on anything but its arguments and the RNG draw frozen at
// construction, if any.
type Operator struct {
	Name  string
	Arity int
	eval  EvalFunc
}

// Eval evaluates the operator given the values of its children (empty for a
// terminal) and the current sample row (ignored by functions and
// constants).
func (o Operator) Eval(children []float64, sample []float64) float64 {
	return o.eval(children, sample)
}

func (o Operator) String() string {
	return o.Name
}

// NewFunction builds an internal-node operator of the given name and arity.
// fn receives exactly Arity already-evaluated children.
func NewFunction(name string, arity int, fn func(children []float64) float64) Operator {
	return Operator{
		Name:  name,
		Arity: arity,
		eval: func(children, _ []float64) float64 {
			return fn(children)
		},
	}
}

// Variable returns a terminal operator that reads sample column index at
// evaluation time.
func Variable(index int) Operator {
	name := "x" + strconv.Itoa(index)
	return Operator{
		Name:  name,
		Arity: 0,
		eval: func(_, sample []float64) float64 {
			if index < 0 || index >= len(sample) {
				panic(fmt.Sprintf("op: variable %s out of range for sample of length %d", name, len(sample)))
			}
			return sample[index]
		},
	}
}

// Const returns a terminal operator whose value is fixed at construction
// time and never changes.
func Const(value float64) Operator {
	return Operator{
		Name:  strconv.FormatFloat(value, 'g', -1, 64),
		Arity: 0,
		eval: func(_, _ []float64) float64 {
			return value
		},
	}
}

// Terminal is anything that can produce a fresh arity-0 Operator, optionally
// drawing randomness at instantiation time.
type Terminal interface {
	Instantiate(rng *rand.Rand) Operator
}

// staticTerminal wraps an already-built terminal Operator so it satisfies
// Terminal without consuming the RNG.
type staticTerminal struct{ op Operator }

func (s staticTerminal) Instantiate(*rand.Rand) Operator { return s.op }

// AsTerminal adapts a fixed arity-0 Operator (a Variable or a Const) into a
// Terminal. It panics if given an operator of nonzero arity.
func AsTerminal(o Operator) Terminal {
	if o.Arity != 0 {
		panic("op: AsTerminal requires an arity-0 operator")
	}
	return staticTerminal{op: o}
}

// Set is the operator and terminal set a tree may draw from: Functions are
// the arity>0 internal-node operators, Terminals the arity-0 leaf producers.
type Set struct {
	Functions []Operator
	Terminals []Terminal
}

// Validate reports a cgp.ConfigurationError if the set cannot produce any
// tree: no terminals means recursion into a terminal can never stop, and a
// function of non-positive arity among Functions is a malformed
// configuration. Engine construction calls this through the Problem, so a
// broken set fails up front instead of panicking generations into a run.
func (s Set) Validate() error {
	if len(s.Terminals) == 0 {
		return cgp.NewConfigurationError("op: operator set has no terminals", nil)
	}
	for _, f := range s.Functions {
		if f.Arity <= 0 {
			return cgp.NewConfigurationError(
				fmt.Sprintf("op: function %q has non-positive arity %d", f.Name, f.Arity), nil)
		}
	}
	return nil
}

// RandomFunction draws a function uniformly from the set. Panics if the set
// has no functions; callers should check len(s.Functions) > 0 first when
// depth permits an internal node.
func (s Set) RandomFunction(rng *rand.Rand) Operator {
	return s.Functions[rng.Intn(len(s.Functions))]
}

// RandomTerminal draws a terminal uniformly from the set and instantiates
// it, sampling an ephemeral value if the terminal is an Ephemeral.
func (s Set) RandomTerminal(rng *rand.Rand) Operator {
	return s.Terminals[rng.Intn(len(s.Terminals))].Instantiate(rng)
}
