// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package trace

import (
	"github.com/pkg/errors"

	"github.com/gobdd/ibdd"
)

// Build synthesizes a Circuit against an Engine, returning the Edge
// bound to every gate that was ever named on the left of a STRUCTURE
// line, keyed by gate name. Primary inputs are bound to the Engine's
// variables in declaration order: the circuit's i'th INPUT name becomes
// variable i+1.
//
// Variadic and/or/nand/nor gates fold their arguments left to right in
// the order they appear in the trace file, matching how the original
// trace format's own reference synthesizer walked the argument list.
func Build(e *ibdd.Engine, c *Circuit) (map[string]ibdd.Edge, error) {
	if len(c.Inputs) > e.Varnum() {
		return nil, errors.Errorf("trace: circuit declares %d inputs but engine has only %d variables", len(c.Inputs), e.Varnum())
	}

	edges := make(map[string]ibdd.Edge, len(c.Inputs)+len(c.Gates))
	for i, name := range c.Inputs {
		edges[name] = e.Variable(i + 1)
	}

	lookup := func(name string) (ibdd.Edge, error) {
		v, ok := edges[name]
		if !ok {
			return nil, errors.Wrapf(ErrUndeclaredName, "%q", name)
		}
		return v, nil
	}

	for _, g := range c.Gates {
		out, err := evalGate(e, g, lookup)
		if err != nil {
			return nil, errors.Wrapf(err, "trace: evaluating gate %q", g.Out)
		}
		edges[g.Out] = out
	}

	for _, name := range c.Outputs {
		if _, ok := edges[name]; !ok {
			return nil, errors.Wrapf(ErrUndeclaredName, "output %q", name)
		}
	}

	return edges, nil
}

func evalGate(e *ibdd.Engine, g Gate, lookup func(string) (ibdd.Edge, error)) (ibdd.Edge, error) {
	args := make([]ibdd.Edge, len(g.Args))
	for i, a := range g.Args {
		v, err := lookup(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch g.Op {
	case "=":
		return args[0], nil
	case "not":
		return e.Not(args[0]), nil
	case "xor":
		return foldBinary(args, e.Xor)
	case "nand":
		return foldVariadic(e, args, e.And, e.Not)
	case "nor":
		return foldVariadic(e, args, e.Or, e.Not)
	case "and":
		return foldReduce(args, e.And)
	case "or":
		return foldReduce(args, e.Or)
	default:
		return nil, errors.Wrapf(ErrUnknownGateOp, "%q", g.Op)
	}
}

func foldBinary(args []ibdd.Edge, op func(a, b ibdd.Edge) (ibdd.Edge, error)) (ibdd.Edge, error) {
	if len(args) != 2 {
		return nil, ErrMalformedGate
	}
	return op(args[0], args[1])
}

func foldReduce(args []ibdd.Edge, op func(a, b ibdd.Edge) (ibdd.Edge, error)) (ibdd.Edge, error) {
	if len(args) == 0 {
		return nil, ErrMalformedGate
	}
	acc := args[0]
	for _, a := range args[1:] {
		var err error
		acc, err = op(acc, a)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func foldVariadic(e *ibdd.Engine, args []ibdd.Edge, op func(a, b ibdd.Edge) (ibdd.Edge, error), negate func(ibdd.Edge) ibdd.Edge) (ibdd.Edge, error) {
	acc, err := foldReduce(args, op)
	if err != nil {
		return nil, err
	}
	return negate(acc), nil
}
