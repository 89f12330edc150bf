// Copyright (c) 2024 The ibdd Authors
//
// MIT License

// Package trace parses the circuit-trace file format used to drive BDD
// synthesis benchmarks such as the ISCAS85 suite: a named module with a
// declared set of primary inputs and outputs, and a body of single-gate
// assignment statements connecting them (spec.md §6.3's benchmark input
// format).
//
// A trace file looks like:
//
//	MODULE c17
//	INPUT
//	  1gat,2gat,3gat,6gat,7gat;
//	OUTPUT
//	  22gat,23gat;
//	STRUCTURE
//	  10gat = nand(1gat, 3gat);
//	  11gat = nand(3gat, 6gat);
//	  16gat = nand(2gat, 11gat);
//	  19gat = nand(11gat, 7gat);
//	  22gat = nand(10gat, 16gat);
//	  23gat = nand(16gat, 19gat);
//	ENDMODULE
//
// Lines beginning with '#' anywhere in the file are treated as comments
// and skipped. This package is grounded on the original trace
// parser (BDDParser.cpp/.hpp in the reference implementation this whole
// package's operations were distilled from), rewritten as a Go
// bufio.Scanner-based reader rather than a fixed-size C buffer scan.
package trace

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Errors returned by Parse, named the way the aiger reader in the
// example corpus names its own format-error sentinels.
var (
	ErrNoModule       = errors.New("trace: missing MODULE line")
	ErrNoInput        = errors.New("trace: missing INPUT section")
	ErrNoOutput       = errors.New("trace: missing OUTPUT section")
	ErrNoStructure    = errors.New("trace: missing STRUCTURE section")
	ErrUnterminated   = errors.New("trace: file ended before ENDMODULE")
	ErrMalformedGate  = errors.New("trace: malformed gate statement")
	ErrUnknownGateOp  = errors.New("trace: unknown gate operator")
	ErrUndeclaredName = errors.New("trace: reference to an undeclared gate")
)

// operators is the set of logical operators a STRUCTURE line may use,
// matching BDDParser's logicalOperators list. The bare "=" alias for
// wiring one gate directly to another is not in this list; parseGate
// recognizes it by the absence of a call.
var operators = []string{"not", "xor", "nand", "nor", "and", "or"}

// Gate is one STRUCTURE line: out is assigned the result of applying op
// to args, in left-to-right order.
type Gate struct {
	Out  string
	Op   string // one of "not","xor","nand","nor","and","or","="
	Args []string
}

// Circuit is the parsed form of a trace file.
type Circuit struct {
	Name    string
	Inputs  []string
	Outputs []string
	Gates   []Gate
}

// Parse reads a trace file from r.
func Parse(r io.Reader) (*Circuit, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	c := &Circuit{}

	line, ok := nextMeaningfulLine(sc)
	if !ok || !strings.HasPrefix(line, "MODULE") {
		return nil, ErrNoModule
	}
	c.Name = strings.TrimSpace(strings.TrimPrefix(line, "MODULE"))

	line, ok = nextMeaningfulLine(sc)
	if !ok || line != "INPUT" {
		return nil, ErrNoInput
	}
	for {
		line, ok = nextMeaningfulLine(sc)
		if !ok {
			return nil, ErrNoOutput
		}
		if line == "OUTPUT" {
			break
		}
		c.Inputs = append(c.Inputs, splitNames(line)...)
	}

	for {
		line, ok = nextMeaningfulLine(sc)
		if !ok {
			return nil, ErrNoStructure
		}
		if line == "STRUCTURE" {
			break
		}
		c.Outputs = append(c.Outputs, splitNames(line)...)
	}

	for {
		line, ok = nextMeaningfulLine(sc)
		if !ok {
			return nil, ErrUnterminated
		}
		if line == "ENDMODULE" {
			break
		}
		g, err := parseGate(line)
		if err != nil {
			return nil, err
		}
		c.Gates = append(c.Gates, g)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "trace: reading")
	}
	return c, nil
}

func nextMeaningfulLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, true
	}
	return "", false
}

// splitNames splits a comma-separated, semicolon-terminated identifier
// list such as "1gat,2gat,3gat;" into its individual names.
func splitNames(line string) []string {
	line = strings.TrimSuffix(strings.TrimSpace(line), ";")
	var names []string
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

// parseGate parses one STRUCTURE line: "out = op(a, b, ...);" or the
// bare-alias form "out = a;".
func parseGate(line string) (Gate, error) {
	line = strings.TrimSuffix(strings.TrimSpace(line), ";")
	eq := strings.Index(line, "=")
	if eq < 0 {
		return Gate{}, ErrMalformedGate
	}
	out := strings.TrimSpace(line[:eq])
	rhs := strings.TrimSpace(line[eq+1:])
	if out == "" || rhs == "" {
		return Gate{}, ErrMalformedGate
	}

	op, args, isCall := splitCall(rhs)
	if !isCall {
		return Gate{Out: out, Op: "=", Args: []string{rhs}}, nil
	}
	if !isKnownOperator(op) {
		return Gate{}, errors.Wrapf(ErrUnknownGateOp, "%q", op)
	}
	return Gate{Out: out, Op: op, Args: args}, nil
}

func isKnownOperator(op string) bool {
	for _, o := range operators {
		if o == op {
			return true
		}
	}
	return false
}

// splitCall recognizes "name(a, b, c)" and returns name and the
// trimmed, comma-split argument list.
func splitCall(s string) (name string, args []string, ok bool) {
	open := strings.Index(s, "(")
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	name = strings.TrimSpace(s[:open])
	inner := s[open+1 : len(s)-1]
	for _, a := range strings.Split(inner, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			args = append(args, a)
		}
	}
	return name, args, true
}
