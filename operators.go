// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

// Not returns the negation of f. Since every function is represented
// with a complement bit at the top of its Edge, this never allocates a
// node (spec.md §4.9).
func (e *Engine) Not(f Edge) Edge {
	e.enter()
	defer e.leave()
	return e.retedge(rawedge(*f).not())
}

// And returns f AND g.
func (e *Engine) And(f, g Edge) (Edge, error) {
	e.enter()
	defer e.leave()
	r, err := e.iteRaw(rawedge(*f), rawedge(*g), rawZero)
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}

// Or returns f OR g.
func (e *Engine) Or(f, g Edge) (Edge, error) {
	e.enter()
	defer e.leave()
	r, err := e.iteRaw(rawedge(*f), rawOne, rawedge(*g))
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}

// Xor returns f XOR g.
func (e *Engine) Xor(f, g Edge) (Edge, error) {
	e.enter()
	defer e.leave()
	r, err := e.iteRaw(rawedge(*f), rawedge(*g).not(), rawedge(*g))
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}

// Nand returns NOT (f AND g).
func (e *Engine) Nand(f, g Edge) (Edge, error) {
	e.enter()
	defer e.leave()
	r, err := e.iteRaw(rawedge(*f), rawedge(*g).not(), rawOne)
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}

// Nor returns NOT (f OR g).
func (e *Engine) Nor(f, g Edge) (Edge, error) {
	e.enter()
	defer e.leave()
	r, err := e.iteRaw(rawedge(*f), rawZero, rawedge(*g).not())
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}

// Xnor returns NOT (f XOR g), i.e. f <-> g.
func (e *Engine) Xnor(f, g Edge) (Edge, error) {
	e.enter()
	defer e.leave()
	r, err := e.iteRaw(rawedge(*f), rawedge(*g), rawedge(*g).not())
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}

// Imp returns f -> g (NOT f OR g).
func (e *Engine) Imp(f, g Edge) (Edge, error) {
	e.enter()
	defer e.leave()
	r, err := e.iteRaw(rawedge(*f), rawedge(*g), rawOne)
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}

// LessThan returns f < g, i.e. (NOT f) AND g, the teacher's OPless.
func (e *Engine) LessThan(f, g Edge) (Edge, error) {
	e.enter()
	defer e.leave()
	r, err := e.iteRaw(rawedge(*f), rawZero, rawedge(*g))
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}

// Diff returns f > g, i.e. f AND (NOT g), the teacher's OPdiff and
// LessThan's mirror image.
func (e *Engine) Diff(f, g Edge) (Edge, error) {
	e.enter()
	defer e.leave()
	r, err := e.iteRaw(rawedge(*f), rawedge(*g).not(), rawZero)
	if err != nil {
		return nil, err
	}
	return e.retedge(r), nil
}
