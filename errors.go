// Copyright (c) 2024 The ibdd Authors
//
// MIT License

package ibdd

import "github.com/pkg/errors"

// variableRangeError reports an out-of-range variable index. Variable,
// NVariable, Cofactor, Exist, ExistSet and RelProduct panic with it, since
// an out-of-range variable index there is a programming error in the
// caller; NewReplacer returns it as an ordinary error instead. The panic
// sites treat it as the same class of mistake the
// teacher library reports with log.Panicf from its own bounds checks
// (spec.md §7, error kind 1: "invariant violations that indicate a bug
// in the CALLER").
func variableRangeError(i, varnum int) error {
	return errors.Errorf("ibdd: variable index %d out of range [1,%d]", i, varnum)
}
