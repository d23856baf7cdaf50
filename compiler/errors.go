package compiler

import "errors"

// ErrNoMain reports an attempt to run a program whose root file never
// declares fn main.
var ErrNoMain = errors.New("compiler: fn main is not declared")
