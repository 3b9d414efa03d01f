package parse

// DefaultMaxDepth bounds structural nesting.  Recursion depth in the
// parser equals the nesting depth of the input, so pathological inputs
// would otherwise exhaust the call stack.
const DefaultMaxDepth = 1000

type parseOpts struct {
	maxDepth int
}

type Option func(*parseOpts)

// WithMaxDepth overrides DefaultMaxDepth.  Exceeding the bound fails the
// parse with ErrMaxDepth.
func WithMaxDepth(n int) Option {
	return func(o *parseOpts) { o.maxDepth = n }
}
