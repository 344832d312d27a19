package filter

import "github.com/Alfareiza/4yousee/fouryousee"

// CompiledFilter is a pre-compiled expression ready for evaluation
type CompiledFilter interface {
	// Match reports whether rec satisfies the expression
	Match(rec fouryousee.Record) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}
