package filter

import (
	"errors"
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/Alfareiza/4yousee/fouryousee"
)

// recordVar names the variable holding the whole record, for fields whose
// names are not valid identifiers or clash with a helper
const recordVar = "Record"

// builtins are the expr builtins left enabled. The others are disabled so
// record fields such as duration, type or date resolve to the record. A
// field shadowed by one of these is still reachable as Record["len"].
var builtins = []string{
	"lower", "upper", "trim", "trimPrefix", "trimSuffix", "split",
	"len", "abs", "now",
	"all", "any", "none", "one",
}

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: helperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter. Record fields
// are free variables, so `platform == "ANDROID"` compiles without knowing
// the records it will run against.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	env := maps.Clone(c.helperFuncs)
	env[recordVar] = map[string]any{}

	opts := []expr.Option{
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
		expr.DisableAllBuiltins(),
	}
	for _, name := range builtins {
		opts = append(opts, expr.EnableBuiltin(name))
	}

	program, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Match evaluates the filter against a record
func (f *exprFilter) Match(rec fouryousee.Record) (bool, error) {
	env := make(map[string]any, len(rec)+len(f.helpers)+1)
	for k, v := range rec {
		env[k] = v
	}
	maps.Copy(env, f.helpers)
	env[recordVar] = map[string]any(rec)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, RecordID: rec.ID(), Err: err}
	}

	// AsBool at compile time guarantees the type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// Apply keeps the records matching f, in order. Records the expression
// fails on are left out and their errors joined into the returned error.
func Apply(f CompiledFilter, records []fouryousee.Record) ([]fouryousee.Record, error) {
	matches := make([]fouryousee.Record, 0, len(records))
	var errs []error
	for _, rec := range records {
		ok, err := f.Match(rec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			matches = append(matches, rec)
		}
	}
	return matches, errors.Join(errs...)
}

// dateLayouts are the timestamp formats the API uses
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// helperFunctions returns the functions available to every expression,
// on top of the enabled builtins
func helperFunctions() map[string]any {
	return map[string]any{
		// Date helpers
		"parseDate": parseDate,
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		// daysSince is -1 for values that are not a known timestamp
		"daysSince": func(s string) int {
			t := parseDate(s)
			if t.IsZero() {
				return -1
			}
			return int(time.Since(t).Hours() / 24)
		},
		// Case insensitive string helpers
		"like": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefix": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffix": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		// hasID reports whether a list of objects or ids holds id, as in
		// hasID(categories, 3)
		"hasID": func(list any, id any) bool {
			items, ok := list.([]any)
			if !ok {
				return false
			}
			want := fouryousee.FormatID(id)
			for _, item := range items {
				if fouryousee.FormatID(item) == want {
					return true
				}
			}
			return false
		},
	}
}
