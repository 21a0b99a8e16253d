// Package filter selects API objects with expr-lang boolean expressions.
//
// Every top-level field of the object is available by name, the whole object
// as Item, along with string and time helpers:
//
//	name startsWith "Support" and hasField("tags") and "prod" in tags
//	daysSince(created_at_unix_secs) < 7 and icontains(name, "bot")
package filter

import (
	"errors"
	"fmt"
	"sync"
)

// Object is a decoded JSON object
type Object = map[string]any

// Filter is a compiled expression
type Filter interface {
	// Match reports whether the object satisfies the expression
	Match(item Object) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (Filter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

var (
	defaultCompiler     Compiler
	defaultCompilerOnce sync.Once
)

// Compile compiles expression with a shared caching compiler
func Compile(expression string) (Filter, error) {
	defaultCompilerOnce.Do(func() {
		defaultCompiler = NewExprCompiler(WithCache(100))
	})
	return defaultCompiler.Compile(expression)
}

// Apply returns the elements of items that are objects matching f, in order.
// Elements that are not objects are an error.
func Apply(f Filter, items []any) ([]Object, error) {
	matches := make([]Object, 0, len(items))
	for i, it := range items {
		obj, ok := it.(Object)
		if !ok {
			return nil, &EvaluationError{
				Expression: f.Expression(),
				Index:      i,
				Reason:     fmt.Sprintf("element is %T, not an object", it),
			}
		}
		ok, err := f.Match(obj)
		if err != nil {
			var evalErr *EvaluationError
			if errors.As(err, &evalErr) {
				evalErr.Index = i
			}
			return nil, err
		}
		if ok {
			matches = append(matches, obj)
		}
	}
	return matches, nil
}

// Items extracts the list stored under key in a listing response, such as
// "agents" or "conversations". A missing key yields nil.
func Items(resp Object, key string) ([]any, error) {
	raw, ok := resp[key]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is %T, not a list", key, raw)
	}
	return items, nil
}
