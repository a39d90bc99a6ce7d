// Package errors provides the classified error primitives used across SEO Studio.
//
// Every failure that reaches a user boundary (CLI exit, HTTP response) is a
// ClassifiedError carrying a category, a severity and structured context.
// Table misses inside the scorer and builder are not errors; they fall back
// to synthesized data.
//
// Example usage:
//
//	err := errors.ValidationError("keyword is blank").
//		WithContext("index", i).
//		Build()
package errors
