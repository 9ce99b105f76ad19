// Package transform applies string functions to the string values of flat
// maps and to the top-level string fields of structs. Every function returns a
// new value and leaves its input untouched; nested structs, slices and maps
// are never entered.
package transform
