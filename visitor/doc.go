// Package visitor offers callback based iteration over conversion sources.
// Slices, arrays, maps, structs and comma separated text are visited uniformly,
// any other value is visited as a single element.
package visitor
