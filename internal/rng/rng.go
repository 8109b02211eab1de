// Package rng provides the random sources behind the deck shuffle.
package rng

// Generator provides a simple random number
// The shuffle draws its swap indexes from a Generator.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
