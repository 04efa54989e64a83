package rng

// Generator provides simple random numbers
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int

	// Int63 will return a non-negative random 63-bit integer.
	// Used to seed shoe shuffles.
	Int63() int64
}
