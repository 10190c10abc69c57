// Package puzzle defines the Puzzle interface and the three concrete
// puzzle kinds built on it: grid peg solitaire, the n×m sliding-tile
// puzzle, and the word ladder.
//
// Every configuration is an immutable value object: Extensions constructs
// new configurations rather than mutating the receiver, and Equal compares
// full configuration content, never identity. Search drivers consume the
// interface without knowing which kind they are exploring.
package puzzle
