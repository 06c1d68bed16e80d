// Package y2015 contains solutions to the puzzles of 2015.
package y2015
