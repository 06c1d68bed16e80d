// Package fixture reads the puzzle inputs and known solutions that tests run against.
//
// Fixtures live in a resource store, any fs.FS, laid out by year and day:
//
//	y2015/
//	  d01/
//	    input.txt
//	    solution_part1.txt
//	    solution_part2.txt
//
// Every file is optional. A missing input means the fixture tests of that day cannot run; a
// missing solution means the answer cannot be verified. Neither is an error.
package fixture
