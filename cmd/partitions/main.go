// Command partitions prints p(n), the number of integer partitions of n.
//
//	partitions 7            # 15
//	partitions pentagonal 6 # first six generalized pentagonal numbers
//
// Negative numbers must follow "--" so they are not read as flags.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
