// Command zmij-verify exhaustively checks the zmij conversion library
// against a reference oracle.
//
// With no arguments it verifies every binary32 bit pattern. With a
// single integer argument it verifies the binary64 values whose raw
// (biased) exponent field equals that argument. Progress is written
// to standard output; mismatches to standard error. Exit status is 0
// on success, 1 on a mismatch or an invalid argument.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vitaut/zmij-go/verify"
)

func main() {
	var stats verify.Stats
	var err error

	switch len(os.Args) {
	case 1:
		stats, err = verify.Float32(0)
	case 2:
		var rawExp int
		rawExp, err = strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid exponent argument %q\n", os.Args[1])
			os.Exit(1)
		}
		stats, err = verify.Float64Exponent(rawExp, 0)
	default:
		fmt.Fprintln(os.Stderr, "usage: zmij-verify [raw-binary64-exponent]")
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%d errors and %d special cases in %d values\n",
		stats.Errors, stats.SpecialCases, stats.Processed)
	if stats.Errors != 0 {
		os.Exit(1)
	}
}
