/*
Package primejudge tells whether an integer is prime, composite or outside the domain of
primality, and provides a small Gio window around that check.

The package provides a command line interface which opens the window or judges numbers
directly in the terminal. To check the supported flags type:

	$ primejudge --help

In case you wish to use the judging function in your own program here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/primejudge"
	)

	func main() {
		v := primejudge.Judge(12)
		fmt.Println(v.Kind, v.Factors) // composite [2 3 4 6]
	}
*/
package primejudge
