// Command meowsum hashes files with the Meow hash and compares them.
//
//	meowsum                  hash a 16000 byte test buffer
//	meowsum FILE             hash the contents of FILE, or stdin for -
//	meowsum FILE1 FILE2      hash both files and compare them
//	meowsum bench            measure throughput across input sizes
//	meowsum info             show the selected kernel and CPU features
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
