package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	runner := NewRunner(RunnerOpts{Output: os.Stdout})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "apikey: %v\n", err)
		os.Exit(1)
	}
}
