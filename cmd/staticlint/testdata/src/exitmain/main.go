package main

import (
	"fmt"
	"os"
)

func main() {
	defer fmt.Println("never printed")

	if len(os.Args) > 3 {
		os.Exit(2) // want "os.Exit call is forbidden in main function: os.Exit\\(2\\)"
	}

	cleanup := func() {
		os.Exit(0)
	}
	_ = cleanup

	if err := run(); err != nil {
		fail(err)
	}
}

func run() error { return nil }

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
