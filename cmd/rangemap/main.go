package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		eprintln("Error:", err)
		os.Exit(1)
	}
}
