package main

import (
	"fmt"
	"io"
	"os"
)

func eprintln(a ...interface{}) {
	fmt.Fprintln(os.Stderr, a...)
}

func fprint(w io.Writer, a ...interface{}) {
	fmt.Fprint(w, a...)
}

func fprintf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format, a...)
}

func fprintln(w io.Writer, a ...interface{}) {
	fmt.Fprintln(w, a...)
}
