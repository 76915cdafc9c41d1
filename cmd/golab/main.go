// Package main provides the golab command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/golab-num/golab/matrix"
)

const version = "v0.1.0-dev"

func usage() {
	fmt.Println("golab - MATLAB-like matrix syntax for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Usage:")
	fmt.Println("  golab version        Show version")
	fmt.Println("  golab \"1 2; 3 4\"     Parse a matrix literal and print it")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	if os.Args[1] == "version" {
		fmt.Printf("golab %s\n", version)
		return
	}

	m, err := matrix.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "golab: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(m)
}
