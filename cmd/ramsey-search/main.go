package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Fatalf("ramsey-search: %v", err)
	}
}
