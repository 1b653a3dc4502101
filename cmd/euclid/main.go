package main

import (
	"log"
	"os"
	"runtime"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stderr)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("euclid (%s): %v", runtime.Version(), err)
	}
}
