package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/cocosip/go-jpegls/benchmark"

	// Register the JPEG-LS lossless codec by importing it
	_ "github.com/cocosip/go-jpegls/jpegls/lossless"
)

func main() {
	loopCount := benchmark.DefaultLoopCount
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			fmt.Printf("Usage: %s [loop_count]\n", os.Args[0])
			os.Exit(1)
		}
		loopCount = n
	}

	if err := benchmark.Run(benchmark.Config{LoopCount: loopCount}); err != nil {
		// Verification failures print their own diagnostics inside Run.
		if !errors.Is(err, benchmark.ErrVerificationFailed) {
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}
}
