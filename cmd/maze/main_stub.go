//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of mad-maze requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/maze` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal maze use `go run ./cmd/mazegen`.")
	os.Exit(2)
}
