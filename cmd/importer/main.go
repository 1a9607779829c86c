package main

import (
	"fmt"
	"os"
)

// go run ./cmd/importer run https://supplier.example.com/chargers/green4-charger--24-GREEN4-4875
// go run ./cmd/importer run --dry-run --json <url>
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
