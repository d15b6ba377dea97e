// main.go
package main

import (
	"os"

	"freight-booking/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
