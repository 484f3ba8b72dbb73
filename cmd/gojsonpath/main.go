package main

import (
	"os"

	"github.com/querylabs/gojsonpath/cmd/gojsonpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
