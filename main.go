package main

import (
	"fmt"
	"os"
	"walletrisk/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("walletrisk run into an error: %s", err)
		os.Exit(1)
	}
}
