package main

import (
	"os"

	"github.com/msto63/findpay/cmd/findpay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
