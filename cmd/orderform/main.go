package main

import (
	"os"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/cmd/orderform/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
