package main

import (
	"github.com/Faucet-ATM/Avalanche-Faucet/cmd"
)

func main() {
	cmd.Execute()
}
