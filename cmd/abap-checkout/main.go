package main

import "abap-checkout/internal/cli"

func main() {
	cli.Execute()
}
