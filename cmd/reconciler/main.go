package main

import "payment-reconciler/cmd/reconciler/cmd"

func main() {
	cmd.Execute()
}
