package main

import "customer-service/cmd"

func main() {
	cmd.Execute()
}
