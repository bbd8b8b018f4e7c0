package main

import "employeeform/internal/cli"

func main() {
	cli.Execute()
}
