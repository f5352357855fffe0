package main

import "github.com/SebastiaanKlippert/go-jdn/internal/cli"

func main() {
	cli.Execute()
}
