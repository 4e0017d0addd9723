package main

import (
	"github.com/aetheric-oss/svc-assets/internal/cli"
)

func main() {
	cli.Execute()
}
