package main

import (
	"github.com/JakubMiodunka/resource-monitor/internal/cli"
)

var (
	version = "1.0.0"
)

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
