package main

import (
	"github.com/Paintersrp/skit/internal/cli"
	"github.com/Paintersrp/skit/internal/metrics"
)

func main() {
	metrics.EmitBuildInfo()
	cli.Execute()
}
