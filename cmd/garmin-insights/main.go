// Package main provides the entry point for the garmin-insights service.
package main

import (
	"github.com/marwick/garmin-insights-go/internal/cli"
)

func main() {
	cli.Execute()
}
