// Command filelog appends typed entries to a log file.
//
// Usage:
//
//	filelog [flags] TYPE MESSAGE...
//	filelog sweep --days 7
//	filelog profiles
//
// Example:
//
//	filelog --file-path ./logs --profile prod info "service started"
//	filelog audit "user admin logged in"
package main

import "github.com/mordilloSan/go-filelog/internal/cli"

func main() {
	cli.Execute()
}
