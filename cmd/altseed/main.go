// cmd/altseed/main.go
package main

import (
	"altseed/internal/appshell"
	"altseed/internal/cli"
)

func main() {
	appshell.Main(cli.RunContext)
}
