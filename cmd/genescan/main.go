// cmd/genescan/main.go
package main

import (
	"genescan/internal/app"
	"genescan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
