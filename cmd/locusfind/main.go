// cmd/locusfind/main.go
package main

import (
	"locusfind/internal/app"
	"locusfind/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
