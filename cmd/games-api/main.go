// Command games-api serves the board game reviews API.
//
//	@title			Board Game Reviews API
//	@version		1.0
//	@description	Read-only lookups over board-game categories, reviews, comments and users.
//	@BasePath		/api
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/tbourn/go-games-backend/internal/commands"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	_ = godotenv.Load()

	if err := commands.NewRootCmd(version).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
