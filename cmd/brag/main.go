package main

import (
	"context"

	"github.com/maebert/bragmaster/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
