package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	_ "github.com/joho/godotenv/autoload"

	"escolaapi/internal/cli"
)

func main() {
	if err := cli.NewDeleteUserCmd().ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
