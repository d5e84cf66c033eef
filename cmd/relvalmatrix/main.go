package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("relvalmatrix exited with error", "error", err)
		os.Exit(1)
	}
}
