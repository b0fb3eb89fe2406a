// Package logging wires the server's slog output: JSON to stdout for
// everything, with ERROR+ records additionally batched to Postgres so
// failed requests can be queried after the fact.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the stdout JSON handler as the default logger. Once
// the database is up, main swaps in a MultiHandler that adds the
// Postgres sink.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
