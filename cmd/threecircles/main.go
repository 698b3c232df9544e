// Command threecircles renders three overlapping unit circles with their
// shared lens region shaded and writes three_circles_intersection.png
// (300 DPI) to the current directory.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/threecircles"
)

func main() {
	threecircles.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
}

func run() error {
	return threecircles.Render(threecircles.DefaultOutput)
}
