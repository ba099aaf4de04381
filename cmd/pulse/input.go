package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readText returns the feedback for text-style commands: the positional
// arguments (one line each), else the --input file, else stdin.
func readText(args []string, inputPath string, stdin io.Reader) (string, string, error) {
	if len(args) > 0 {
		return strings.Join(args, "\n"), "args", nil
	}
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", "", fmt.Errorf("read input: %w", err)
		}
		return string(data), inputPath, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), "stdin", nil
}
