package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/levelpack/internal/app"
	"github.com/vk/levelpack/internal/cli"
)

// main is the entrypoint for the levelpack converter.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	os.Exit(run(os.Stdout, os.Stderr, os.Stdin, os.Args[1:]))
}

// run encapsulates the main application logic for easier testing. It
// returns the process exit code: 0 on success, 1 for usage or conversion
// errors, 2 when the input file does not exist.
func run(outW, errW io.Writer, inR io.Reader, args []string) int {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(errW, exitErr.Message)
			return exitErr.Code
		}
		fmt.Fprintln(errW, err)
		return 1
	}
	if shouldExit {
		return 0
	}

	converter := app.NewApp(outW, errW, appConfig)
	runErr := converter.Run(context.Background())

	// The hold applies to every exit path of the no-arg launch, success
	// or failure, so a double-click window stays readable.
	if appConfig.HoldOnExit {
		holdOpen(outW, inR)
	}

	if runErr != nil {
		if errors.Is(runErr, app.ErrInputNotFound) {
			fmt.Fprintf(errW, "ERROR: %v\n", runErr)
			return 2
		}
		fmt.Fprintln(errW, runErr)
		return 1
	}
	return 0
}

// holdOpen prompts and waits for a newline before the process exits.
func holdOpen(outW io.Writer, inR io.Reader) {
	fmt.Fprint(outW, "\nPress Enter to close...")
	_, _ = bufio.NewReader(inR).ReadString('\n')
}
