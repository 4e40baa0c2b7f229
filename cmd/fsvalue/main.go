// fsvalue encodes JSON, YAML or CBOR input into Firestore wire values and
// prints them, or inspects wire values produced elsewhere.
//
//	fsvalue encode [--input json|yaml|cbor] [--output tree|json|proto] [--document] [file]
//	fsvalue inspect [--input json|proto] [file]
//	fsvalue timestamp <RFC3339>
//	fsvalue -i
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	firestorecodec "github.com/wippyai/firestore-codec"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var (
		interactive bool
		verbose     bool
	)
	flagSet := pflag.NewFlagSet("fsvalue", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	flagSet.BoolVarP(&interactive, "interactive", "i", false, "interactive mode with TUI")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log codec activity to stderr")
	flagSet.Usage = func() { printUsage(flagSet) }
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	firestorecodec.SetLogger(logger)

	if interactive {
		return runInteractive(logger)
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printUsage(flagSet)
		return fmt.Errorf("missing command")
	}

	out := output{w: stdout, styles: newStyles(isTerminal(stdout))}
	cmd, cmdArgs := rest[0], rest[1:]
	logger.Debug("running command", zap.String("command", cmd), zap.Strings("args", cmdArgs))

	switch cmd {
	case "encode":
		return runEncode(cmdArgs, stdin, out, logger)
	case "inspect":
		return runInspect(cmdArgs, stdin, out)
	case "timestamp":
		return runTimestamp(cmdArgs, out)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printUsage(flagSet *pflag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: fsvalue encode [--input json|yaml|cbor] [--output tree|json|proto] [--document] [file]")
	fmt.Fprintln(os.Stderr, "       fsvalue inspect [--input json|proto] [file]")
	fmt.Fprintln(os.Stderr, "       fsvalue timestamp <RFC3339>")
	fmt.Fprintln(os.Stderr, "       fsvalue -i  (interactive mode)")
	fmt.Fprintln(os.Stderr)
	flagSet.PrintDefaults()
}
