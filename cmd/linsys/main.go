// Package main is the linsys command. It loads a linear-system description,
// runs the diagonal-dominance and residual diagnostics and prints a report.
//
//	linsys -system system.yaml [-config linsys.yaml]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// errNoDiagnostic is returned when every diagnostic rejected its input.
var errNoDiagnostic = errors.New("no diagnostic could be computed")

// run parses args, wires config and logging and writes the report to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("linsys", flag.ContinueOnError)
	fs.SetOutput(stderr)
	systemPath := fs.String("system", "", "path to the system file (YAML or JSON)")
	configPath := fs.String("config", "", "optional path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *systemPath == "" {
		fs.Usage()
		return errors.New("-system is required")
	}

	app, err := newApp(*configPath, stderr)
	if err != nil {
		return err
	}

	rep, err := app.diagnose(*systemPath)
	if err != nil {
		return err
	}
	if err = app.write(stdout, rep); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if !rep.anyValid() {
		return errNoDiagnostic
	}

	return nil
}
