// Command noviq runs noviq programs.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/kr/pretty"

	"go.creack.net/noviq/config"
	"go.creack.net/noviq/lexer"
	"go.creack.net/noviq/parser"
	"go.creack.net/noviq/version"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func usage(w io.Writer) {
	fmt.Fprintf(w, `USAGE:
    noviq <file%[1]s>         Run a Noviq program
    noviq -i                 Start an interactive session
    noviq -tokens <file>     Print the token stream
    noviq -ast <file>        Print the parsed program
    noviq -config <path>     Use a configuration file (default %[2]s)
    noviq -version           Show version information
    noviq -help              Show this help message

EXAMPLES:
    noviq examples/hello%[1]s
`, config.Default().Extension, config.DefaultPath)
}

func banner(w io.Writer) {
	fmt.Fprintf(w, "Noviq Programming Language\nVersion: %s\n\n%s\n\n", version.String(), version.Description)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, version.Name+": ", 0)

	fs := flag.NewFlagSet(version.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { banner(stderr); usage(stderr) }

	var (
		showVersion bool
		interactive = fs.Bool("i", false, "start an interactive session")
		dumpTokens  = fs.Bool("tokens", false, "print the token stream and exit")
		dumpAST     = fs.Bool("ast", false, "print the parsed program and exit")
		configPath  = fs.String("config", "", "configuration file")
	)
	fs.BoolVar(&showVersion, "version", false, "show version information")
	fs.BoolVar(&showVersion, "v", false, "show version information")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if showVersion {
		fmt.Fprintf(stdout, "Noviq %s\n", version.String())
		return exitOK
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Printf("%s.", err)
		return exitError
	}

	if *interactive {
		return runREPL(cfg, stdout, stderr)
	}

	if fs.NArg() == 0 {
		banner(stdout)
		usage(stdout)
		return exitOK
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	filename := fs.Arg(0)
	if cfg.Extension != "" && filepath.Ext(filename) != cfg.Extension {
		fmt.Fprintf(stderr, "Error: File must have %s extension\n", cfg.Extension)
		return exitUsage
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file '%s': %s\n", filename, err)
		return exitError
	}

	switch {
	case *dumpTokens:
		pretty.Fprintf(stdout, "%# v\n", lexer.Tokenize(string(src)))
		return exitOK
	case *dumpAST:
		prog, err := parser.ParseString(string(src))
		if err != nil {
			logger.Print(err)
			return exitError
		}
		pretty.Fprintf(stdout, "%# v\n", prog)
		return exitOK
	}

	if err := parser.Run(bytes.NewReader(src), stdin, stdout, stderr, cfg.Options()...); err != nil {
		return exitError
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
