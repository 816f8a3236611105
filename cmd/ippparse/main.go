// Command ippparse translates IPPcode24 source read on standard input
// into an XML document on standard output.
package main

import (
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LenaMarochkina/IPP-Project1/api"
	"github.com/LenaMarochkina/IPP-Project1/config"
	"github.com/LenaMarochkina/IPP-Project1/parse"
	"github.com/LenaMarochkina/IPP-Project1/verify"
)

const (
	exitOK       = 0
	exitUsage    = 10
	exitInput    = 11
	exitOutput   = 12
	exitHeader   = 21
	exitOpcode   = 22
	exitSyntax   = 23
	exitInternal = 99
)

var (
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ippparse",
	Short: "IPPcode24 to XML translator",
	Long: `Ippparse reads IPPcode24 source code on standard input, checks its
lexical, syntactic and static-semantic rules, and writes the XML
representation of the program to standard output.

The exit code names the first problem found: 21 for a missing or
malformed header, 22 for an unknown opcode, 23 for any other
syntactic or semantic fault. Translation stops at the first error
and produces no document.

Set IPP_TRACE=1 to dump the instruction table to standard error and
IPP_LINT=1 to append an advisory label report there.
`,
	Args: cobra.NoArgs,
	Run:  runTranslate,
}

func main() {
	cfg = config.Load()

	logger = buildLogger(cfg.LogLevel).
		With(zap.String("run_id", uuid.New().String()))
	atexit.Register(func() { _ = logger.Sync() })

	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(exitUsage)
	}

	atexit.Exit(exitOK)
}

func runTranslate(_ *cobra.Command, _ []string) {
	if _, err := os.Stdin.Stat(); err != nil {
		logger.Error("cannot open standard input", zap.Error(err))
		atexit.Exit(exitInput)
	}

	translator := api.TranslatorBuilder{}.
		WithOutput(os.Stdout).
		WithLogger(logger).
		WithTableDump(cfg.Trace).
		Build("Translator")

	prog, err := translator.Translate(os.Stdin)
	if err != nil {
		atexit.Exit(exitCode(err))
	}

	if cfg.Lint {
		verify.GenerateReport(prog).WriteReport(os.Stderr)
	}

	logger.Info("translation succeeded",
		zap.Int("instructions", prog.Len()))
}

// exitCode maps a translation failure to the exit code contract of
// the tool. Failures that are not validation errors come from writing
// the document.
func exitCode(err error) int {
	var perr *parse.Error
	if !errors.As(err, &perr) {
		return exitOutput
	}

	switch perr.Kind {
	case parse.ErrHeader:
		return exitHeader
	case parse.ErrUnknownOpcode:
		return exitOpcode
	case parse.ErrMultipleOpcode, parse.ErrArity,
		parse.ErrOperandSyntax, parse.ErrUndeclaredVar:
		return exitSyntax
	}

	return exitInternal
}

func buildLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(lvl)

	log, err := conf.Build()
	if err != nil {
		return zap.NewNop()
	}

	return log
}
