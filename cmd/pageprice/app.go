package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pageprice/internal/config"
	"github.com/alexisbeaulieu97/pageprice/internal/logger"
)

// setup loads the catalog and builds the logger shared by every command.
// Without --log-file, logs go to fallback.
func setup(flags *rootFlags, fallback io.Writer, component, operation string) (*config.Pricing, *logger.Logger, func(), error) {
	writer := fallback
	humanReadable := true
	closer := func() {}

	if flags.logFile != "" {
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, nil, newCommandError(operation, "opening log file", err, "Check that the log directory exists and is writable.")
		}
		writer = file
		humanReadable = false
		closer = func() { _ = file.Close() }
	}

	log, err := logger.New(logger.Options{
		Level:         flags.logLevel,
		HumanReadable: humanReadable,
		Writer:        writer,
		Component:     component,
	})
	if err != nil {
		closer()
		return nil, nil, nil, newCommandError(operation, "configuring logger", err, "Use one of: debug, info, warn, error.")
	}

	if flags.catalogPath == "" {
		return config.DefaultPricing(), log, closer, nil
	}

	p, err := config.LoadCatalog(flags.catalogPath)
	if err != nil {
		log.Error(err, "catalog load failed", "catalog", flags.catalogPath)
		closer()
		return nil, nil, nil, newCommandError(operation, fmt.Sprintf("loading catalog %q", flags.catalogPath), err, "Fix the catalog field named in the error and try again.")
	}
	log.Debug("catalog loaded", "catalog", flags.catalogPath, "tiers", p.Table.Len())

	return p, log, closer, nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
