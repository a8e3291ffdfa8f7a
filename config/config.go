// Package config builds the startup configuration from the command line,
// the environment and an optional dotenv file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/kndndrj/dbconsole/core"
	"github.com/kndndrj/dbconsole/core/format"
	"github.com/kndndrj/dbconsole/logging"
)

// ErrUsage is returned when the positional arguments are wrong.
var ErrUsage = errors.New("application needs three arguments to run: dbconsole [flags] <username> <password> <connectionURI>")

const (
	envMenu     = "DBCONSOLE_MENU"
	envFormat   = "DBCONSOLE_FORMAT"
	envPool     = "DBCONSOLE_POOL"
	envLogFile  = "DBCONSOLE_LOG_FILE"
	envLogLevel = "DBCONSOLE_LOG_LEVEL"
)

// Config holds the application configuration.
type Config struct {
	Target   *core.ConnectionTarget
	Menu     string
	Format   string
	Pooled   bool
	LogFile  string
	LogLevel logging.Level
}

// Load parses args (without the program name). Flags that are not given
// on the command line fall back to DBCONSOLE_* variables, which may come
// from the dotenv file. Parse errors and usage are written to output.
func Load(args []string, output io.Writer) (*Config, error) {
	fset := flag.NewFlagSet("dbconsole", flag.ContinueOnError)
	fset.SetOutput(output)

	var (
		menu     = fset.String("menu", "northwind", "menu to show: northwind, sakila or world")
		form     = fset.String("format", "record", "result format: record, decorated, table, json or csv")
		pool     = fset.Bool("pool", false, "keep one pooled database handle for the whole session")
		logFile  = fset.String("log-file", "", "append logs to this file (discarded when empty)")
		logLevel = fset.String("log-level", "info", "log level: debug, info, warn or error")
		envFile  = fset.String("env", "", "dotenv file to load (.env is tried when empty)")
	)

	fset.Usage = func() {
		fmt.Fprintln(output, "Usage: dbconsole [flags] <username> <password> <connectionURI>")
		fset.PrintDefaults()
	}

	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	if fset.NArg() != 3 {
		return nil, ErrUsage
	}

	if err := loadEnvFile(*envFile); err != nil {
		return nil, err
	}

	explicit := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	fromEnv := func(name, key string, value *string) {
		if v, ok := os.LookupEnv(key); ok && !explicit[name] {
			*value = v
		}
	}
	fromEnv("menu", envMenu, menu)
	fromEnv("format", envFormat, form)
	fromEnv("log-file", envLogFile, logFile)
	fromEnv("log-level", envLogLevel, logLevel)

	if v, ok := os.LookupEnv(envPool); ok && !explicit["pool"] {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envPool, err)
		}
		*pool = b
	}

	if _, err := format.New(*form); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		return nil, err
	}

	return &Config{
		Target:   core.NewConnectionTarget(fset.Arg(2), fset.Arg(0), fset.Arg(1)),
		Menu:     *menu,
		Format:   *form,
		Pooled:   *pool,
		LogFile:  *logFile,
		LogLevel: level,
	}, nil
}

// loadEnvFile loads the dotenv file at path. Without a path a missing
// .env in the working directory is not an error.
func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("godotenv.Load: %w", err)
		}
		return nil
	}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("godotenv.Load: %w", err)
	}
	return nil
}
