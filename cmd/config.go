package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"spacefleet/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Configuration keys, also the environment variable names.
const (
	keyHTTPPort       = "HTTP_PORT"
	keyStoreDriver    = "STORE_DRIVER"
	keyDBHost         = "DB_HOST"
	keyDBPort         = "DB_PORT"
	keyDBUser         = "DB_USER"
	keyDBPassword     = "DB_PASSWORD"
	keyDBName         = "DB_NAME"
	keyDBSslMode      = "DB_SSLMODE"
	keyDBDriver       = "DB_DRIVER"
	keySQLitePath     = "SQLITE_PATH"
	keyReportSchedule = "REPORT_SCHEDULE"
	keySeedFile       = "SEED_FILE"
	keyLogLevel       = "LOG_LEVEL"
	keyPrintReport    = "PRINT_REPORT"
)

type Config struct {
	HTTPPort       string
	StoreDriver    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	DBDriver       string
	SQLitePath     string
	ReportSchedule string
	SeedFile       string
	LogLevel       string
	PrintReport    bool
}

// LoadConfig resolves the configuration from, lowest priority first, built-in
// defaults, the env file, the process environment and command-line flags.
// A missing env file is not an error.
func LoadConfig(args []string) (Config, error) {
	flags := pflag.NewFlagSet("spacefleet", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "path of the env file to load")
	flags.String("http-port", "8080", "HTTP listen port")
	flags.String("store", StoreMemory, "store driver: memory, postgres or sqlite")
	flags.String("seed", "", "YAML fleet fixture applied at startup")
	flags.String("report-schedule", jobs.DefaultReportSchedule, "cron schedule of the report job, empty disables it")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("print-report", false, "print the fleet report after seeding and exit")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault(keyHTTPPort, "8080")
	v.SetDefault(keyStoreDriver, StoreMemory)
	v.SetDefault(keyDBHost, "localhost")
	v.SetDefault(keyDBPort, "5432")
	v.SetDefault(keyDBUser, "postgres")
	v.SetDefault(keyDBPassword, "")
	v.SetDefault(keyDBName, "spacefleet")
	v.SetDefault(keyDBSslMode, "disable")
	v.SetDefault(keyDBDriver, "pgx")
	v.SetDefault(keySQLitePath, "spacefleet.db")
	v.SetDefault(keyReportSchedule, jobs.DefaultReportSchedule)
	v.SetDefault(keySeedFile, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyPrintReport, false)

	fileValues, err := godotenv.Read(*envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read env file %s: %w", *envFile, err)
	}
	for key, value := range fileValues {
		v.SetDefault(key, value)
	}

	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	flagKeys := map[string]string{
		"http-port":       keyHTTPPort,
		"store":           keyStoreDriver,
		"seed":            keySeedFile,
		"report-schedule": keyReportSchedule,
		"log-level":       keyLogLevel,
		"print-report":    keyPrintReport,
	}
	for flag, key := range flagKeys {
		if err = v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return Config{}, err
		}
	}

	config := Config{
		HTTPPort:       v.GetString(keyHTTPPort),
		StoreDriver:    strings.ToLower(v.GetString(keyStoreDriver)),
		DBHost:         v.GetString(keyDBHost),
		DBPort:         v.GetString(keyDBPort),
		DBUser:         v.GetString(keyDBUser),
		DBPassword:     v.GetString(keyDBPassword),
		DBName:         v.GetString(keyDBName),
		DBSslMode:      v.GetString(keyDBSslMode),
		DBDriver:       v.GetString(keyDBDriver),
		SQLitePath:     v.GetString(keySQLitePath),
		ReportSchedule: v.GetString(keyReportSchedule),
		SeedFile:       v.GetString(keySeedFile),
		LogLevel:       strings.ToLower(v.GetString(keyLogLevel)),
		PrintReport:    v.GetBool(keyPrintReport),
	}
	return config, config.Validate()
}

// Validate rejects unknown store drivers and log levels.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StorePostgres, StoreSQLite:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level, info when it is not valid.
func (c Config) SlogLevel() slog.Level {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
	return level, nil
}
