package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	HTTP
}

type App struct {
	WatchDirectory        string
	ReportsDirectory      string
	DirectoryScanInterval time.Duration
	ReportFormats         []string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	MaxConns int32
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			WatchDirectory:        cmd.String("watch-dir"),
			ReportsDirectory:      cmd.String("reports-dir"),
			DirectoryScanInterval: cmd.Duration("scan-interval"),
			ReportFormats:         cmd.StringSlice("report-formats"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			MaxConns: cmd.Int32("pg-max-conns"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	var errs []error

	for _, req := range []struct{ name, value string }{
		{"watch-dir", c.WatchDirectory},
		{"reports-dir", c.ReportsDirectory},
		{"pg-username", c.PostgreSQL.Username},
		{"pg-password", c.PostgreSQL.Password},
		{"pg-dbname", c.DBName},
	} {
		if req.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", req.name))
		}
	}

	if c.DirectoryScanInterval <= 0 {
		errs = append(errs, fmt.Errorf("scan-interval must be positive, got %s", c.DirectoryScanInterval))
	}

	if c.MaxConns < 0 {
		errs = append(errs, fmt.Errorf("pg-max-conns must not be negative, got %d", c.MaxConns))
	}

	return errors.Join(errs...)
}
