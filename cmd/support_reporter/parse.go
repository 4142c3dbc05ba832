package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kurochkinivan/support_reporter/internal/domain"
	"github.com/kurochkinivan/support_reporter/internal/supportpoint"
	"github.com/urfave/cli/v3"
)

type parseOutput struct {
	Record      *domain.ParsedRecord     `json:"record"`
	Diagnostics supportpoint.Diagnostics `json:"diagnostics"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a report body and print the support point record as JSON",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "date",
				Usage: "Stamp the record with `YYYY-MM-DD` instead of today",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail when the record lacks title, at or browser",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			now, err := parseDate(cmd.String("date"))
			if err != nil {
				return err
			}

			body, err := readBody(cmd)
			if err != nil {
				return err
			}

			record, diag := supportpoint.Extract(string(body), now)

			enc := json.NewEncoder(cmd.Root().Writer)
			enc.SetIndent("", "  ")
			if err := enc.Encode(parseOutput{Record: record, Diagnostics: diag}); err != nil {
				return fmt.Errorf("failed to encode record: %w", err)
			}

			if cmd.Bool("strict") {
				if err := record.Validate(); err != nil {
					return fmt.Errorf("invalid support point record: %w", err)
				}
			}

			return nil
		},
	}
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}

	t, err := time.ParseInLocation(time.DateOnly, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return t, nil
}

func readBody(cmd *cli.Command) (_ []byte, err error) {
	name := cmd.Args().First()
	if name == "" || name == "-" {
		return io.ReadAll(cmd.Root().Reader)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return io.ReadAll(f)
}
