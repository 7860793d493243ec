// Copyright 2021, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Command csv2xlsx converts CSV files into the sheets of one XLSX workbook.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/peterbourgon/ff/v3/ffyaml"

	"github.com/UNO-SOFT/spreadsheet/v2"
	"github.com/UNO-SOFT/spreadsheet/v2/xlsx"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		logger.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

type config struct {
	charset, title, creator, password string
	maxRows                           int
	inline, autoSheets, autoFilter    bool
	numbers                           bool
}

func Main() error {
	var cfg config
	fs := flag.NewFlagSet("csv2xlsx", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	fs.StringVar(&cfg.charset, "charset", spreadsheet.EncName, "csv charset name")
	fs.BoolVar(&cfg.inline, "inline", true, "inline strings (no shared strings table)")
	fs.IntVar(&cfg.maxRows, "max-rows", xlsx.MaxRowCount, "maximum number of rows per sheet")
	fs.BoolVar(&cfg.autoSheets, "auto-sheets", true, "continue on a new sheet when a sheet is full")
	fs.StringVar(&cfg.title, "title", "", "document title")
	fs.StringVar(&cfg.creator, "creator", "", "document creator")
	fs.BoolVar(&cfg.autoFilter, "autofilter", false, "auto filter on the header row")
	fs.StringVar(&cfg.password, "password", "", "protect the sheets with this password")
	fs.BoolVar(&cfg.numbers, "numbers", false, "store numeric looking fields as numbers")
	_ = fs.String("config", "", "YAML config file")

	app := ffcli.Command{Name: "csv2xlsx", FlagSet: fs,
		ShortUsage: "csv2xlsx [flags] output.xlsx [sheetname:]input.csv...",
		Options: []ff.Option{
			ff.WithEnvVarPrefix("CSV2XLSX"),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
			ff.WithAllowMissingConfigFile(true),
		},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) < 1 {
				return flag.ErrHelp
			}
			return convert(ctx, cfg, args[0], args[1:])
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.ParseAndRun(ctx, os.Args[1:])
}

func convert(ctx context.Context, cfg config, out string, inputs []string) error {
	opts := xlsx.NewOptions()
	opts.Logger = logger
	opts.InlineStrings = cfg.inline
	opts.MaxRowsPerSheet = cfg.maxRows
	opts.AutoNewSheet = cfg.autoSheets
	opts.Properties.Title = cfg.title
	opts.Properties.Creator = cfg.creator
	opts.Properties.Application = "csv2xlsx"

	w := xlsx.New(opts)
	var err error
	if out == "" || out == "-" {
		err = w.OpenToWriter(os.Stdout)
	} else {
		err = w.OpenToFile(out)
	}
	if err != nil {
		return err
	}
	defer w.Close()

	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for i, fn := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		sheetName := fmt.Sprintf("Sheet%d", i+1)
		if i := strings.IndexByte(fn, ':'); i >= 0 {
			sheetName, fn = fn[:i], fn[i+1:]
		} else if fn != "" && fn != "-" {
			sheetName = strings.TrimSuffix(filepath.Base(fn), ".csv")
		}
		if err := copyFile(ctx, w, cfg, sheetName, fn); err != nil {
			return fmt.Errorf("%q: %w", fn, err)
		}
	}
	return w.Close()
}

func copyFile(ctx context.Context, w *xlsx.Writer, cfg config, sheetName, fn string) error {
	cr, err := spreadsheet.OpenCsv(fn, cfg.charset)
	if err != nil {
		return err
	}
	defer cr.Close()
	logger.Debug("open", "file", fn, "sheet", sheetName, "separator", string(cr.Comma))

	row, err := cr.Read()
	if err != nil {
		return err
	}
	cols := make([]spreadsheet.Column, len(row))
	for i, r := range row {
		cols[i].Name = r
		cols[i].Header = cols[i].Header.Bold()
	}
	sheet, err := w.NewSheet(sheetName, cols)
	if err != nil {
		return err
	}
	first, err := w.CurrentSheet()
	if err != nil {
		return err
	}
	if err = protect(first, cfg, len(cols)); err != nil {
		return err
	}

	var rowI []any
	var n int
	for {
		if row, err = cr.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if n++; n%65536 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		rowI = rowI[:0]
		for _, s := range row {
			if cfg.numbers {
				rowI = append(rowI, spreadsheet.Number(s))
			} else {
				rowI = append(rowI, s)
			}
		}
		if err := sheet.AppendRow(rowI...); err != nil {
			return err
		}
	}
	// rows may have continued on new sheets
	if cur, err := w.CurrentSheet(); err == nil && cur != first {
		for _, s := range w.Sheets()[first.Index()+1:] {
			if err := protect(s, cfg, 0); err != nil {
				return err
			}
		}
	}
	logger.Info("copied", "file", fn, "sheet", sheetName, "rows", n)
	return sheet.Close()
}

// protect sets the auto filter on the header row (when columns > 0)
// and the sheet protection of s, as configured.
func protect(s *xlsx.Sheet, cfg config, columns int) error {
	if cfg.autoFilter && columns > 0 {
		r := xlsx.NewRange(0, 1, columns-1, 1)
		if err := s.SetAutoFilter(&r); err != nil {
			return err
		}
		s.SetPrintTitleRows("$1:$1")
	}
	if cfg.password != "" {
		s.SetSheetProtection(&xlsx.SheetProtection{
			Password: cfg.password, LockSheet: true, LockObjects: true, LockScenarios: true,
		})
	}
	return nil
}
