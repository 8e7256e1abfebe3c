package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"transformer-calc/internal/fault"
	"transformer-calc/internal/ratings"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config and prints help if no arguments or --help is provided.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{Fields: fault.Input{}}

	fs := flag.NewFlagSet("transformer-calc", flag.ContinueOnError)

	fs.StringVar(&cfg.Mode, "mode", "", "Calculation mode: simple or detailed")
	fs.StringVar(&cfg.Mode, "m", "", "Calculation mode: simple or detailed")

	// Field values stay text so the engine validates them the same way as
	// form input.
	fieldFlag(fs, cfg.Fields, fault.KeyVp, "vp", "Primary voltage (V)")
	fieldFlag(fs, cfg.Fields, fault.KeyVs, "vs", "Secondary voltage (V)")
	fieldFlag(fs, cfg.Fields, fault.KeyKVA, "kva", "Transformer rating (kVA, simple mode)")
	fieldFlag(fs, cfg.Fields, fault.KeyZPct, "z", "Impedance (%)")
	fieldFlag(fs, cfg.Fields, fault.KeyZp, "zp", "Primary impedance (ohm, detailed mode)")
	fieldFlag(fs, cfg.Fields, fault.KeyR1R2, "r1r2", "Secondary impedance R1+R2 (ohm, detailed mode)")
	fieldFlag(fs, cfg.Fields, fault.KeyVA, "va", "Transformer rating (VA, detailed mode)")

	fs.StringVar(&cfg.Table, "table", "", "Rating table to print, or 'all'")
	fs.StringVar(&cfg.Table, "t", "", "Rating table to print, or 'all'")
	var rating string
	fs.StringVar(&rating, "rating", "", "Row of -table (kVA or MVA) used to prefill the calculation")

	fs.StringVar(&cfg.OutputTXT, "txt", "", "Save the result report to a text file")
	fs.StringVar(&cfg.OutputPDF, "pdf", "", "Save the result report to a PDF file")
	fs.StringVar(&cfg.OutputCSV, "csv", "", "Export rating tables to CSV files with this base path")
	fs.StringVar(&cfg.OutputXLSX, "xlsx", "", "Export rating tables to an XLSX workbook")

	// Empty Theme or Nav keeps the setting saved by the GUI.
	fs.StringVar(&cfg.Theme, "theme", "", "GUI theme: dark or light")
	fs.StringVar(&cfg.Nav, "nav", "", "GUI navigation: page or dialog")

	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if cfg.Mode != "" {
		if _, err := fault.ParseMode(cfg.Mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			return nil, err
		}
	}

	if cfg.Table != "" && cfg.Table != AllTables {
		if _, err := ratings.ParseTableName(cfg.Table); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			return nil, err
		}
	}

	if rating != "" {
		v, err := strconv.ParseFloat(rating, 64)
		if err != nil {
			err = fmt.Errorf("invalid -rating %q", rating)
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			return nil, err
		}
		if cfg.Table == "" || cfg.Table == AllTables {
			fmt.Fprintf(os.Stderr, "Error: -rating requires a single -table\n\n")
			return nil, fmt.Errorf("-rating requires -table")
		}
		if cfg.Mode == "" {
			fmt.Fprintf(os.Stderr, "Error: -rating prefills a calculation and needs -mode\n\n")
			PrintUsage()
			return nil, fmt.Errorf("-rating requires -mode")
		}
		cfg.Rating = v
	}

	if cfg.Theme != "" && cfg.Theme != "dark" && cfg.Theme != "light" {
		err := fmt.Errorf("invalid -theme %q (want dark or light)", cfg.Theme)
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		return nil, err
	}
	if cfg.Nav != "" && cfg.Nav != "page" && cfg.Nav != "dialog" {
		err := fmt.Errorf("invalid -nav %q (want page or dialog)", cfg.Nav)
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		return nil, err
	}

	if (cfg.OutputTXT != "" || cfg.OutputPDF != "") && cfg.Mode == "" {
		fmt.Fprintf(os.Stderr, "Error: -txt and -pdf save a calculation and need -mode\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing -mode")
	}

	return cfg, nil
}

func fieldFlag(fs *flag.FlagSet, in fault.Input, key, name, usage string) {
	fs.Func(name, usage, func(s string) error {
		in[key] = s
		return nil
	})
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Transformer & Short Circuit Calculator

Usage: transformer-calc [flags]
       transformer-calc help    (show this message)

With no flags the graphical interface starts.

CALCULATION:
  -m, -mode <simple|detailed>  Calculation to run
  -vp <V>                      Primary voltage
  -vs <V>                      Secondary voltage
  -kva <kVA>                   Transformer rating (simple)
  -z <%%>                       Impedance
  -zp <ohm>                    Primary impedance (detailed)
  -r1r2 <ohm>                  Secondary impedance R1+R2 (detailed)
  -va <VA>                     Transformer rating (detailed)

RATING TABLES:
  -t, -table <name|all>        Print a rating table:
                               single_phase_240v, three_phase_480v,
                               distribution_11kv, power_transformers
  -rating <kVA|MVA>            With -mode, prefill inputs from a table row

OUTPUT:
  -txt <file>                  Save the result report as text
  -pdf <file>                  Save the result report as PDF
  -csv <base>                  Export all tables to <base>_<table>_<date>.csv
  -xlsx <file>                 Export all tables to one workbook
  -v, -verbose                 Verbose output

GUI:
  -theme <dark|light>          Colour theme (default: last used, else dark)
  -nav <page|dialog>           Open screens as pages or dialogs
                               (default: last used, else page)

EXAMPLES:
  # Maximum fault current of a 1000 kVA 11 kV/415 V transformer
  transformer-calc -mode simple -vp 11000 -vs 415 -kva 1000 -z 6

  # Earth fault loop with a PDF report
  transformer-calc -mode detailed -zp 0.46 -r1r2 0.2 -vp 11000 -vs 415 -va 1000000 -z 6 -pdf loop.pdf

  # Prefill from the 11 kV distribution table
  transformer-calc -mode simple -table distribution_11kv -rating 1600

  # Print every rating table and export them
  transformer-calc -table all -xlsx ratings.xlsx

  # Start the GUI with the light theme and dialog navigation
  transformer-calc -theme light -nav dialog

`)
}
