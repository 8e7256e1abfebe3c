package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"transformer-calc/internal/export"
	"transformer-calc/internal/fault"
	"transformer-calc/internal/format"
	"transformer-calc/internal/logging"
	"transformer-calc/internal/ratings"
)

// AllTables selects every rating table for -table.
const AllTables = "all"

// RunnerConfig holds all CLI options for one invocation.
type RunnerConfig struct {
	// Calculation
	Mode   string
	Fields fault.Input

	// Rating tables
	Table  string
	Rating float64 // 0 = not set

	// Output
	OutputTXT  string
	OutputPDF  string
	OutputCSV  string
	OutputXLSX string
	Verbose    bool

	// GUI
	Theme string
	Nav   string
}

// WantsGUI reports whether the flags only carry GUI settings.
func (c *RunnerConfig) WantsGUI() bool {
	return c.Mode == "" && c.Table == "" && c.OutputCSV == "" && c.OutputXLSX == ""
}

// Run executes the calculation, table printing and exports requested by cfg,
// writing human-readable output to w.
func Run(cfg RunnerConfig, w io.Writer) error {
	log := logging.New("cli")
	now := time.Now()

	if cfg.Table != "" && cfg.Rating == 0 {
		if err := printTables(w, cfg); err != nil {
			return err
		}
	}

	if cfg.Mode != "" {
		result, err := Calculate(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, format.FormatResult(result))

		if cfg.OutputTXT != "" {
			if err := export.WriteTXT(cfg.OutputTXT, result); err != nil {
				return fmt.Errorf("save TXT: %w", err)
			}
			log.Info("report saved", "path", cfg.OutputTXT)
		}
		if cfg.OutputPDF != "" {
			if err := export.WriteResultPDF(cfg.OutputPDF, result, now); err != nil {
				return fmt.Errorf("save PDF: %w", err)
			}
			log.Info("report saved", "path", cfg.OutputPDF)
		}
	}

	if cfg.OutputCSV != "" {
		paths, err := export.WriteTablesCSV(cfg.OutputCSV, now)
		if err != nil {
			return fmt.Errorf("export CSV: %w", err)
		}
		for _, p := range paths {
			log.Info("table exported", "path", p)
		}
	}
	if cfg.OutputXLSX != "" {
		if err := export.WriteTablesXLSX(cfg.OutputXLSX); err != nil {
			return fmt.Errorf("export XLSX: %w", err)
		}
		log.Info("tables exported", "path", cfg.OutputXLSX)
	}

	return nil
}

// Calculate runs the calculation named by cfg.Mode. When cfg.Table and
// cfg.Rating select a table row, the row prefills the inputs and explicit
// field flags override it.
func Calculate(cfg RunnerConfig) (fault.Result, error) {
	mode, err := fault.ParseMode(cfg.Mode)
	if err != nil {
		return fault.Result{}, err
	}

	in := fault.Input{}
	if cfg.Table != "" && cfg.Rating != 0 {
		row, ok := ratings.Lookup(ratings.TableName(cfg.Table), cfg.Rating)
		if !ok {
			return fault.Result{}, fmt.Errorf("no %s row rated %v", cfg.Table, cfg.Rating)
		}
		prefill, err := InputFromRecord(mode, row)
		if err != nil {
			return fault.Result{}, err
		}
		for k, v := range prefill {
			in[k] = v
		}
		logging.New("cli").Debug("inputs prefilled", "table", cfg.Table, "rating", cfg.Rating)
	}
	for k, v := range cfg.Fields {
		in[k] = v
	}

	return fault.Compute(mode, in)
}

// InputFromRecord converts a rating table row into calculation inputs. Only
// rows that carry voltages and an impedance can be converted; detailed mode
// still needs Zp and R1+R2 from the caller.
func InputFromRecord(mode fault.Mode, r ratings.Record) (fault.Input, error) {
	var vp, vs, kva, zPct float64
	switch row := r.(type) {
	case ratings.Distribution11kV:
		vp, vs, kva, zPct = row.PrimaryVoltage, row.SecondaryVoltage, row.KVA, row.ImpedancePct
	case ratings.PowerTransformer:
		var err error
		vp, vs, err = parseVoltageLabel(row.VoltageLabel)
		if err != nil {
			return nil, err
		}
		kva, zPct = row.MVA*1000, row.ImpedancePct
	default:
		return nil, fmt.Errorf("%s rows have no voltage or impedance data", r.Table())
	}

	in := fault.Input{
		fault.KeyVp:   num(vp),
		fault.KeyVs:   num(vs),
		fault.KeyZPct: num(zPct),
	}
	if mode == fault.Detailed {
		in[fault.KeyVA] = num(kva * 1000)
	} else {
		in[fault.KeyKVA] = num(kva)
	}
	return in, nil
}

// parseVoltageLabel reads labels like "132/11 kV" as primary and secondary volts.
func parseVoltageLabel(label string) (float64, float64, error) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(label), "kV"))
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid voltage label %q", label)
	}
	hv, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid voltage label %q", label)
	}
	lv, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid voltage label %q", label)
	}
	return hv * 1000, lv * 1000, nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func printTables(w io.Writer, cfg RunnerConfig) error {
	names := ratings.Names()
	if cfg.Table != AllTables {
		name, err := ratings.ParseTableName(cfg.Table)
		if err != nil {
			return err
		}
		names = []ratings.TableName{name}
	}
	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := PrintTable(w, name); err != nil {
			return err
		}
	}
	return nil
}
