package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gamma-omg/tradeview/internal/aggregate"
	"github.com/gamma-omg/tradeview/internal/dashboard"
)

// CsvSeriesDump writes rows under a header emitted with the first row.
type CsvSeriesDump struct {
	w           *csv.Writer
	header      []string
	writeHeader bool
}

func NewCsvSeriesDump(w io.Writer, header ...string) *CsvSeriesDump {
	return &CsvSeriesDump{csv.NewWriter(w), header, true}
}

func (d *CsvSeriesDump) Dump(row ...string) error {
	if d.writeHeader {
		if err := d.w.Write(d.header); err != nil {
			return fmt.Errorf("failed to write series csv header: %w", err)
		}
		d.writeHeader = false
	}

	if err := d.w.Write(row); err != nil {
		return fmt.Errorf("failed to dump series row: %w", err)
	}

	d.w.Flush()
	return d.w.Error()
}

func DumpEquity(w io.Writer, curve []aggregate.EquityPoint) error {
	d := NewCsvSeriesDump(w, "time", "result", "cumulative")
	for _, p := range curve {
		if err := d.Dump(p.Time.Format(time.RFC3339), num(p.Value), num(p.Cumulative)); err != nil {
			return err
		}
	}
	return nil
}

func DumpBuckets(w io.Writer, buckets []aggregate.Bucket) error {
	d := NewCsvSeriesDump(w, "period", "total", "count")
	for _, b := range buckets {
		if err := d.Dump(b.Key, num(b.Total), strconv.Itoa(b.Count)); err != nil {
			return err
		}
	}
	return nil
}

func DumpDailyBalance(w io.Writer, days []aggregate.DailyBalance) error {
	d := NewCsvSeriesDump(w, "day", "result", "balance", "operations")
	for _, b := range days {
		if err := d.Dump(b.Day, num(b.Result), num(b.Balance), strconv.Itoa(b.Operations)); err != nil {
			return err
		}
	}
	return nil
}

func DumpAssets(w io.Writer, assets []aggregate.AssetTotal) error {
	d := NewCsvSeriesDump(w, "asset", "total", "count")
	for _, a := range assets {
		if err := d.Dump(a.Asset, num(a.Total), strconv.Itoa(a.Count)); err != nil {
			return err
		}
	}
	return nil
}

func DumpDrawdown(w io.Writer, v *dashboard.View) error {
	d := NewCsvSeriesDump(w, "time", "peak", "drawdown_pct", "drawdown_points")
	for _, s := range v.Drawdown.Samples {
		err := d.Dump(
			v.Equity[s.Index].Time.Format(time.RFC3339),
			num(s.PeakSoFar),
			num(s.DrawdownPercent),
			num(s.DrawdownPoints))
		if err != nil {
			return err
		}
	}
	return nil
}

// Export writes every series of the view as a csv file into dir.
func Export(dir string, v *dashboard.View) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}

	files := []struct {
		name string
		dump func(io.Writer) error
	}{
		{"equity.csv", func(w io.Writer) error { return DumpEquity(w, v.Equity) }},
		{"monthly.csv", func(w io.Writer) error { return DumpBuckets(w, v.Monthly) }},
		{"daily.csv", func(w io.Writer) error { return DumpDailyBalance(w, v.DailyBalance) }},
		{"assets.csv", func(w io.Writer) error { return DumpAssets(w, v.Assets) }},
		{"drawdown.csv", func(w io.Writer) error { return DumpDrawdown(w, v) }},
	}

	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.dump); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, cerr))
		}
	}()

	return write(f)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
