// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvfuzzy/model"
)

// batchJob is one CSV row: its position and its query.
type batchJob struct {
	line   int
	values map[string]float64
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers   int
		cacheSize int
	)

	cmd := &cobra.Command{
		Use:   "batch [file.csv]",
		Short: "Evaluate every row of a CSV file of inputs",
		Long: `Read a CSV whose header names the input domains, evaluate each row and
write the rows back with one extra column holding the crisp output.
Reads stdin when no file is given or the file is "-".

Rows are evaluated concurrently; the output keeps the input order.
Identical rows are answered from an LRU cache of --cache entries.`,
		Example: `  printf 'delay,servers,util\n0.25,0.5,0.7\n0.1,0.9,0.3\n' | lvfuzzy batch`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrapf(err, "open %q", args[0])
				}
				defer f.Close()
				in = f
			}
			header, jobs, err := readBatch(in)
			if err != nil {
				return err
			}

			m, err := a.openModel()
			if err != nil {
				return err
			}
			memo, err := model.NewMemo(m, cacheSize)
			if err != nil {
				return err
			}
			out, err := runBatch(cmd.Context(), memo, jobs, workers)
			if err != nil {
				return err
			}
			a.log.Info("batch done", zap.Int("rows", len(jobs)), zap.Int("distinct", memo.Len()))

			columns := append(append([]string(nil), header...), m.Output().Name())
			return writeBatch(cmd.OutOrStdout(), columns, jobs, header, out)
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.GOMAXPROCS(0), "concurrent evaluations")
	cmd.Flags().IntVar(&cacheSize, "cache", 1024, "LRU cache size for repeated rows")

	return cmd
}

// readBatch parses the header and every data row.
func readBatch(r io.Reader) ([]string, []batchJob, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	header, err := cr.Read()
	if err != nil {
		return nil, nil, errors.Wrap(err, "read CSV header")
	}
	seen := make(map[string]struct{}, len(header))
	for k := range header {
		header[k] = strings.TrimSpace(header[k])
		if _, dup := seen[header[k]]; dup {
			return nil, nil, errors.WithHint(
				errors.Wrapf(ErrBadInput, "CSV header names %q twice", header[k]),
				"give each input domain exactly one column",
			)
		}
		seen[header[k]] = struct{}{}
	}

	var jobs []batchJob
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrap(err, "read CSV")
		}
		line, _ := cr.FieldPos(0)
		values := make(map[string]float64, len(rec))
		for k, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, nil, errors.Mark(errors.Wrapf(err, "line %d column %q", line, header[k]), ErrBadInput)
			}
			values[header[k]] = v
		}
		jobs = append(jobs, batchJob{line: line, values: values})
	}

	return header, jobs, nil
}

// runBatch evaluates jobs with at most workers goroutines. The first
// failure cancels the remaining rows.
func runBatch(ctx context.Context, memo *model.Memo, jobs []batchJob, workers int) ([]float64, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]float64, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			v, err := memo.Infer(job.values)
			if err != nil {
				return errors.Wrapf(err, "line %d", job.line)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// writeBatch echoes each row in header order followed by its output.
func writeBatch(w io.Writer, columns []string, jobs []batchJob, header []string, out []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	rec := make([]string, len(columns))
	for i, job := range jobs {
		for k, name := range header {
			rec[k] = strconv.FormatFloat(job.values[name], 'g', -1, 64)
		}
		rec[len(header)] = strconv.FormatFloat(out[i], 'f', 6, 64)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
