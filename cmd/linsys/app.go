package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsys/dominance"
	"github.com/katalvlaran/linsys/internal/config"
	"github.com/katalvlaran/linsys/internal/logging"
	"github.com/katalvlaran/linsys/internal/system"
	"github.com/katalvlaran/linsys/residual"
)

// app carries the wired dependencies of one command invocation.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newApp(configPath string, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &app{
		cfg:    cfg,
		logger: logging.New(cfg.Log.Level, cfg.Log.Format, logOut),
	}, nil
}

// dominanceReport is the dominance section of a report. Error is set instead
// of the verdict when the input was rejected.
type dominanceReport struct {
	Dominant      *bool     `json:"dominant,omitempty"`
	ViolatingRows []int     `json:"violating_rows,omitempty"`
	Margins       []float64 `json:"margins,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// residualReport is the residual section of a report. It is omitted when the
// system file carries no x or b.
type residualReport struct {
	Norm     *float64 `json:"norm,omitempty"`
	Relative *float64 `json:"relative,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type report struct {
	System    string          `json:"system"`
	Format    string          `json:"format"`
	Rows      int             `json:"rows"`
	Cols      int             `json:"cols"`
	Dominance dominanceReport `json:"dominance"`
	Residual  *residualReport `json:"residual,omitempty"`
}

func (r *report) anyValid() bool {
	return r.Dominance.Dominant != nil || (r.Residual != nil && r.Residual.Norm != nil)
}

func (a *app) diagnose(path string) (*report, error) {
	sys, err := system.Load(path)
	if err != nil {
		a.logger.Error("system load failed",
			slog.String("operation", "system.Load"),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return nil, err
	}

	rows, cols := sys.A.Dims()
	a.logger.Debug("system loaded",
		slog.String("path", path),
		slog.String("format", sys.Format),
		slog.Int("rows", rows),
		slog.Int("cols", cols),
	)

	rep := &report{System: path, Format: sys.Format, Rows: rows, Cols: cols}
	rep.Dominance = a.dominance(sys)
	if sys.X != nil || sys.B != nil {
		res := a.residual(sys)
		rep.Residual = &res
	}

	return rep, nil
}

func (a *app) dominance(sys *system.System) dominanceReport {
	ok, err := dominance.IsDiagonallyDominant(sys.A)
	if err != nil {
		a.logger.Warn("dominance check rejected input",
			slog.String("operation", "dominance.IsDiagonallyDominant"),
			slog.String("format", sys.Format),
			slog.Any("error", err),
		)
		return dominanceReport{Error: err.Error()}
	}

	// The remaining calls share the validation that just passed.
	rows, _ := dominance.ViolatingRows(sys.A)
	out := dominanceReport{Dominant: &ok, ViolatingRows: rows}
	if a.cfg.Report.Margins {
		out.Margins, _ = dominance.Margins(sys.A)
	}
	a.logger.Info("dominance checked", slog.Bool("dominant", ok), slog.Int("violations", len(rows)))

	return out
}

func (a *app) residual(sys *system.System) residualReport {
	// An absent x or b stays a nil *mat.VecDense, which the residual
	// reports as matrix.ErrNilVector.
	n, err := residual.Norm(sys.A, sys.X, sys.B)
	if err != nil {
		a.logger.Warn("residual rejected input",
			slog.String("operation", "residual.Norm"),
			slog.Any("error", err),
		)
		return residualReport{Error: err.Error()}
	}
	rel, _ := residual.RelativeNorm(sys.A, sys.X, sys.B)
	a.logger.Info("residual computed", slog.Float64("norm", n), slog.Float64("relative", rel))

	return residualReport{Norm: &n, Relative: &rel}
}

func (a *app) write(w io.Writer, rep *report) error {
	if a.cfg.Report.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "system:         %s (%s, %d×%d)\n", rep.System, rep.Format, rep.Rows, rep.Cols)
	if d := rep.Dominance; d.Dominant != nil {
		fmt.Fprintf(&sb, "dominant:       %t\n", *d.Dominant)
		fmt.Fprintf(&sb, "violating_rows: %v\n", d.ViolatingRows)
		if d.Margins != nil {
			fmt.Fprintf(&sb, "margins:        %s\n", a.floats(d.Margins))
		}
	} else {
		fmt.Fprintf(&sb, "dominant:       invalid (%s)\n", d.Error)
	}
	if r := rep.Residual; r != nil {
		if r.Norm != nil {
			fmt.Fprintf(&sb, "residual_norm:  %s\n", a.float(*r.Norm))
			fmt.Fprintf(&sb, "relative:       %s\n", a.float(*r.Relative))
		} else {
			fmt.Fprintf(&sb, "residual_norm:  invalid (%s)\n", r.Error)
		}
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

func (a *app) float(v float64) string {
	return strconv.FormatFloat(v, 'g', a.cfg.Report.Precision, 64)
}

func (a *app) floats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = a.float(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
