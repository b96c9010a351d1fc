// Package rosterreport runs the one-shot report over a character roster CSV.
// Outputs land next to the input in the data folder and are rewritten on
// every run, except the session log which is only ever created.
package rosterreport

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/louisbranch/tavernstats/internal/platform/otel"
	"github.com/louisbranch/tavernstats/internal/platform/viewer"
	"github.com/louisbranch/tavernstats/internal/render"
	"github.com/louisbranch/tavernstats/internal/roster"
	"github.com/louisbranch/tavernstats/internal/sessionlog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"
)

// Run executes the report using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return run(ctx, cfg, out, defaultDeps(cfg))
}

func run(ctx context.Context, cfg Config, out io.Writer, d deps) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	tag, err := cfg.validate()
	if err != nil {
		return err
	}
	printer := message.NewPrinter(tag)
	paths := cfg.Paths()
	opts := render.Options{Palette: cfg.Palette}

	var table roster.Table
	if err := step(ctx, "load", func(ctx context.Context) error {
		t, err := roster.Load(paths.Input)
		if err != nil {
			return err
		}
		if err := t.RequireColumns(roster.ColumnRace, roster.ColumnClass, roster.ColumnSubclass); err != nil {
			return err
		}
		attrs(ctx, attribute.Int("roster.rows", t.Len()))
		table = t
		return nil
	}); err != nil {
		return err
	}

	if err := os.MkdirAll(paths.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	var summary roster.Summary
	if err := step(ctx, "summarize", func(ctx context.Context) error {
		s, err := roster.Summarize(table)
		if err != nil {
			return err
		}
		attrs(ctx,
			attribute.Int("roster.classes", len(s.Classes.Counts)),
			attribute.Int("roster.races", len(s.Races.Counts)),
			attribute.Bool("roster.popularity", s.Popularity != nil),
		)
		summary = s
		return s.Write(out, printer)
	}); err != nil {
		return err
	}

	var matrix roster.CountMatrix
	if err := step(ctx, "aggregate", func(ctx context.Context) error {
		m, err := roster.CrossTab(table, roster.ColumnRace, roster.ColumnClass, roster.ColumnSubclass)
		if err != nil {
			return err
		}
		attrs(ctx, attribute.Int("matrix.total", m.Total()))
		matrix = m
		printer.Fprintf(out, "\n== %s × %s ==\n", m.RowLabel, m.ColumnLabel)
		if err := m.WriteText(out, printer); err != nil {
			return err
		}
		if err := roster.WriteMatrixFile(paths.Matrix, m); err != nil {
			return err
		}
		printer.Fprintf(out, "\nSaved matrix CSV → %s\n", paths.Matrix)
		return nil
	}); err != nil {
		return err
	}

	if err := step(ctx, "render", func(ctx context.Context) error {
		if err := render.Bar(paths.ClassBar, summary.Classes, opts); err != nil {
			return err
		}
		printer.Fprintf(out, "Saved class bar → %s\n", paths.ClassBar)
		if err := render.Pie(paths.RacePie, summary.Races, opts); err != nil {
			return err
		}
		printer.Fprintf(out, "Saved race pie → %s\n", paths.RacePie)
		if err := render.Heatmap(paths.Heatmap, matrix, opts); err != nil {
			return err
		}
		printer.Fprintf(out, "Saved heatmap → %s\n", paths.Heatmap)
		return nil
	}); err != nil {
		return err
	}

	if err := step(ctx, "bootstrap", func(ctx context.Context) error {
		created, err := sessionlog.Bootstrap(paths.Sessions)
		if err != nil {
			return err
		}
		attrs(ctx, attribute.Bool("sessionlog.created", created))
		if created {
			printer.Fprintf(out, "Created sessions log template → %s\n", paths.Sessions)
		}
		return nil
	}); err != nil {
		return err
	}

	viewer.OpenAll(ctx, d.opener, paths.Images()...)
	return nil
}

// step runs fn inside a span named after the pipeline step. A done context
// stops the run before the step starts.
func step(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx, span := otel.Tracer().Start(ctx, "rosterreport."+name)
	defer span.End()
	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func attrs(ctx context.Context, kv ...attribute.KeyValue) {
	trace.SpanFromContext(ctx).SetAttributes(kv...)
}
