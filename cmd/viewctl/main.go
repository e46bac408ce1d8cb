package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"erpviews-backend/internal/fixtures"
	"erpviews-backend/internal/repository"
	"erpviews-backend/internal/table"
	"erpviews-backend/internal/views"
)

type cli struct {
	List   listCmd   `cmd:"" help:"List the registered pages."`
	Render renderCmd `cmd:"" help:"Render one page from the fixture data."`
	Stats  statsCmd  `cmd:"" help:"Print the summary figures of a fixture module."`
}

// env is bound into every command's Run.
type env struct {
	out      io.Writer
	registry *views.Registry
}

type listCmd struct{}

type renderCmd struct {
	Key      string            `arg:"" help:"Page key (see 'viewctl list')."`
	Search   string            `help:"Free-text search."`
	Filter   map[string]string `help:"Dropdown filter as key=value; repeatable."`
	Sort     string            `help:"Column id to sort by."`
	Dir      string            `enum:"asc,desc" default:"asc" help:"Sort direction."`
	Page     int               `default:"1" help:"One-based page number."`
	PageSize int               `name:"page-size" default:"10" help:"Rows per page."`
	Format   string            `enum:"text,json,yaml,csv" default:"text" help:"Output format."`
}

type statsCmd struct {
	Module string `arg:"" enum:"machines,replenishment,breaches,devices,kpis,shifts,cards" help:"Fixture module."`
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("viewctl"),
		kong.Description("Render ERP list pages from fixture data."),
		kong.UsageOnError(),
		kong.Writers(out, out),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	e := &env{
		out:      out,
		registry: views.NewRegistry(repository.FixtureSources(), repository.NewOverlay(), views.Options{DefaultPageSize: 10, MaxPageSize: 500}),
	}
	return kctx.Run(e)
}

func (cmd *listCmd) Run(ctx context.Context, e *env) error {
	w := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tTITLE\tMODULE\tROUTE\tCARDS")
	for _, m := range e.registry.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.Key, m.Title, m.Module, m.Route, m.StatsScope)
	}
	return w.Flush()
}

func (cmd *renderCmd) request() views.Request {
	return views.Request{
		Search:   cmd.Search,
		Filters:  cmd.Filter,
		Sort:     cmd.Sort,
		Dir:      table.Direction(cmd.Dir),
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}
}

func (cmd *renderCmd) Run(ctx context.Context, e *env) error {
	if cmd.Format == "csv" {
		exp, err := e.registry.Export(ctx, cmd.Key, cmd.request())
		if err != nil {
			return fmt.Errorf("viewctl: %w", err)
		}
		w := csv.NewWriter(e.out)
		_ = w.Write(exp.Headers)
		_ = w.WriteAll(exp.Rows)
		return w.Error()
	}

	res, err := e.registry.Query(ctx, cmd.Key, cmd.request())
	if err != nil {
		return fmt.Errorf("viewctl: %w", err)
	}
	switch cmd.Format {
	case "json":
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		return writeYAML(e.out, res)
	}
	return writeText(e.out, res)
}

// writeYAML goes through JSON first so the keys match the API's.
func writeYAML(out io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(doc)
}

func writeText(out io.Writer, res views.Result) error {
	fmt.Fprintf(out, "%s (%s)\n", res.Meta.Title, res.Meta.Route)
	for _, c := range res.Stats {
		fmt.Fprintf(out, "  %-22s %v%s\n", c.Label+":", c.Value, c.Unit)
	}
	if res.StatsDivergent {
		fmt.Fprintln(out, "  (cards count every record; the table is filtered)")
	}
	fmt.Fprintln(out)

	if res.Table.Empty {
		fmt.Fprintln(out, res.Table.EmptyMessage)
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	labels := make([]string, 0, len(res.Table.Headers))
	for _, h := range res.Table.Headers {
		label := h.Label
		switch h.Direction {
		case table.Asc:
			label += " ↑"
		case table.Desc:
			label += " ↓"
		}
		labels = append(labels, label)
	}
	fmt.Fprintln(w, strings.Join(labels, "\t"))
	for _, row := range res.Table.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, c.Display)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\npage %d of %d, %d of %d records\n", res.Table.Page, res.Table.PageCount, res.Matched, res.Total)
	return nil
}

func (cmd *statsCmd) Run(ctx context.Context, e *env) error {
	var v any
	switch cmd.Module {
	case "machines":
		v = fixtures.GetMachineStats()
	case "replenishment":
		v = fixtures.GetReplenishmentStats()
	case "breaches":
		v = fixtures.GetBreachStats()
	case "devices":
		v = fixtures.GetDeviceStats()
	case "kpis":
		v = fixtures.GetKPIStats()
	case "shifts":
		v = fixtures.GetShiftStats()
	case "cards":
		v = fixtures.GetAccessCardStats()
	}
	return writeYAML(e.out, v)
}
