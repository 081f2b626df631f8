package main

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-grid/config"
	"github.com/andareed/siftly-grid/grid"
	"github.com/andareed/siftly-grid/gridsearch"
	"github.com/andareed/siftly-grid/logging"
	"github.com/andareed/siftly-grid/orders"
)

// loadOrders reads path, or returns the sample orders when path is empty.
func loadOrders(path string) ([]*orders.OrderInfo, error) {
	if path == "" {
		logging.Infof("no input file, using sample orders")
		return orders.Sample(), nil
	}
	return orders.Load(path)
}

func gridOptions(cfg *config.Config) (grid.Options, error) {
	filterRow, err := config.ParsePosition(cfg.Grid.FilterRow)
	if err != nil {
		return grid.Options{}, fmt.Errorf("grid.filter_row: %w", err)
	}
	addNewRow, err := config.ParsePosition(cfg.Grid.AddNewRow)
	if err != nil {
		return grid.Options{}, fmt.Errorf("grid.add_new_row: %w", err)
	}
	opts := grid.Options{
		ShowRowHeader: cfg.Grid.ShowRowHeader,
		ExpandDetails: true,
		FilterRow:     filterRow,
		AddNewRow:     addNewRow,
	}
	if cfg.Grid.Details {
		opts.Details = []grid.DetailsViewDefinition{orders.ItemsView()}
	}
	return opts, nil
}

// buildGrid lays out list as configured and sets up its search controller.
func buildGrid(cfg *config.Config, list []*orders.OrderInfo) (*grid.Grid, error) {
	opts, err := gridOptions(cfg)
	if err != nil {
		return nil, err
	}
	g := grid.New(orders.Columns(list), orders.Records(list), opts)

	for _, name := range cfg.Grid.HiddenColumns {
		if err := g.SetColumnVisible(name, false); err != nil {
			return nil, fmt.Errorf("grid.hidden_columns: %w", err)
		}
	}
	if len(cfg.Grid.GroupBy) > 0 {
		if err := g.SetGroupBy(cfg.Grid.GroupBy...); err != nil {
			return nil, fmt.Errorf("grid.group_by: %w", err)
		}
	}

	matcher, err := gridsearch.MatcherByName(cfg.Search.Match)
	if err != nil {
		return nil, fmt.Errorf("search.match: %w", err)
	}
	if bad := unknownColumns(g, cfg.Search.Columns); len(bad) > 0 {
		return nil, fmt.Errorf("search.columns: unknown column %s", strings.Join(bad, ", "))
	}
	c := g.Search()
	c.SetMatcher(matcher)
	c.SetHighlightMatches(cfg.Search.Highlight)
	c.SetSearchColumns(cfg.Search.Columns...)

	logging.Infof("grid ready: %d orders, group by %v, details %v", len(list), cfg.Grid.GroupBy, cfg.Grid.Details)
	return g, nil
}

// unknownColumns returns the names that are not columns of g.
func unknownColumns(g *grid.Grid, names []string) []string {
	known := make(map[string]bool)
	for _, c := range g.ColumnDefs() {
		known[c.Name] = true
	}
	var bad []string
	for _, n := range names {
		if !known[n] {
			bad = append(bad, n)
		}
	}
	return bad
}
