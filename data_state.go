package main

import (
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-grid/orders"
)

type dataState struct {
	orders []*orders.OrderInfo
	// path the orders came from; empty for the built-in sample
	path    string
	lastDir string
	// minimum column widths taken from the generated columns
	minWidths map[string]int
}

// baseName is the source file name without its extension, or "orders"
// for the sample data.
func (d dataState) baseName() string {
	if d.path == "" {
		return "orders"
	}
	base := filepath.Base(d.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (d dataState) sourceLabel() string {
	if d.path == "" {
		return "sample orders"
	}
	return filepath.Base(d.path)
}

func (d dataState) exportName() string { return d.baseName() + ".csv" }

func (d dataState) saveName() string { return d.baseName() + ".json" }
