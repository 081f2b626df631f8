package main

import (
	"github.com/andareed/siftly-grid/grid"
	"github.com/andareed/siftly-grid/orders"
)

// weight of a column when spare width is shared out; 0 keeps it at its minimum.
func weightFor(name string) float64 {
	switch name {
	case orders.ColCustomerName:
		return 4.0
	case orders.ColShipCity, orders.ColCountry:
		return 2.0
	case orders.ColIsChecked, orders.ColOrderID:
		return 0
	default:
		return 1.0
	}
}

// fitColumns gives every visible column its minimum width and shares the
// remaining width by weight. The minimums come from mins, keyed by column
// name; columns missing from mins use their current width.
func fitColumns(cols []grid.Column, mins map[string]int, totalWidth int) map[string]int {
	widths := make(map[string]int, len(cols))
	if totalWidth <= 0 {
		return widths
	}

	minOf := func(c grid.Column) int {
		if w, ok := mins[c.Name]; ok {
			return w
		}
		return c.Width
	}

	minSum := 0
	weightSum := 0.0
	for _, c := range cols {
		if !c.Visible {
			continue
		}
		minSum += minOf(c)
		weightSum += weightFor(c.Name)
	}

	if minSum >= totalWidth || weightSum == 0 {
		for _, c := range cols {
			if c.Visible {
				widths[c.Name] = minOf(c)
			}
		}
		return widths
	}

	remaining := totalWidth - minSum
	for _, c := range cols {
		if !c.Visible {
			continue
		}
		extra := int(float64(remaining) * (weightFor(c.Name) / weightSum))
		widths[c.Name] = minOf(c) + extra
	}
	return widths
}

// columnMinimums records the starting widths of cols so refitting after a
// resize never shrinks a column below its generated width.
func columnMinimums(cols []grid.Column) map[string]int {
	mins := make(map[string]int, len(cols))
	for _, c := range cols {
		mins[c.Name] = c.Width
	}
	return mins
}
