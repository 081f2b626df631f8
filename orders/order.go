// Package orders is the demo data set shown by sfgrid: customer orders with
// their line items.
package orders

import (
	"time"

	"github.com/andareed/siftly-grid/grid"
)

// Column names, in the order the grid generates them.
const (
	ColIsChecked    = "IsChecked"
	ColOrderID      = "OrderID"
	ColCustomerID   = "CustomerID"
	ColCustomerName = "CustomerName"
	ColCountry      = "Country"
	ColShipCity     = "ShipCity"
	ColDateTime     = "DateTime"

	ColProduct   = "Product"
	ColQuantity  = "Quantity"
	ColUnitPrice = "UnitPrice"
)

type OrderInfo struct {
	IsChecked    bool        `json:"isChecked" yaml:"isChecked"`
	OrderID      *float64    `json:"orderId,omitempty" yaml:"orderId,omitempty"`
	CustomerID   string      `json:"customerId" yaml:"customerId"`
	CustomerName string      `json:"customerName" yaml:"customerName"`
	Country      string      `json:"country" yaml:"country"`
	ShipCity     string      `json:"shipCity" yaml:"shipCity"`
	Date         *time.Time  `json:"date,omitempty" yaml:"date,omitempty"`
	Items        []OrderItem `json:"items,omitempty" yaml:"items,omitempty"`
}

type OrderItem struct {
	Product   string  `json:"product" yaml:"product"`
	Quantity  int     `json:"quantity" yaml:"quantity"`
	UnitPrice float64 `json:"unitPrice" yaml:"unitPrice"`
}

// Value implements grid.Record.
func (o *OrderInfo) Value(column string) any {
	switch column {
	case ColIsChecked:
		return o.IsChecked
	case ColOrderID:
		return o.OrderID
	case ColCustomerID:
		return o.CustomerID
	case ColCustomerName:
		return o.CustomerName
	case ColCountry:
		return o.Country
	case ColShipCity:
		return o.ShipCity
	case ColDateTime:
		return o.Date
	}
	return nil
}

func (i OrderItem) Value(column string) any {
	switch column {
	case ColProduct:
		return i.Product
	case ColQuantity:
		return i.Quantity
	case ColUnitPrice:
		return i.UnitPrice
	}
	return nil
}

func id(v float64) *float64 { return &v }

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// Sample returns the demo orders.
func Sample() []*OrderInfo {
	d := day(2020, time.June, 12)
	return []*OrderInfo{
		{OrderID: id(1), CustomerName: "Maria Anders", Country: "Germany", CustomerID: "BOTTM", ShipCity: "Berlin", Date: d, IsChecked: true,
			Items: []OrderItem{{"Chai", 10, 18}, {"Chang", 5, 19}}},
		{OrderID: id(2), CustomerName: "Ana Trujilo", Country: "Mexico", CustomerID: "ANATR", ShipCity: "Mexico D.F.", IsChecked: true,
			Items: []OrderItem{{"Aniseed Syrup", 2, 10}}},
		{OrderID: id(1003), CustomerName: "Antonio Moreno", Country: "Mexico", CustomerID: "ANTON", ShipCity: "Mexico D.F.", Date: d, IsChecked: true},
		{OrderID: id(1004), CustomerName: "Thomas Hardy", Country: "UK", CustomerID: "AROUT", ShipCity: "London", Date: d, IsChecked: true,
			Items: []OrderItem{{"Earl Grey", 12, 4.5}}},
		{OrderID: id(1005), CustomerName: "Christina Berglund", Country: "Sweden", CustomerID: "BOTTM", ShipCity: "Lula", Date: d, IsChecked: true},
		{OrderID: id(1006), CustomerName: "Hanna Moos", Country: "Germany", CustomerID: "BLAUS", ShipCity: "Mannheim", Date: d, IsChecked: true,
			Items: []OrderItem{{"Tofu", 3, 23.25}, {"Konbu", 8, 6}}},
		{OrderID: id(1007), CustomerName: "Frederique Citeaux", Country: "France", CustomerID: "BLONP", ShipCity: "Strasbourg", Date: d, IsChecked: true},
		{OrderID: id(1008), CustomerName: "Martin Sommer", Country: "Germany", CustomerID: "BOLID", ShipCity: "Madrid", IsChecked: true},
		{OrderID: id(1009), CustomerName: "Laurence Lebihan", Country: "France", CustomerID: "BONAP", ShipCity: "Marseille", IsChecked: true,
			Items: []OrderItem{{"Camembert Pierrot", 1, 34}}},
		{OrderID: id(1010), CustomerName: "Elizabeth Lincoln", Country: "Canada", CustomerID: "BOTTM", ShipCity: "Tsawassen", Date: d, IsChecked: true},
	}
}

// Records adapts orders to the grid's data source.
func Records(list []*OrderInfo) []grid.Record {
	out := make([]grid.Record, len(list))
	for i, o := range list {
		out[i] = o
	}
	return out
}

func checkbox(v any) string {
	if b, ok := v.(bool); ok && b {
		return "[x]"
	}
	return "[ ]"
}

// Columns generates one column per OrderInfo property. Columns that no
// order populates start hidden.
func Columns(list []*OrderInfo) []grid.Column {
	cols := []grid.Column{
		{Name: ColIsChecked, Title: "✓", Width: 4, Format: checkbox},
		{Name: ColOrderID, Title: "Order ID", Width: 9},
		{Name: ColCustomerID, Title: "Customer ID", Width: 12},
		{Name: ColCustomerName, Title: "Customer Name", Width: 20},
		{Name: ColCountry, Width: 10},
		{Name: ColShipCity, Title: "Ship City", Width: 12},
		{Name: ColDateTime, Title: "Order Date", Width: 11},
	}
	for i := range cols {
		cols[i].AllowFocus = true
		cols[i].Visible = len(list) == 0 || populated(list, cols[i].Name)
	}
	return cols
}

func populated(list []*OrderInfo, column string) bool {
	for _, o := range list {
		if grid.FormatValue(o.Value(column)) != "" {
			return true
		}
	}
	return false
}

func ItemColumns() []grid.Column {
	return []grid.Column{
		{Name: ColProduct, Width: 20, Visible: true, AllowFocus: true},
		{Name: ColQuantity, Title: "Qty", Width: 5, Visible: true, AllowFocus: true},
		{Name: ColUnitPrice, Title: "Unit Price", Width: 10, Visible: true, AllowFocus: true},
	}
}

// ItemsRelation returns the line items of an order record.
func ItemsRelation(parent grid.Record) []grid.Record {
	o, ok := parent.(*OrderInfo)
	if !ok {
		return nil
	}
	out := make([]grid.Record, len(o.Items))
	for i, it := range o.Items {
		out[i] = it
	}
	return out
}

func ItemsView() grid.DetailsViewDefinition {
	return grid.DetailsViewDefinition{
		Name:     "Items",
		Columns:  ItemColumns(),
		Relation: ItemsRelation,
	}
}
