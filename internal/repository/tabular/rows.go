// Package tabular implements the repositories over a generic row store,
// with one fixed column layout per collection.
package tabular

// Collection names match the sheet tabs of the backing spreadsheet.
const (
	ClientsCollection  = "Clientes"
	ProductsCollection = "Productos"
	PricesCollection   = "Precios"
)

// cell returns the i-th cell, or "" when the row is short.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// dataRows skips the header row. A collection with only a header has no data.
func dataRows(raw [][]string) [][]string {
	if len(raw) <= 1 {
		return nil
	}
	return raw[1:]
}
