package shell

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"

	perrors "github.com/abgdnv/inventory/internal/inventory/errors"
	"github.com/abgdnv/inventory/internal/inventory/store"
	"github.com/olekukonko/tablewriter"
)

// Operator-facing messages.
const (
	msgInvalidPrice   = "Price must be a number. Try again."
	msgEmptyName      = "Name cannot be empty. Try again."
	msgInvalidCount   = "The number of products to see must be a number. Try again."
	msgInvalidCommand = "Invalid option. Try again."
	msgNoProducts     = "No products found."
)

// userMessage returns the message shown for a recoverable input error.
func userMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, perrors.ErrInvalidPrice):
		return msgInvalidPrice, true
	case errors.Is(err, perrors.ErrEmptyName):
		return msgEmptyName, true
	case errors.Is(err, perrors.ErrInvalidCount):
		return msgInvalidCount, true
	case errors.Is(err, perrors.ErrUnrecognizedCommand):
		return msgInvalidCommand, true
	default:
		return "", false
	}
}

// writeProducts consumes products and renders them as a table.
// It returns the number of rendered products.
func writeProducts(w io.Writer, products iter.Seq2[store.Product, error]) (int, error) {
	var rows [][]string
	for p, err := range products {
		if err != nil {
			return 0, err
		}
		rows = append(rows, []string{p.Name, p.Category, formatPrice(p.Price)})
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, msgNoProducts)
		return 0, err
	}

	table := tablewriter.NewTable(w)
	table.Header("Name", "Category", "Price")
	for _, row := range rows {
		if err := table.Append(row[0], row[1], row[2]); err != nil {
			return 0, fmt.Errorf("failed to render products: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return 0, fmt.Errorf("failed to render products: %w", err)
	}
	return len(rows), nil
}

// formatPrice prints cents precision unless the stored value carries more digits.
func formatPrice(v float64) string {
	if math.Round(v*100)/100 == v {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
