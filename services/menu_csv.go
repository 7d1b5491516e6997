package services

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/menu-service/models"
)

var ErrMalformedCSV = errors.New("malformed menu csv")

func init() {
	// every column of MenuRow must be present in the header
	gocsv.FailIfUnmatchedStructTags = true
}

// MenuRow is one line of the flattened menu file: a category, optionally an
// item, optionally one variant title and one variant item of that item.
type MenuRow struct {
	CategoryName     string `csv:"CategoryName"`
	ServiceType      string `csv:"ServiceType"`
	ItemName         string `csv:"ItemName"`
	ItemDescription  string `csv:"ItemDescription"`
	ItemPrice        string `csv:"ItemPrice"`
	ItemTag          string `csv:"ItemTag"`
	VariantTitle     string `csv:"VariantTitle"`
	VariantItemName  string `csv:"VariantItemName"`
	VariantItemPrice string `csv:"VariantItemPrice"`
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeMenuCSV reads every row of a menu file.
func DecodeMenuCSV(r io.Reader) ([]MenuRow, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	var rows []MenuRow
	if err := gocsv.Unmarshal(br, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}
	return rows, nil
}

// EncodeMenuCSV writes the header and rows.
func EncodeMenuCSV(w io.Writer, rows []MenuRow) error {
	if rows == nil {
		rows = []MenuRow{}
	}
	return gocsv.Marshal(&rows, w)
}

type menuLine struct {
	Line             int
	CategoryName     string
	ServiceType      models.ServiceType
	ItemName         string
	ItemDescription  string
	ItemPrice        decimal.Decimal
	ItemTag          string
	VariantTitle     string
	VariantItemName  string
	VariantItemPrice decimal.Decimal
}

func (l menuLine) hasItem() bool         { return l.ItemName != "" }
func (l menuLine) hasVariantTitle() bool { return l.VariantTitle != "" }
func (l menuLine) hasVariantItem() bool  { return l.VariantItemName != "" }

func parsePrice(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

// parseMenuRows trims and validates every row. All problems are reported
// together, each prefixed with its line number in the file.
func parseMenuRows(rows []MenuRow) ([]menuLine, error) {
	lines := make([]menuLine, 0, len(rows))
	var errs []error

	for i, row := range rows {
		l := menuLine{
			Line:            i + 2,
			CategoryName:    strings.TrimSpace(row.CategoryName),
			ServiceType:     models.ServiceType(strings.TrimSpace(row.ServiceType)),
			ItemName:        strings.TrimSpace(row.ItemName),
			ItemDescription: strings.TrimSpace(row.ItemDescription),
			ItemTag:         strings.TrimSpace(row.ItemTag),
			VariantTitle:    strings.TrimSpace(row.VariantTitle),
			VariantItemName: strings.TrimSpace(row.VariantItemName),
		}
		itemPrice := strings.TrimSpace(row.ItemPrice)
		variantPrice := strings.TrimSpace(row.VariantItemPrice)

		fail := func(format string, args ...any) {
			errs = append(errs, fmt.Errorf("line %d: "+format, append([]any{l.Line}, args...)...))
		}

		if l.CategoryName == "" {
			fail("CategoryName is required")
		}
		if !l.ServiceType.Valid() {
			fail("ServiceType %q must be one of Takeaway, Dinein, Delivery, All", l.ServiceType)
		}
		if !l.hasItem() && (l.ItemDescription != "" || itemPrice != "" || l.ItemTag != "" || l.VariantTitle != "" || l.VariantItemName != "") {
			fail("item fields given without ItemName")
		}
		if l.hasVariantItem() && !l.hasVariantTitle() {
			fail("VariantItemName %q given without VariantTitle", l.VariantItemName)
		}
		if !l.hasVariantItem() && variantPrice != "" {
			fail("VariantItemPrice given without VariantItemName")
		}

		var err error
		if l.ItemPrice, err = parsePrice(itemPrice); err != nil {
			fail("ItemPrice %q is not a number", itemPrice)
		}
		if l.VariantItemPrice, err = parsePrice(variantPrice); err != nil {
			fail("VariantItemPrice %q is not a number", variantPrice)
		}
		if l.ItemPrice.IsNegative() {
			fail("ItemPrice %q must not be negative", itemPrice)
		}
		if l.VariantItemPrice.IsNegative() {
			fail("VariantItemPrice %q must not be negative", variantPrice)
		}

		lines = append(lines, l)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, errors.Join(errs...))
	}
	return lines, nil
}
