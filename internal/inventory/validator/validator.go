// Package validator turns raw operator input into well-formed catalog records.
package validator

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	perrors "github.com/abgdnv/inventory/internal/inventory/errors"
	"github.com/abgdnv/inventory/internal/inventory/store"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Prompter asks the operator for one line of input.
type Prompter interface {
	Prompt(label string) (string, error)
}

const (
	namePrompt     = "Name of the product: "
	categoryPrompt = "Category of the product: "
	pricePrompt    = "Price of the product: "
)

var validate = validator.New()

// Normalize trims surrounding whitespace and lowercases s.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// CollectProductInput reads name, category and price, in that order, and builds a Product.
// Returns ErrInvalidPrice when the price is not a finite number and ErrEmptyName when the
// name is blank. The price is checked first. Prompt errors are returned unchanged.
func CollectProductInput(p Prompter) (store.Product, error) {
	rawName, err := p.Prompt(namePrompt)
	if err != nil {
		return store.Product{}, err
	}
	rawCategory, err := p.Prompt(categoryPrompt)
	if err != nil {
		return store.Product{}, err
	}
	rawPrice, err := p.Prompt(pricePrompt)
	if err != nil {
		return store.Product{}, err
	}

	price, err := ParsePrice(rawPrice)
	if err != nil {
		return store.Product{}, err
	}

	product := store.Product{
		Name:     Normalize(rawName),
		Category: Normalize(rawCategory),
		Price:    price,
	}
	if err := validate.Struct(product); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			for _, fe := range vErrs {
				if fe.Field() == "Name" {
					return store.Product{}, perrors.ErrEmptyName
				}
			}
		}
		return store.Product{}, fmt.Errorf("invalid product: %w", err)
	}
	return product, nil
}

// decimalPrice matches plain decimal notation with an optional exponent. Single underscores
// may group digits. Hex floats, "inf" and "nan" do not match.
var decimalPrice = regexp.MustCompile(`^[+-]?(?:\d(?:_?\d)*(?:\.(?:\d(?:_?\d)*)?)?|\.\d(?:_?\d)*)(?:[eE][+-]?\d(?:_?\d)*)?$`)

// ParsePrice parses a decimal price such as "2.49", ".5", "1_000" or "1e3".
// Anything else, including values that overflow to infinity, returns ErrInvalidPrice.
func ParsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if !decimalPrice.MatchString(raw) {
		return 0, perrors.ErrInvalidPrice
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(raw, "_", ""), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, perrors.ErrInvalidPrice
	}
	return price, nil
}

// ParseCount parses the number of results requested by the operator.
// Returns ErrInvalidCount for anything that is not a non-negative base-10 integer.
func ParseCount(raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 0 {
		return 0, perrors.ErrInvalidCount
	}
	return n, nil
}
