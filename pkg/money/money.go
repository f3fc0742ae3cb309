// Package money formats amounts for display. Everything the pharmacy
// stores is in a single configured currency (birr by default), so the
// formatter is just a code plus locale-aware digit grouping.
package money

import (
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultCurrencyCode = "ETB"

type Formatter struct {
	code    string
	printer *message.Printer
}

// New builds a formatter for the given currency code. An empty code
// falls back to the default.
func New(code string) *Formatter {
	if code == "" {
		code = DefaultCurrencyCode
	}
	return &Formatter{
		code:    code,
		printer: message.NewPrinter(language.English),
	}
}

// FromEnv reads CURRENCY_CODE, falling back to the default.
func FromEnv() *Formatter {
	return New(os.Getenv("CURRENCY_CODE"))
}

func (f *Formatter) Code() string {
	return f.code
}

// Format renders an amount with grouped thousands and exactly two
// decimal places, prefixed by the currency code: "ETB 1,234.50".
func (f *Formatter) Format(amount float64) string {
	return f.printer.Sprintf("%s %v", f.code,
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
