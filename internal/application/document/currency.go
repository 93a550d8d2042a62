package document

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbols maps ISO 4217 codes to the symbol used in rendered
// documents. Codes not listed fall back to "<CODE> ".
var currencySymbols = map[string]string{
	"MXN": "$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"COP": "$",
	"ARS": "$",
}

// CurrencyFormatter renders monetary amounts with locale-aware digit
// grouping and a fixed two-digit fraction.
type CurrencyFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewCurrencyFormatter builds a formatter for a BCP 47 locale and an ISO
// 4217 currency code.
func NewCurrencyFormatter(locale, code string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	if _, err := currency.ParseISO(code); err != nil {
		return nil, fmt.Errorf("invalid currency code %q: %w", code, err)
	}

	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code + " "
	}

	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}, nil
}

// Format renders an amount like "$25,000.00"
func (f *CurrencyFormatter) Format(d decimal.Decimal) string {
	n := number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)
	return f.symbol + f.printer.Sprint(n)
}
