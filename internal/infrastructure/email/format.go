package email

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	sharedvo "raffle/internal/domain/shared/valueobjects"
)

// formatter renders numbers, money and dates for one locale.
type formatter struct {
	printer *message.Printer
	loc     *time.Location
}

func newFormatter(locale string, loc *time.Location) formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	if loc == nil {
		loc = time.UTC
	}
	return formatter{printer: message.NewPrinter(tag), loc: loc}
}

// Money formats m as "R$ 1.500,00" for pt-BR.
func (f formatter) Money(m sharedvo.Money) string {
	symbol := m.Currency()
	if unit, err := currency.ParseISO(m.Currency()); err == nil {
		symbol = f.printer.Sprint(currency.Symbol(unit))
	}
	return f.printer.Sprintf("%s %.2f", symbol, m.Major())
}

func (f formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Percent formats p with two decimals, e.g. "0,25%".
func (f formatter) Percent(p float64) string {
	return f.printer.Sprintf("%.2f%%", p)
}

func (f formatter) DateTime(t time.Time) string {
	return t.In(f.loc).Format("02/01/2006 15:04")
}
