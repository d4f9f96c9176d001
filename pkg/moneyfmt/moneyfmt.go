// Package moneyfmt formatea montos para visualización (cotizaciones, PDFs, resúmenes).
// Solo presentación: la aritmética de dinero vive en decimal.Decimal.
package moneyfmt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Pesos formatea un monto en pesos para visualización: "$ 1.234,56".
// El valor se redondea a 2 decimales; el paso por float es solo de presentación.
func Pesos(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("$ %v",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Pulgadas formatea una medida en pulgadas para visualización: `36,125"`.
func Pulgadas(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("%v\"", number.Decimal(f, number.MaxFractionDigits(3)))
}
