package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Remove tudo que não for dígito, vírgula ou sinal (símbolo da moeda, espaços, pontos de milhar)
var currencyNoise = regexp.MustCompile(`[^\d,-]`)

// ParseBRL converte valores monetários no formato brasileiro ("R$ 1.234,56") para decimal
func ParseBRL(value string) (decimal.Decimal, error) {
	cleaned := currencyNoise.ReplaceAllString(value, "")
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, fmt.Errorf("valor monetário vazio: %q", value)
	}

	normalized := strings.Replace(cleaned, ",", ".", 1)
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor monetário inválido %q: %w", value, err)
	}

	return amount.Round(2), nil
}

// FormatBRL formata um valor como moeda brasileira ("R$ 1.234,56")
func FormatBRL(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	fixed := amount.StringFixed(2)
	integer, cents, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	return fmt.Sprintf("%sR$ %s,%s", sign, grouped.String(), cents)
}
