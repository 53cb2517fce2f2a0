package utils

import (
	"fmt"
	"strings"
)

type currencyFormat struct {
	symbol        string
	decimals      int
	thousandsSep  string
	decimalSep    string
	symbolTrailer bool
}

var currencyFormats = map[string]currencyFormat{
	"USD": {symbol: "$", decimals: 2, thousandsSep: ",", decimalSep: "."},
	"EUR": {symbol: "€", decimals: 2, thousandsSep: ".", decimalSep: ","},
	"GBP": {symbol: "£", decimals: 2, thousandsSep: ",", decimalSep: "."},
	"IDR": {symbol: "Rp", decimals: 0, thousandsSep: "."},
	"SGD": {symbol: "S$", decimals: 2, thousandsSep: ",", decimalSep: "."},
	"PHP": {symbol: "₱", decimals: 2, thousandsSep: ",", decimalSep: "."},
	"JPY": {symbol: "¥", decimals: 0, thousandsSep: ","},
}

// FormatCurrency renders a minor-unit amount as the display string the
// inventory and export pages show. Unknown codes fall back to "<CODE> <amount>".
func FormatCurrency(amountMinor int64, code string) string {
	format, ok := currencyFormats[strings.ToUpper(code)]
	if !ok {
		return fmt.Sprintf("%s %d", strings.ToUpper(code), amountMinor)
	}

	negative := amountMinor < 0
	if negative {
		amountMinor = -amountMinor
	}

	major := amountMinor
	minor := int64(0)
	if format.decimals > 0 {
		divisor := int64(1)
		for i := 0; i < format.decimals; i++ {
			divisor *= 10
		}
		major = amountMinor / divisor
		minor = amountMinor % divisor
	}

	grouped := groupThousands(fmt.Sprintf("%d", major), format.thousandsSep)

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString(format.symbol)
	b.WriteString(grouped)
	if format.decimals > 0 {
		b.WriteString(format.decimalSep)
		b.WriteString(fmt.Sprintf("%0*d", format.decimals, minor))
	}
	return b.String()
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return strings.Join(groups, sep)
}
