package utils

import (
	"strconv"
	"strings"
)

// FormatRupiah renders 1250000 as "Rp 1.250.000".
func FormatRupiah(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + "Rp " + b.String()
}

var angka = []string{
	"", "satu", "dua", "tiga", "empat", "lima",
	"enam", "tujuh", "delapan", "sembilan", "sepuluh", "sebelas",
}

// Terbilang spells an amount in Indonesian words, as printed on invoices.
func Terbilang(n int64) string {
	if n == 0 {
		return "nol"
	}
	if n < 0 {
		// -n overflows for math.MinInt64, so negate as uint64
		return "minus " + join(terbilang(uint64(-(n+1))+1))
	}
	return join(terbilang(uint64(n)))
}

func join(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func terbilang(n uint64) string {
	switch {
	case n < 12:
		return angka[n]
	case n < 20:
		return terbilang(n-10) + " belas"
	case n < 100:
		return terbilang(n/10) + " puluh " + terbilang(n%10)
	case n < 200:
		return "seratus " + terbilang(n-100)
	case n < 1000:
		return terbilang(n/100) + " ratus " + terbilang(n%100)
	case n < 2000:
		return "seribu " + terbilang(n-1000)
	case n < 1000000:
		return terbilang(n/1000) + " ribu " + terbilang(n%1000)
	case n < 1000000000:
		return terbilang(n/1000000) + " juta " + terbilang(n%1000000)
	case n < 1000000000000:
		return terbilang(n/1000000000) + " miliar " + terbilang(n%1000000000)
	default:
		return terbilang(n/1000000000000) + " triliun " + terbilang(n%1000000000000)
	}
}
