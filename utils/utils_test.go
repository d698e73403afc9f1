package utils

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStringToInt(t *testing.T) {
	got := MapStringToInt(map[string]string{
		"page":  "2",
		"limit": " 20 ",
		"q":     "excavator",
	})
	assert.Equal(t, map[string]int{"page": 2, "limit": 20}, got)
}

func TestParsingDate(t *testing.T) {
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-03-05", "05-03-2024", "05/03/2024", "2024-03-05T10:20:00+07:00", "2024-03-05 08:00:00"} {
		got, err := ParsingDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	_, err := ParsingDate("")
	assert.Error(t, err)
	_, err = ParsingDate("besok")
	assert.Error(t, err)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "sewa-excavator-pc200-murah", Slugify("Sewa Excavator PC200 -- Murah!"))
	assert.Equal(t, "tips-perawatan", Slugify("  Tips Perawatan  "))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "Rp 950", FormatRupiah(950))
	assert.Equal(t, "Rp 1.000", FormatRupiah(1000))
	assert.Equal(t, "Rp 1.250.000", FormatRupiah(1250000))
	assert.Equal(t, "-Rp 75.500", FormatRupiah(-75500))
}

func TestTerbilang(t *testing.T) {
	cases := map[int64]string{
		0:          "nol",
		7:          "tujuh",
		11:         "sebelas",
		15:         "lima belas",
		21:         "dua puluh satu",
		100:        "seratus",
		115:        "seratus lima belas",
		1000:       "seribu",
		1500:       "seribu lima ratus",
		12000:      "dua belas ribu",
		1250000:    "satu juta dua ratus lima puluh ribu",
		2000000000: "dua miliar",
		-300:       "minus tiga ratus",
	}
	for n, want := range cases {
		assert.Equal(t, want, Terbilang(n), n)
	}
}

func TestFormatTanggal(t *testing.T) {
	assert.Equal(t, "17 Agustus 2024", FormatTanggal(time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "-", FormatTanggal(time.Time{}))
}

func TestTerbilangBatasInt64(t *testing.T) {
	got := Terbilang(math.MinInt64)
	assert.True(t, strings.HasPrefix(got, "minus sembilan juta dua ratus dua puluh tiga ribu tiga ratus tujuh puluh dua triliun"), got)
	assert.True(t, strings.HasSuffix(got, "delapan ratus delapan"), got)

	got = Terbilang(math.MaxInt64)
	assert.True(t, strings.HasSuffix(got, "delapan ratus tujuh"), got)
	assert.False(t, strings.HasPrefix(got, "minus"))
}
