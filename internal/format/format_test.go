package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatIndonesianDate(t *testing.T) {
	assert.Equal(t, "5 Maret 2024", FormatIndonesianDate("2024-03-05"))

	for m := 1; m <= 12; m++ {
		iso := time.Date(2025, time.Month(m), 17, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		assert.Equal(t, "17 "+MonthName(m)+" 2025", FormatIndonesianDate(iso))
	}

	assert.Equal(t, "1 Januari 2025", FormatIndonesianDate("2025-13-01"), "month wraps modulo 12")
}

func TestFormatIndonesianDate_Malformed(t *testing.T) {
	cases := []string{"", "2024", "2024-03", "2024-03-05-01", "05/03/2024", "2024-xx-05", "2024-00-05"}
	for _, c := range cases {
		assert.Empty(t, FormatIndonesianDate(c), c)
	}
}

func TestStripNonDigits(t *testing.T) {
	want := "197001011991031001"
	assert.Equal(t, want, StripNonDigits("197001011991031001"))
	assert.Equal(t, want, StripNonDigits("1970.0101.1991.0310.01"))
	assert.Equal(t, want, StripNonDigits("19700101 199103 1 001"))
	assert.Equal(t, want, StripNonDigits("NIP: 19700101-199103-1-001"))
	assert.Empty(t, StripNonDigits("-"))
}

func TestComposeLetterNumber(t *testing.T) {
	codes := []string{"Kw.18.01", "KP.01.1"}

	assert.Equal(t, "125/Kw.18.01/KP.01.1/09/2025", ComposeLetterNumber("125", "9", "2025", codes))
	assert.Equal(t, "125/Kw.18.01/KP.01.1/11/2025", ComposeLetterNumber("125", "11", "2025", codes))
	assert.Equal(t, "7/Kw.18.01/KP.01.1/2025", ComposeLetterNumber("7", "", "2025", codes))
	assert.Equal(t, "Kw.18.01/KP.01.1/03/2025", ComposeLetterNumber("", "bulan 3", "th. 2025", codes))
	assert.Equal(t, "1/12", ComposeLetterNumber("1", "12", "", nil))
}

func TestParseLetterSequence(t *testing.T) {
	got, err := ParseLetterSequence(" 125 ")
	assert.NoError(t, err)
	assert.Equal(t, "125", got)

	_, err = ParseLetterSequence("12a")
	assert.ErrorIs(t, err, ErrSequenceNotNumeric)

	_, err = ParseLetterSequence("")
	assert.ErrorIs(t, err, ErrSequenceNotNumeric)
}
