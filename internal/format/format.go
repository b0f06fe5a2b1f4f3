// Package format berisi fungsi murni untuk tanggal berbahasa Indonesia,
// penomoran surat, dan normalisasi NIP.
package format

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var ErrSequenceNotNumeric = errors.New("Nomor Surat hanya angka")

// MonthName mengembalikan nama bulan untuk m (1-12). Di luar rentang, string kosong.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNames[m-1]
}

// FormatIndonesianDate mengubah "2024-03-05" menjadi "5 Maret 2024".
// Input yang bukan tiga segmen dipisah "-" menghasilkan string kosong.
func FormatIndonesianDate(iso string) string {
	parts := strings.Split(strings.TrimSpace(iso), "-")
	if len(parts) != 3 {
		return ""
	}
	year, monthStr, dayStr := parts[0], parts[1], parts[2]

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 {
		return ""
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return ""
	}

	return strconv.Itoa(day) + " " + monthNames[(month-1)%12] + " " + year
}

// FormatIndonesianTime merender t dengan format yang sama dengan FormatIndonesianDate.
func FormatIndonesianTime(t time.Time) string {
	return FormatIndonesianDate(t.Format("2006-01-02"))
}

// StripNonDigits membuang semua karakter selain 0-9.
func StripNonDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ComposeLetterNumber menyusun nomor surat: urut/kode.../bulan/tahun.
// Bulan dan tahun dibersihkan dari non-digit dan bulan dipad dua digit.
// Segmen kosong dilewati sehingga tidak ada "//".
func ComposeLetterNumber(sequence, month, year string, codes []string) string {
	month = StripNonDigits(month)
	year = StripNonDigits(year)
	if len(month) == 1 {
		month = "0" + month
	}

	segments := make([]string, 0, len(codes)+3)
	segments = append(segments, strings.TrimSpace(sequence))
	for _, c := range codes {
		segments = append(segments, strings.TrimSpace(c))
	}
	segments = append(segments, month, year)

	out := segments[:0]
	for _, s := range segments {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "/")
}

// ParseLetterSequence memvalidasi nomor urut surat yang diketik pengguna.
func ParseLetterSequence(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || StripNonDigits(s) != s {
		return "", ErrSequenceNotNumeric
	}
	return s, nil
}
