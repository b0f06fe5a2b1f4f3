// Package personnel menormalkan hasil pencarian pegawai dari berbagai bentuk
// respons backend dan menyediakan pencarian langsung (debounce + pembatalan).
package personnel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"sipensiun/internal/format"
)

type Record struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NIP      string `json:"nip"`
	Position string `json:"position"`
	Unit     string `json:"unit"`
	Rank     string `json:"rank"`
}

var (
	idKeys       = []string{"id", "pegawai_id", "ID"}
	nameKeys     = []string{"nama", "name", "nama_lengkap"}
	nipKeys      = []string{"nip", "nip_baru", "NIP"}
	positionKeys = []string{"jabatan", "position", "nama_jabatan"}
	unitKeys     = []string{"unit", "unit_kerja", "satuan_kerja", "bidang"}
	rankKeys     = []string{"pangkat", "golongan", "rank", "pangkat_golongan"}
	listKeys     = []string{"items", "rows", "data", "results"}
)

// Normalize menerima array mentah, {data:[...]}, atau {data:{items|rows|data:[...]}}.
// Item tanpa nama dan NIP dibuang; NIP ganda (setelah normalisasi) diambil yang pertama.
func Normalize(raw []byte) ([]Record, error) {
	items, err := extractItems(raw, 0)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(items))
	out := make([]Record, 0, len(items))
	for _, item := range items {
		rec := Record{
			ID:       pick(item, idKeys),
			Name:     strings.TrimSpace(pick(item, nameKeys)),
			NIP:      format.StripNonDigits(pick(item, nipKeys)),
			Position: strings.TrimSpace(pick(item, positionKeys)),
			Unit:     nested(item, unitKeys, "nama_unit"),
			Rank:     strings.TrimSpace(pick(item, rankKeys)),
		}
		if rec.NIP == "" && rec.Name == "" {
			continue
		}
		if rec.NIP != "" {
			if seen[rec.NIP] {
				continue
			}
			seen[rec.NIP] = true
		}
		out = append(out, rec)
	}
	return out, nil
}

func extractItems(raw []byte, depth int) ([]map[string]any, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	if depth > 3 {
		return nil, fmt.Errorf("personnel: respons terlalu bersarang")
	}

	if strings.HasPrefix(trimmed, "[") {
		// UseNumber: NIP 18 digit tidak muat di float64.
		dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
		dec.UseNumber()
		var items []map[string]any
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("personnel: decode array: %w", err)
		}
		return items, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return nil, fmt.Errorf("personnel: decode object: %w", err)
	}
	for _, k := range listKeys {
		if inner, ok := obj[k]; ok {
			return extractItems(inner, depth+1)
		}
	}
	return nil, nil
}

func pick(item map[string]any, keys []string) string {
	for _, k := range keys {
		if v, ok := item[k]; ok {
			if s := stringify(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// nested juga menerima objek relasi, misal "unit_kerja": {"nama_unit": "..."}.
func nested(item map[string]any, keys []string, field string) string {
	for _, k := range keys {
		switch v := item[k].(type) {
		case map[string]any:
			if s := stringify(v[field]); s != "" {
				return strings.TrimSpace(s)
			}
		case nil:
		default:
			if s := stringify(v); s != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
