// Package render mengubah data surat menjadi markup HTML siap cetak.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"sipensiun/internal/format"
)

// Kind adalah jenis templat surat.
type Kind string

const (
	KindDisiplin  Kind = "disiplin"
	KindKematian  Kind = "kematian"
	KindIjazah    Kind = "ijazah"
	KindPengantar Kind = "pengantar"
	KindSPTJM     Kind = "sptjm"
)

var titles = map[Kind]string{
	KindDisiplin:  "Surat Pernyataan Disiplin dan Pidana",
	KindKematian:  "Surat Keterangan Kematian",
	KindIjazah:    "Surat Pengantar Pengakuan Ijazah",
	KindPengantar: "Surat Pengantar Usul Pensiun",
	KindSPTJM:     "Surat Pernyataan Tanggung Jawab Mutlak",
}

var ErrUnknownKind = errors.New("jenis surat tidak dikenal")

func Kinds() []Kind {
	return []Kind{KindDisiplin, KindKematian, KindIjazah, KindPengantar, KindSPTJM}
}

func (k Kind) Valid() bool {
	_, ok := titles[k]
	return ok
}

func (k Kind) Title() string {
	return titles[k]
}

// ResolveLogoURL menjadikan URL logo absolut terhadap origin aplikasi agar tetap
// termuat di jendela cetak. Bila gagal, raw dikembalikan apa adanya.
func ResolveLogoURL(raw, origin string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() {
		return raw
	}
	base, err := url.Parse(strings.TrimRight(origin, "/") + "/")
	if err != nil || !base.IsAbs() {
		return raw
	}
	return base.ResolveReference(u).String()
}

type Renderer struct {
	origin string
	tmpl   *template.Template
}

func New(origin string) (*Renderer, error) {
	tmpl, err := template.New("surat").Funcs(template.FuncMap{
		"nip":     format.StripNonDigits,
		"tanggal": format.FormatIndonesianDate,
		"inc":     func(i int) int { return i + 1 },
	}).Parse(layouts)
	if err != nil {
		return nil, fmt.Errorf("render: parse templat: %w", err)
	}
	return &Renderer{origin: origin, tmpl: tmpl}, nil
}

func (r *Renderer) Origin() string {
	return r.origin
}

func (r *Renderer) header(h Header) Header {
	h.LogoURL = ResolveLogoURL(h.LogoURL, r.origin)
	return h
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (r *Renderer) Disiplin(d DisiplinData) (string, error) {
	d.Header = r.header(d.Header)
	return r.execute(string(KindDisiplin), d)
}

func (r *Renderer) Kematian(d KematianData) (string, error) {
	d.Header = r.header(d.Header)
	return r.execute(string(KindKematian), d)
}

func (r *Renderer) Ijazah(d IjazahData) (string, error) {
	d.Header = r.header(d.Header)
	return r.execute(string(KindIjazah), d)
}

func (r *Renderer) Pengantar(d PengantarData) (string, error) {
	d.Header = r.header(d.Header)
	return r.execute(string(KindPengantar), d)
}

func (r *Renderer) SPTJM(d SPTJMData) (string, error) {
	d.Header = r.header(d.Header)
	return r.execute(string(KindSPTJM), d)
}

func (r *Renderer) Checklist(d ChecklistData) (string, error) {
	d.Header = r.header(d.Header)
	return r.execute("checklist", d)
}

// RenderJSON men-decode body sesuai jenis surat lalu merendernya. Body kosong
// menghasilkan formulir kosong dengan kop default.
func (r *Renderer) RenderJSON(kind Kind, body []byte) (string, error) {
	decode := func(v any) error {
		if len(bytes.TrimSpace(body)) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("render: data %s tidak valid: %w", kind, err)
		}
		return nil
	}

	switch kind {
	case KindDisiplin:
		d := DisiplinData{Header: DefaultHeader()}
		if err := decode(&d); err != nil {
			return "", err
		}
		return r.Disiplin(d)
	case KindKematian:
		d := KematianData{Header: DefaultHeader()}
		if err := decode(&d); err != nil {
			return "", err
		}
		return r.Kematian(d)
	case KindIjazah:
		d := IjazahData{Header: DefaultHeader(), Perihal: "Usul Pengakuan Ijazah"}
		if err := decode(&d); err != nil {
			return "", err
		}
		return r.Ijazah(d)
	case KindPengantar:
		d := PengantarData{Header: DefaultHeader(), Perihal: "Usul Pensiun"}
		if err := decode(&d); err != nil {
			return "", err
		}
		return r.Pengantar(d)
	case KindSPTJM:
		d := SPTJMData{Header: DefaultHeader()}
		if err := decode(&d); err != nil {
			return "", err
		}
		return r.SPTJM(d)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
