package render

import "html/template"

// Icon adalah daftar tertutup ikon yang boleh dipakai di dokumen.
type Icon int

const (
	IconDefault Icon = iota
	IconUploaded
	IconMissing
	IconOptional
	IconPending
	IconCompliant
	IconNoncompliant
	IconDocument
)

type iconDef struct {
	name  string
	glyph string
	color string
}

var icons = map[Icon]iconDef{
	IconDefault:      {"default", "&#8226;", "#6b7280"},
	IconUploaded:     {"uploaded", "&#8679;", "#2563eb"},
	IconMissing:      {"missing", "&#9888;", "#d97706"},
	IconOptional:     {"optional", "&#9675;", "#9ca3af"},
	IconPending:      {"pending", "&#8987;", "#6b7280"},
	IconCompliant:    {"compliant", "&#10004;", "#16a34a"},
	IconNoncompliant: {"noncompliant", "&#10008;", "#dc2626"},
	IconDocument:     {"document", "&#128196;", "#374151"},
}

func lookupIcon(i Icon) iconDef {
	if def, ok := icons[i]; ok {
		return def
	}
	return icons[IconDefault]
}

func (i Icon) String() string {
	return lookupIcon(i).name
}

// HTML menghasilkan span ikon. Isi tabel hanya konstanta di atas.
func (i Icon) HTML() template.HTML {
	def := lookupIcon(i)
	return template.HTML(`<span class="icon icon-` + def.name + `" style="color:` + def.color + `" aria-hidden="true">` + def.glyph + `</span>`)
}
