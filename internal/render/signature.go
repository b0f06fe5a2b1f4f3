package render

// SignatureMode adalah varian penandatanganan, bukan boolean.
type SignatureMode string

const (
	SignatureManual SignatureMode = "manual"
	SignatureTTE    SignatureMode = "tte"
)

func (m SignatureMode) Valid() bool {
	return m == SignatureManual || m == SignatureTTE
}

// Anchor adalah glyph penanda posisi stempel TTE.
type Anchor string

const (
	AnchorCaret  Anchor = "^"
	AnchorDollar Anchor = "$"
	AnchorHash   Anchor = "#"
)

func (a Anchor) Valid() bool {
	return a == AnchorCaret || a == AnchorDollar || a == AnchorHash
}

// Signature adalah blok tanda tangan yang sama di semua template.
type Signature struct {
	Place  string        `json:"place"`
	Date   string        `json:"date"` // ISO YYYY-MM-DD
	Title  string        `json:"title"`
	Name   string        `json:"name"`
	NIP    string        `json:"nip"`
	Mode   SignatureMode `json:"mode"`
	Anchor Anchor        `json:"anchor"`
}

// AnchorGlyph: glyph terlihat hanya pada mode tte.
func (s Signature) AnchorGlyph() string {
	if s.Mode != SignatureTTE {
		return ""
	}
	if !s.Anchor.Valid() {
		return string(AnchorCaret)
	}
	return string(s.Anchor)
}

func (s Signature) IsTTE() bool {
	return s.Mode == SignatureTTE
}
