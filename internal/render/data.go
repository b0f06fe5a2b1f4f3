package render

// Header adalah kop surat. Baris kosong diabaikan.
type Header struct {
	LogoURL string   `json:"logo_url"`
	Lines   []string `json:"lines"`
	Alamat  string   `json:"alamat"`
}

func DefaultHeader() Header {
	return Header{
		LogoURL: "/static/logo-kemenag.png",
		Lines: []string{
			"KEMENTERIAN AGAMA REPUBLIK INDONESIA",
			"KANTOR WILAYAH KEMENTERIAN AGAMA",
		},
	}
}

// Person adalah identitas pegawai atau penandatangan pada badan surat.
type Person struct {
	Nama            string `json:"nama"`
	NIP             string `json:"nip"`
	PangkatGolongan string `json:"pangkat_golongan"`
	Jabatan         string `json:"jabatan"`
	UnitKerja       string `json:"unit_kerja"`
}

// DisiplinData: dua pernyataan (hukuman disiplin dan proses pidana) dalam satu cetakan.
type DisiplinData struct {
	Header        Header    `json:"header"`
	NomorSurat    string    `json:"nomor_surat"`
	NomorPidana   string    `json:"nomor_pidana"`
	Penandatangan Person    `json:"penandatangan"`
	Pegawai       Person    `json:"pegawai"`
	Signature     Signature `json:"signature"`
}

type KematianData struct {
	Header           Header    `json:"header"`
	NomorSurat       string    `json:"nomor_surat"`
	Penandatangan    Person    `json:"penandatangan"`
	Almarhum         Person    `json:"almarhum"`
	TanggalMeninggal string    `json:"tanggal_meninggal"` // ISO
	TempatMeninggal  string    `json:"tempat_meninggal"`
	SebabMeninggal   string    `json:"sebab_meninggal"`
	AhliWaris        string    `json:"ahli_waris"`
	Hubungan         string    `json:"hubungan"`
	Signature        Signature `json:"signature"`
}

type IjazahRow struct {
	Nama       string `json:"nama"`
	NIP        string `json:"nip"`
	Jabatan    string `json:"jabatan"`
	Jenjang    string `json:"jenjang"`
	Jurusan    string `json:"jurusan"`
	Institusi  string `json:"institusi"`
	TahunLulus string `json:"tahun_lulus"`
	Keterangan string `json:"keterangan"`
}

// IjazahData adalah surat pengantar usul pengakuan ijazah.
type IjazahData struct {
	Header     Header      `json:"header"`
	NomorSurat string      `json:"nomor_surat"`
	Lampiran   string      `json:"lampiran"`
	Perihal    string      `json:"perihal"`
	Tujuan     string      `json:"tujuan"`
	Rows       []IjazahRow `json:"rows"`
	Signature  Signature   `json:"signature"`
}

type PengantarRow struct {
	Nama            string `json:"nama"`
	NIP             string `json:"nip"`
	PangkatGolongan string `json:"pangkat_golongan"`
	Jabatan         string `json:"jabatan"`
	UnitKerja       string `json:"unit_kerja"`
	JenisPensiun    string `json:"jenis_pensiun"`
	TMTPensiun      string `json:"tmt_pensiun"` // ISO
	Keterangan      string `json:"keterangan"`
}

// PengantarData adalah surat pengantar usul pensiun.
type PengantarData struct {
	Header     Header         `json:"header"`
	NomorSurat string         `json:"nomor_surat"`
	Lampiran   string         `json:"lampiran"`
	Perihal    string         `json:"perihal"`
	Tujuan     string         `json:"tujuan"`
	Rows       []PengantarRow `json:"rows"`
	Signature  Signature      `json:"signature"`
}

// SPTJMData: surat pernyataan tanggung jawab mutlak.
type SPTJMData struct {
	Header        Header    `json:"header"`
	NomorSurat    string    `json:"nomor_surat"`
	Penandatangan Person    `json:"penandatangan"`
	Pegawai       Person    `json:"pegawai"`
	Signature     Signature `json:"signature"`
}

// ChecklistItem adalah satu slot dokumen pada daftar periksa berkas.
type ChecklistItem struct {
	Index     int    `json:"index"`
	Label     string `json:"label"`
	Required  bool   `json:"required"`
	Uploaded  bool   `json:"uploaded"`
	Compliant *bool  `json:"compliant"`
}

func (i ChecklistItem) Icon() Icon {
	switch {
	case !i.Uploaded && i.Required:
		return IconMissing
	case !i.Uploaded:
		return IconOptional
	case i.Compliant == nil:
		return IconPending
	case *i.Compliant:
		return IconCompliant
	default:
		return IconNoncompliant
	}
}

type ChecklistData struct {
	Header  Header          `json:"header"`
	Title   string          `json:"title"`
	Pegawai Person          `json:"pegawai"`
	Items   []ChecklistItem `json:"items"`
}
