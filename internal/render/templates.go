package render

const layouts = `
{{define "kop"}}<header class="kop">
  {{- with .LogoURL}}<img class="kop-logo" src="{{.}}" alt="Logo">{{end}}
  <div class="kop-teks">
    {{- range .Lines}}{{if .}}<p>{{.}}</p>{{end}}{{end}}
    {{- with .Alamat}}<p class="kop-alamat">{{.}}</p>{{end}}
  </div>
</header>
<hr class="kop-garis">{{end}}

{{define "identitas"}}<table class="identitas">
  <tr><td>Nama</td><td>:</td><td>{{.Nama}}</td></tr>
  <tr><td>NIP</td><td>:</td><td>{{nip .NIP}}</td></tr>
  <tr><td>Pangkat/Gol. Ruang</td><td>:</td><td>{{.PangkatGolongan}}</td></tr>
  <tr><td>Jabatan</td><td>:</td><td>{{.Jabatan}}</td></tr>
  <tr><td>Unit Kerja</td><td>:</td><td>{{.UnitKerja}}</td></tr>
</table>{{end}}

{{define "ttd"}}<div class="ttd">
  <p>{{.Place}}{{with tanggal .Date}}, {{.}}{{end}}</p>
  <p>{{.Title}},</p>
  <div class="ttd-ruang">
    {{- if .IsTTE}}<span class="tte-anchor">{{.AnchorGlyph}}</span>
    {{- else}}<span class="tte-anchor tte-kosong" aria-hidden="true">&nbsp;</span>{{end -}}
  </div>
  <p class="ttd-nama">{{.Name}}</p>
  <p>NIP. {{nip .NIP}}</p>
</div>{{end}}

{{define "disiplin"}}<section class="halaman">
{{template "kop" .Header}}
<h3 class="judul">SURAT PERNYATAAN<br>TIDAK PERNAH DIJATUHI HUKUMAN DISIPLIN TINGKAT SEDANG/BERAT</h3>
<p class="nomor">Nomor: {{.NomorSurat}}</p>
<p>Yang bertanda tangan di bawah ini:</p>
{{template "identitas" .Penandatangan}}
<p>dengan ini menyatakan dengan sesungguhnya bahwa Pegawai Negeri Sipil:</p>
{{template "identitas" .Pegawai}}
<p>dalam satu tahun terakhir tidak pernah dijatuhi hukuman disiplin tingkat sedang/berat.</p>
<p>Demikian surat pernyataan ini dibuat dengan sesungguhnya untuk dapat dipergunakan sebagaimana mestinya.</p>
{{template "ttd" .Signature}}
</section>
<div class="page-break"></div>
<section class="halaman">
{{template "kop" .Header}}
<h3 class="judul">SURAT PERNYATAAN<br>TIDAK SEDANG MENJALANI PROSES PIDANA ATAU PERNAH DIPIDANA PENJARA</h3>
<p class="nomor">Nomor: {{.NomorPidana}}</p>
<p>Yang bertanda tangan di bawah ini:</p>
{{template "identitas" .Penandatangan}}
<p>dengan ini menyatakan dengan sesungguhnya bahwa Pegawai Negeri Sipil:</p>
{{template "identitas" .Pegawai}}
<p>tidak sedang menjalani proses pidana atau pernah dipidana penjara berdasarkan putusan pengadilan yang telah berkekuatan hukum tetap.</p>
<p>Demikian surat pernyataan ini dibuat dengan sesungguhnya untuk dapat dipergunakan sebagaimana mestinya.</p>
{{template "ttd" .Signature}}
</section>{{end}}

{{define "kematian"}}<section class="halaman">
{{template "kop" .Header}}
<h3 class="judul">SURAT KETERANGAN KEMATIAN</h3>
<p class="nomor">Nomor: {{.NomorSurat}}</p>
<p>Yang bertanda tangan di bawah ini:</p>
{{template "identitas" .Penandatangan}}
<p>menerangkan bahwa:</p>
{{template "identitas" .Almarhum}}
<p>telah meninggal dunia pada:</p>
<table class="identitas">
  <tr><td>Tanggal</td><td>:</td><td>{{tanggal .TanggalMeninggal}}</td></tr>
  <tr><td>Tempat</td><td>:</td><td>{{.TempatMeninggal}}</td></tr>
  <tr><td>Sebab</td><td>:</td><td>{{.SebabMeninggal}}</td></tr>
</table>
{{- if .AhliWaris}}
<p>Surat keterangan ini diberikan kepada {{.AhliWaris}}{{with .Hubungan}} ({{.}}){{end}} sebagai ahli waris untuk keperluan pengurusan pensiun janda/duda.</p>
{{- end}}
<p>Demikian surat keterangan ini dibuat untuk dapat dipergunakan sebagaimana mestinya.</p>
{{template "ttd" .Signature}}
</section>{{end}}

{{define "kepala-surat"}}<table class="kepala-surat">
  <tr><td>Nomor</td><td>:</td><td>{{.NomorSurat}}</td></tr>
  <tr><td>Lampiran</td><td>:</td><td>{{.Lampiran}}</td></tr>
  <tr><td>Perihal</td><td>:</td><td>{{.Perihal}}</td></tr>
</table>
<p class="tujuan">Yth. {{.Tujuan}}</p>{{end}}

{{define "ijazah"}}<section class="halaman">
{{template "kop" .Header}}
{{template "kepala-surat" .}}
<p>Bersama ini kami sampaikan usul pengakuan ijazah Pegawai Negeri Sipil sebagai berikut:</p>
<table class="daftar">
  <thead><tr><th>No</th><th>Nama / NIP</th><th>Jabatan</th><th>Ijazah</th><th>Tahun Lulus</th><th>Keterangan</th></tr></thead>
  <tbody>
  {{- range $i, $r := .Rows}}
  <tr><td>{{inc $i}}</td><td>{{$r.Nama}}<br>{{nip $r.NIP}}</td><td>{{$r.Jabatan}}</td><td>{{$r.Jenjang}} {{$r.Jurusan}}<br>{{$r.Institusi}}</td><td>{{$r.TahunLulus}}</td><td>{{$r.Keterangan}}</td></tr>
  {{- end}}
  </tbody>
</table>
<p>Demikian disampaikan, atas perhatiannya diucapkan terima kasih.</p>
{{template "ttd" .Signature}}
</section>{{end}}

{{define "pengantar"}}<section class="halaman">
{{template "kop" .Header}}
{{template "kepala-surat" .}}
<p>Bersama ini kami sampaikan usul pensiun Pegawai Negeri Sipil sebagai berikut:</p>
<table class="daftar">
  <thead><tr><th>No</th><th>Nama / NIP</th><th>Pangkat/Gol.</th><th>Jabatan / Unit Kerja</th><th>Jenis Pensiun</th><th>TMT Pensiun</th><th>Keterangan</th></tr></thead>
  <tbody>
  {{- range $i, $r := .Rows}}
  <tr><td>{{inc $i}}</td><td>{{$r.Nama}}<br>{{nip $r.NIP}}</td><td>{{$r.PangkatGolongan}}</td><td>{{$r.Jabatan}}<br>{{$r.UnitKerja}}</td><td>{{$r.JenisPensiun}}</td><td>{{tanggal $r.TMTPensiun}}</td><td>{{$r.Keterangan}}</td></tr>
  {{- end}}
  </tbody>
</table>
<p>Kelengkapan berkas masing-masing pegawai terlampir. Demikian disampaikan, atas perhatiannya diucapkan terima kasih.</p>
{{template "ttd" .Signature}}
</section>{{end}}

{{define "sptjm"}}<section class="halaman">
{{template "kop" .Header}}
<h3 class="judul">SURAT PERNYATAAN TANGGUNG JAWAB MUTLAK</h3>
<p class="nomor">Nomor: {{.NomorSurat}}</p>
<p>Yang bertanda tangan di bawah ini:</p>
{{template "identitas" .Penandatangan}}
<p>menyatakan bertanggung jawab penuh atas kebenaran data dan dokumen usul pensiun atas nama:</p>
{{template "identitas" .Pegawai}}
<p>Apabila di kemudian hari terdapat kekeliruan data, kami bersedia bertanggung jawab sesuai ketentuan peraturan perundang-undangan.</p>
<p>Demikian surat pernyataan ini dibuat dengan sebenarnya.</p>
{{template "ttd" .Signature}}
</section>{{end}}

{{define "checklist"}}<section class="halaman">
{{template "kop" .Header}}
<h3 class="judul">{{.Title}}</h3>
{{template "identitas" .Pegawai}}
<table class="daftar checklist">
  <thead><tr><th>No</th><th>Dokumen</th><th>Wajib</th><th>Status</th></tr></thead>
  <tbody>
  {{- range .Items}}
  <tr><td>{{inc .Index}}</td><td>{{.Label}}</td><td>{{if .Required}}Ya{{else}}Tidak{{end}}</td><td>{{.Icon.HTML}} {{.Icon}}</td></tr>
  {{- end}}
  </tbody>
</table>
</section>{{end}}
`
