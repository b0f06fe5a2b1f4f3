package render

import (
	"bytes"
	"html/template"
	"strings"
)

type PrintOptions struct {
	Title         string
	Origin        string
	StylesheetURL string
	Body          string // markup hasil Renderer
}

var printTmpl = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<base href="{{.Base}}">
{{- with .StylesheetURL}}
<link rel="stylesheet" href="{{.}}" media="all">
{{- end}}
<style>
@page { size: A4; margin: 2cm 2cm 2cm 2.5cm; }
body { font-family: "Times New Roman", serif; font-size: 12pt; color: #000; }
.kop { display: flex; align-items: center; gap: 16px; }
.kop-logo { width: 80px; height: auto; }
.kop-teks { flex: 1; text-align: center; font-weight: bold; }
.kop-teks p { margin: 0; }
.judul { text-align: center; text-decoration: underline; }
.nomor { text-align: center; margin-top: -8px; }
table.daftar { width: 100%; border-collapse: collapse; }
table.daftar th, table.daftar td { border: 1px solid #000; padding: 4px; vertical-align: top; }
.ttd { width: 45%; margin-left: auto; margin-top: 32px; }
.ttd-ruang { height: 72px; }
.tte-kosong { visibility: hidden; }
.page-break { page-break-after: always; break-after: page; }
@media print { .page-break { height: 0; } }
</style>
</head>
<body>
{{.Body}}
<script>
(function () {
  var imgs = Array.prototype.slice.call(document.images);
  var pending = imgs.length;
  function ready() {
    pending -= 1;
    if (pending <= 0) { window.focus(); window.print(); }
  }
  if (pending === 0) { window.focus(); window.print(); return; }
  imgs.forEach(function (img) {
    if (img.complete) { ready(); return; }
    img.addEventListener("load", ready);
    img.addEventListener("error", ready);
  });
})();
</script>
</body>
</html>
`))

// PrintDocument membungkus markup surat menjadi dokumen HTML lengkap yang
// memanggil print() setelah semua gambar selesai dimuat atau gagal.
func PrintDocument(o PrintOptions) (string, error) {
	base := strings.TrimRight(o.Origin, "/") + "/"
	var buf bytes.Buffer
	err := printTmpl.Execute(&buf, struct {
		Title         string
		Base          string
		StylesheetURL string
		Body          template.HTML
	}{
		Title:         o.Title,
		Base:          base,
		StylesheetURL: o.StylesheetURL,
		Body:          template.HTML(o.Body),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
