package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"sipensiun/internal/format"
	"sipensiun/internal/render"
	"sipensiun/internal/requirement"

	"github.com/spf13/cobra"
)

var (
	nomorTanggal string
	nomorKode    []string
)

var nomorCmd = &cobra.Command{
	Use:   "nomor <urut>",
	Short: "Susun nomor surat: urut/kode.../bulan/tahun",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		urut, err := format.ParseLetterSequence(args[0])
		if err != nil {
			return err
		}
		t := time.Now()
		if nomorTanggal != "" {
			if t, err = time.Parse("2006-01-02", nomorTanggal); err != nil {
				return fmt.Errorf("tanggal tidak valid: %w", err)
			}
		}
		kode := cfg.KodeSurat
		if len(nomorKode) > 0 {
			kode = nomorKode
		}
		fmt.Fprintln(cmd.OutOrStdout(), format.ComposeLetterNumber(urut, strconv.Itoa(int(t.Month())), strconv.Itoa(t.Year()), kode))
		fmt.Fprintln(cmd.ErrOrStderr(), "tanggal:", format.FormatIndonesianTime(t))
		return nil
	},
}

var dokumenCmd = &cobra.Command{
	Use:   "dokumen <tipe>",
	Short: "Daftar dokumen wajib per tipe pensiun (" + strings.Join(requirement.KnownTypes, ", ") + ")",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tipe := strings.ToLower(args[0])
		if !requirement.IsKnownType(tipe) {
			return fmt.Errorf("tipe pensiun harus salah satu dari %s", strings.Join(requirement.KnownTypes, ", "))
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NO\tDOKUMEN\tMAKS")
		for _, s := range requirement.Slots(tipe) {
			fmt.Fprintf(w, "%d\t%s\t%d KB\n", s.Index+1, s.Label, s.MaxBytes/1024)
		}
		fmt.Fprintf(w, "\tTotal %d dokumen\t\n", requirement.RequiredDocumentCount(tipe))
		return w.Flush()
	},
}

var (
	renderData string
	renderOut  string
)

var renderCmd = &cobra.Command{
	Use:   "render <jenis>",
	Short: "Render dokumen cetak HTML dari data JSON",
	Long: `Jenis: disiplin, kematian, ijazah, pengantar, sptjm.
Data JSON dibaca dari --data (atau "-" untuk stdin). Tanpa data,
hasilnya formulir kosong dengan kop default.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := render.Kind(strings.ToLower(args[0]))
		if !kind.Valid() {
			return fmt.Errorf("%w: %s", render.ErrUnknownKind, args[0])
		}

		var body []byte
		var err error
		switch renderData {
		case "":
		case "-":
			body, err = io.ReadAll(cmd.InOrStdin())
		default:
			body, err = os.ReadFile(renderData)
		}
		if err != nil {
			return err
		}

		r, err := render.New(cfg.Origin)
		if err != nil {
			return err
		}
		markup, err := r.RenderJSON(kind, body)
		if err != nil {
			return err
		}
		doc, err := render.PrintDocument(render.PrintOptions{
			Title:         kind.Title(),
			Origin:        cfg.Origin,
			StylesheetURL: cfg.PrintStylesheet,
			Body:          markup,
		})
		if err != nil {
			return err
		}

		if renderOut == "" {
			_, err = io.WriteString(cmd.OutOrStdout(), doc)
			return err
		}
		return os.WriteFile(renderOut, []byte(doc), 0o644)
	},
}

func init() {
	nomorCmd.Flags().StringVar(&nomorTanggal, "tanggal", "", "tanggal surat YYYY-MM-DD (default hari ini)")
	nomorCmd.Flags().StringSliceVar(&nomorKode, "kode", nil, "segmen kode (default INSTANSI_KODE)")

	renderCmd.Flags().StringVar(&renderData, "data", "", "berkas data JSON, - untuk stdin")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "tulis ke berkas, default stdout")

	rootCmd.AddCommand(nomorCmd, dokumenCmd, renderCmd)
}
