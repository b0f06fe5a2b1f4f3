package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"sipensiun/internal/backend"
	"sipensiun/internal/compliance"

	"github.com/spf13/cobra"
)

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("id tidak valid: %s", s)
	}
	return uint(id), nil
}

func flagText(f *bool) string {
	switch {
	case f == nil:
		return "belum diperiksa"
	case *f:
		return "memenuhi syarat"
	default:
		return "tidak memenuhi syarat"
	}
}

var showCmd = &cobra.Command{
	Use:   "show <pengajuan-id>",
	Short: "Tampilkan dokumen dan status kepatuhan pengajuan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		p, err := s.client.GetPengajuan(ctx, id)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s), tipe %s, status %s\n", p.Nama, p.NIP, p.TipePensiun, p.Status)
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDOKUMEN\tKEPATUHAN")
		for _, d := range p.Dokumen {
			fmt.Fprintf(w, "%d\t%s\t%s\n", d.ID, d.JenisDokumen, flagText(d.MemenuhiSyarat))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out, "kepatuhan:", compliance.Evaluate(p.Flags()))
		return nil
	},
}

var (
	markCompliant bool
	markReset     bool
)

var markCmd = &cobra.Command{
	Use:   "mark <dokumen-id>",
	Short: "Tandai dokumen memenuhi syarat (--ok) atau tidak (--ok=false)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		var flag *bool
		if !markReset {
			flag = &markCompliant
		}
		if err := s.client.SetKepatuhan(ctx, id, flag); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "dokumen %d: %s\n", id, flagText(flag))
		return nil
	},
}

var reviewNotes string

var reviewCmd = &cobra.Command{
	Use:   "review <pengajuan-id> <diterima|ditolak>",
	Short: "Putuskan pengajuan setelah pemeriksaan kepatuhan",
	Long: `Diterima hanya bila semua dokumen memenuhi syarat. Ditolak butuh
--catatan dan hanya bila ada dokumen yang belum atau tidak memenuhi syarat.
Aturan yang sama diperiksa ulang oleh server.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		decision := args[1]
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		p, err := s.client.GetPengajuan(ctx, id)
		if err != nil {
			return err
		}
		if err := compliance.Decide(decision, p.Flags(), reviewNotes); err != nil {
			return err
		}
		if err := s.client.UpdatePengajuanStatus(ctx, id, decision, reviewNotes); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "pengajuan %d %s\n", id, decision)
		return nil
	},
}

var (
	uploadType string
	uploadNote string
)

var uploadCmd = &cobra.Command{
	Use:   "upload <pengajuan-id> <berkas>",
	Short: "Unggah satu dokumen ke pengajuan draft",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		content, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		f, err := s.client.UploadDocument(ctx, backend.UploadRequest{
			PengajuanID:  id,
			Filename:     filepath.Base(args[1]),
			Content:      content,
			DocumentType: uploadType,
			Required:     true,
			Note:         uploadNote,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "dokumen %d tersimpan: %s (%s, %d byte)\n", f.ID, f.JenisDokumen, f.MimeType, f.Ukuran)
		return nil
	},
}

func init() {
	markCmd.Flags().BoolVar(&markCompliant, "ok", true, "memenuhi syarat")
	markCmd.Flags().BoolVar(&markReset, "reset", false, "kembalikan ke belum diperiksa")

	reviewCmd.Flags().StringVar(&reviewNotes, "catatan", "", "catatan verifikator (wajib untuk ditolak)")

	uploadCmd.Flags().StringVarP(&uploadType, "type", "t", "", "jenis dokumen, sesuai label pada daftar dokumen")
	uploadCmd.Flags().StringVar(&uploadNote, "note", "", "keterangan")
	_ = uploadCmd.MarkFlagRequired("type")

	rootCmd.AddCommand(showCmd, markCmd, reviewCmd, uploadCmd)
}
