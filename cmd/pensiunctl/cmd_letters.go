package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"sipensiun/internal/format"
	"sipensiun/internal/letter"
	"sipensiun/internal/render"

	"github.com/spf13/cobra"
)

// letterStores membuka store aktif (remote bila backend ada) dan store lokal
// untuk fallback penyimpanan.
func letterStores(ctx context.Context) (active, remote, local letter.Store, closeFn func(), err error) {
	kv, closeKV, err := openKV(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	local = letter.NewLocalStore(kv)
	closeFn = closeKV

	if cfg.BackendBaseURL != "" {
		s, err := openSession(ctx)
		if err != nil {
			closeKV()
			return nil, nil, nil, nil, err
		}
		remote = letter.NewRemoteStore(s.client)
		closeFn = func() { s.close(); closeKV() }
	}
	return letter.Select(cfg.BackendBaseURL != "", remote, local), remote, local, closeFn, nil
}

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Kelola surat tersimpan (remote bila backend dikonfigurasi, selain itu lokal)",
}

var lettersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Daftar surat",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, _, _, closeFn, err := letterStores(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		letters, err := store.List(ctx)
		if err != nil {
			return err
		}
		sort.SliceStable(letters, func(i, j int) bool { return letters[i].TanggalSurat > letters[j].TanggalSurat })

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMOR\tTANGGAL\tPEGAWAI\tTTD")
		for _, l := range letters {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l.ID, l.NomorSurat, format.FormatIndonesianDate(l.TanggalSurat), l.NamaPegawai, l.SignatureMode)
		}
		return w.Flush()
	},
}

var lettersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Tampilkan satu surat sebagai JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, _, _, closeFn, err := letterStores(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		l, err := store.GetByID(ctx, args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	},
}

var lettersSaveCmd = &cobra.Command{
	Use:   "save <berkas.json|->",
	Short: "Simpan surat dari JSON (camelCase). Tanpa id = surat baru",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw []byte
		var err error
		if args[0] == "-" {
			raw, err = io.ReadAll(cmd.InOrStdin())
		} else {
			raw, err = os.ReadFile(args[0])
		}
		if err != nil {
			return err
		}
		var l letter.StoredLetter
		if err := json.Unmarshal(raw, &l); err != nil {
			return fmt.Errorf("JSON surat tidak valid: %w", err)
		}
		l = letter.Normalize(l)
		if errs := letter.Validate(l); len(errs) > 0 {
			keys := make([]string, 0, len(errs))
			for k := range errs {
				keys = append(keys, k+": "+errs[k])
			}
			sort.Strings(keys)
			return fmt.Errorf("validasi gagal: %s", strings.Join(keys, "; "))
		}

		ctx := cmd.Context()
		store, remote, local, closeFn, err := letterStores(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		var saved letter.StoredLetter
		if remote != nil {
			saved, err = letter.SaveWithFallback(ctx, remote, local, l)
			var fallback *letter.SavedLocallyError
			if errors.As(err, &fallback) {
				fmt.Fprintf(cmd.ErrOrStderr(), "peringatan: backend gagal (%v), surat disimpan lokal\n", fallback.Remote)
				err = nil
			}
		} else {
			saved, err = store.Save(ctx, l)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), saved.ID)
		return nil
	},
}

var lettersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Hapus surat",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, _, _, closeFn, err := letterStores(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		return store.Delete(ctx, args[0])
	},
}

var lettersPrintOut string

var lettersPrintCmd = &cobra.Command{
	Use:   "print <id>",
	Short: "Render surat tersimpan (layout SPTJM) menjadi dokumen cetak HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, _, _, closeFn, err := letterStores(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		l, err := store.GetByID(ctx, args[0])
		if err != nil {
			return err
		}
		r, err := render.New(cfg.Origin)
		if err != nil {
			return err
		}
		markup, err := r.SPTJM(l.SPTJM())
		if err != nil {
			return err
		}
		doc, err := render.PrintDocument(render.PrintOptions{
			Title:         render.KindSPTJM.Title() + " " + l.NomorSurat,
			Origin:        cfg.Origin,
			StylesheetURL: cfg.PrintStylesheet,
			Body:          markup,
		})
		if err != nil {
			return err
		}
		if lettersPrintOut == "" {
			_, err = io.WriteString(cmd.OutOrStdout(), doc)
			return err
		}
		return os.WriteFile(lettersPrintOut, []byte(doc), 0o644)
	},
}

func init() {
	lettersPrintCmd.Flags().StringVarP(&lettersPrintOut, "out", "o", "", "tulis ke berkas, default stdout")

	lettersCmd.AddCommand(lettersListCmd, lettersShowCmd, lettersSaveCmd, lettersDeleteCmd, lettersPrintCmd)
	rootCmd.AddCommand(lettersCmd)
}
