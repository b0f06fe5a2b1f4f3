// pensiunctl adalah klien baris perintah SIPENSIUN: pencarian pegawai,
// penomoran surat, cetak dokumen, pemeriksaan berkas, dan penyimpanan surat.
package main

import (
	"fmt"
	"os"

	"sipensiun/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	backendURL string
	tokenFlag  string
	verbose    bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pensiunctl",
	Short: "Klien baris perintah SIPENSIUN",
	Long: `pensiunctl berbicara dengan backend SIPENSIUN lewat REST.

Tanpa BACKEND_BASE_URL, perintah "letters" memakai penyimpanan lokal
(berkas di LOCAL_STORE_DIR, atau Redis bila REDIS_URL diisi).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if backendURL != "" {
			cfg.BackendBaseURL = backendURL
		}
	},
}

func init() {
	_ = godotenv.Load()
	cfg = config.Load()

	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "base URL backend (default BACKEND_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "bearer token (default token hasil login)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug ke stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
