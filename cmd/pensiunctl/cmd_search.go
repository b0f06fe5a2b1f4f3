package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"sipensiun/internal/personnel"

	"github.com/spf13/cobra"
)

var searchInteractive bool

var searchCmd = &cobra.Command{
	Use:   "search [kata kunci]",
	Short: "Cari pegawai (nama atau NIP, minimal 2 karakter)",
	Long: `Tanpa --interactive, satu pencarian dijalankan lalu hasilnya dicetak.
Dengan --interactive, setiap baris stdin menjadi kata kunci baru; pencarian
lama dibatalkan dan hanya hasil terbaru yang dicetak.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		live := personnel.NewLiveSearch(personnel.Remote{Fetcher: s.client}, personnel.DefaultDebounce)
		defer live.Close()

		if searchInteractive {
			return searchLoop(ctx, live, cmd.InOrStdin(), cmd.OutOrStdout())
		}
		if len(args) == 0 {
			return fmt.Errorf("kata kunci wajib diisi")
		}
		return searchOnce(ctx, live, strings.Join(args, " "), cmd.OutOrStdout())
	},
}

// searchOnce menunggu state selesai untuk q lalu mencetaknya.
func searchOnce(ctx context.Context, live *personnel.LiveSearch, q string, out io.Writer) error {
	q = strings.TrimSpace(q)
	done := make(chan personnel.State, 1)
	live.OnChange(func(st personnel.State) {
		if st.Query == q && !st.Loading {
			select {
			case done <- st:
			default:
			}
		}
	})
	live.Query(q)

	ctx, cancel := context.WithTimeout(ctx, cfg.BackendTimeout+time.Second)
	defer cancel()
	select {
	case st := <-done:
		if st.Err != "" {
			return fmt.Errorf("%s", st.Err)
		}
		printRecords(out, st)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func searchLoop(ctx context.Context, live *personnel.LiveSearch, in io.Reader, out io.Writer) error {
	var mu sync.Mutex
	last := ""
	settled := make(chan struct{}, 1)

	live.OnChange(func(st personnel.State) {
		if st.Loading {
			return
		}
		if st.Err != "" {
			fmt.Fprintln(out, "error:", st.Err)
		} else {
			printRecords(out, st)
		}
		mu.Lock()
		isLast := st.Query == last
		mu.Unlock()
		if isLast {
			select {
			case settled <- struct{}{}:
			default:
			}
		}
	})

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		q := strings.TrimSpace(sc.Text())
		mu.Lock()
		last = q
		mu.Unlock()
		// Sinyal dari query sebelumnya tidak berlaku lagi
		select {
		case <-settled:
		default:
		}
		live.Query(q)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if last == "" {
		return nil
	}

	// Tunggu hasil kata kunci terakhir sebelum keluar
	ctx, cancel := context.WithTimeout(ctx, personnel.DefaultDebounce+cfg.BackendTimeout+time.Second)
	defer cancel()
	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func printRecords(out io.Writer, st personnel.State) {
	if len([]rune(st.Query)) < personnel.MinQueryLength {
		fmt.Fprintln(out, "kata kunci minimal 2 karakter")
		return
	}
	if len(st.Results) == 0 {
		fmt.Fprintf(out, "tidak ada pegawai untuk %q\n", st.Query)
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NIP\tNAMA\tJABATAN\tUNIT\tPANGKAT")
	for _, r := range st.Results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.NIP, r.Name, r.Position, r.Unit, r.Rank)
	}
	_ = w.Flush()
}

func init() {
	searchCmd.Flags().BoolVarP(&searchInteractive, "interactive", "i", false, "baca kata kunci dari stdin")
	rootCmd.AddCommand(searchCmd)
}
