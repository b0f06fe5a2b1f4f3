package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"sipensiun/internal/format"

	"github.com/spf13/cobra"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <nip>",
	Short: "Login dan simpan token untuk perintah berikutnya",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		tok, err := s.client.Login(ctx, format.StripNonDigits(args[0]), loginPassword)
		if err != nil {
			return err
		}
		if err := s.saveToken(ctx, tok); err != nil {
			return err
		}
		u, err := s.client.CurrentUser(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Login sebagai %s (%s), role %s\n", u.Nama, u.NIP, u.Role)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Tampilkan pengguna yang sedang login",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		u, err := s.client.CurrentUser(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s), role %s\n", u.Nama, u.NIP, u.Role)
		if u.ImpersonatorID != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "sedang impersonasi oleh pengguna #%d\n", *u.ImpersonatorID)
		}
		return nil
	},
}

var usersSearch, usersRole string

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Daftar akun (butuh izin kelola_pegawai)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		params := map[string]string{}
		if usersSearch != "" {
			params["search"] = usersSearch
		}
		if usersRole != "" {
			params["role"] = usersRole
		}
		users, err := s.client.ListUsers(ctx, params)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNIP\tNAMA\tROLE")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.NIP, u.Nama, u.Role)
		}
		return w.Flush()
	},
}

var stopImpersonation bool

var impersonateCmd = &cobra.Command{
	Use:   "impersonate <user-id>",
	Short: "Masuk sebagai pengguna lain (superadmin), --stop untuk kembali",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("user-id tidak valid: %w", err)
		}
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		var tok string
		if stopImpersonation {
			tok, err = s.client.StopImpersonation(ctx, uint(id))
		} else {
			tok, err = s.client.StartImpersonation(ctx, uint(id))
		}
		if err != nil {
			return err
		}
		if err := s.saveToken(ctx, tok); err != nil {
			return err
		}
		u, err := s.client.CurrentUser(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sekarang sebagai %s (%s)\n", u.Nama, u.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password")
	_ = loginCmd.MarkFlagRequired("password")

	usersCmd.Flags().StringVar(&usersSearch, "search", "", "cari nama atau NIP")
	usersCmd.Flags().StringVar(&usersRole, "role", "", "filter role")

	impersonateCmd.Flags().BoolVar(&stopImpersonation, "stop", false, "hentikan impersonasi")

	rootCmd.AddCommand(loginCmd, whoamiCmd, usersCmd, impersonateCmd)
}
