package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rental-backend/internal/config"
	"rental-backend/internal/domain"
	"rental-backend/internal/logger"
	"rental-backend/internal/pricing"
	"rental-backend/internal/repository/sqlstore"
	"rental-backend/internal/service"
)

// openStore loads the configuration named by --config and connects.
func openStore(cmd *cobra.Command) (*sqlstore.Store, func(), error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, dialect, err := sqlstore.Open(cmd.Context(), cfg.Database.Driver, cfg.DSN(), cfg.Database.MaxOpenConns)
	if err != nil {
		return nil, nil, err
	}
	return sqlstore.NewStore(db, dialect), func() { db.Close() }, nil
}

func SeedUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-user",
		Short: "Create a back-office user",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			store, closeFn, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			// Tokens are never issued here.
			authSvc := service.NewAuthService(store.Users, nil)
			user, err := authSvc.CreateUser(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s)\n", user.ID, user.Email)
			return nil
		},
	}
	cmd.Flags().String("email", "", "Email address of the new user")
	cmd.Flags().String("password", "", "Password of the new user (at least 8 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func QuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the price breakdown of an intake form saved as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return quote(cmd.Context(), in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("file", "f", "-", "JSON form state to price, - for stdin")
	return cmd
}

func quote(ctx context.Context, in io.Reader, out io.Writer) error {
	var sub domain.OrderSubmission
	if err := json.NewDecoder(in).Decode(&sub); err != nil {
		return fmt.Errorf("failed to parse form state: %w", err)
	}
	b, err := service.NewRentalService(nil, nil).Quote(ctx, &sub)
	if err != nil {
		return err
	}
	printBreakdown(out, b)
	return nil
}

func printBreakdown(out io.Writer, b *pricing.Breakdown) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Days\t%d\t\n", b.Days)
	for _, g := range b.Items {
		fmt.Fprintf(tw, "%dx %s\t%s\t\n", g.Count, g.ItemNumber, g.Total.StringFixed(2))
	}
	for _, s := range b.Services {
		fmt.Fprintf(tw, "%s\t%s\t\n", s.Label, s.Total.StringFixed(2))
	}
	fmt.Fprintf(tw, "Subtotal\t%s\t\n", b.Subtotal.StringFixed(2))
	fmt.Fprintf(tw, "VAT 21%%\t%s\t\n", b.VAT.StringFixed(2))
	fmt.Fprintf(tw, "Deposit\t%s\t\n", b.Deposit.StringFixed(2))
	fmt.Fprintf(tw, "Total\t%s\t\n", b.Total.StringFixed(2))
	tw.Flush()
}

func PingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check database connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeFn, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := store.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("database unreachable: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "database connected (%s)\n", store.Dialect())
			return nil
		},
	}
}
