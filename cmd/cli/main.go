// Command cli inspects accounts and executes transfers against the
// configured database without going through the HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/amirasaad/banksim/infra/initializer"
	"github.com/amirasaad/banksim/pkg/app"
	"github.com/amirasaad/banksim/pkg/config"
	"github.com/amirasaad/banksim/pkg/domain"
	"github.com/amirasaad/banksim/pkg/domain/account"
	"github.com/amirasaad/banksim/pkg/dto"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  accounts [--active]                        list accounts
  transfer <from> <to> <amount> [message]    move money between accounts
  transactions [account-id]                  list the last transactions or one account's`

var errUsage = errors.New("invalid usage")

var (
	okStyle   = color.New(color.FgGreen, color.Bold)
	errStyle  = color.New(color.FgRed, color.Bold)
	headStyle = color.New(color.FgCyan, color.Bold)
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		_, _ = errStyle.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}
	deps, cleanup, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		_, _ = errStyle.Fprintln(os.Stderr, "Failed to initialize dependencies:", err)
		os.Exit(1)
	}

	err = run(context.Background(), app.New(deps, cfg), os.Args[1:], os.Stdout)
	cleanup()
	switch {
	case errors.Is(err, errUsage):
		fmt.Println(usage)
		os.Exit(2)
	case err != nil:
		_, _ = errStyle.Fprintln(os.Stderr, domain.Message(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "accounts":
		return listAccounts(ctx, a, args[1:], out)
	case "transfer":
		return transfer(ctx, a, args[1:], out)
	case "transactions":
		return listTransactions(ctx, a, args[1:], out)
	default:
		return errUsage
	}
}

func listAccounts(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	var (
		accounts []*account.Account
		err      error
	)
	switch {
	case len(args) == 0:
		accounts, err = a.AccountService.ListAllAccount(ctx)
	case len(args) == 1 && args[0] == "--active":
		accounts, err = a.AccountService.ListAllActiveAccount(ctx)
	default:
		return errUsage
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = headStyle.Fprintln(w, "ID\tUSER\tTYPE\tSTATUS\tVERIFIED\tBALANCE")
	for _, acc := range accounts {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%s\n",
			acc.ID, acc.UserID, acc.AccountType, acc.AccountStatus, acc.OtpVerified, acc.Balance.StringFixed(2))
	}
	return w.Flush()
}

func transfer(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	if len(args) < 3 {
		return errUsage
	}
	from, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid sender id %q: %w", args[0], err)
	}
	to, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid receiver id %q: %w", args[1], err)
	}
	amount, err := decimal.NewFromString(args[2])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[2], err)
	}

	tx, err := a.TransactionService.MakeTransfer(ctx, dto.TransferCommand{
		Amount:     amount,
		SenderID:   from,
		ReceiverID: to,
		Message:    strings.Join(args[3:], " "),
	})
	if err != nil {
		return err
	}
	_, err = okStyle.Fprintf(out, "Transferred %s from %s to %s (transaction %s)\n",
		tx.Amount.StringFixed(2), tx.SenderID, tx.ReceiverID, tx.ID)
	return err
}

func listTransactions(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	var (
		txs []*account.Transaction
		err error
	)
	switch len(args) {
	case 0:
		txs, err = a.TransactionService.ListLastTransactions(ctx)
	case 1:
		id, perr := uuid.Parse(args[0])
		if perr != nil {
			return fmt.Errorf("invalid account id %q: %w", args[0], perr)
		}
		txs, err = a.TransactionService.ListByAccount(ctx, id)
	default:
		return errUsage
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = headStyle.Fprintln(w, "DATE\tSENDER\tRECEIVER\tAMOUNT\tMESSAGE")
	for _, tx := range txs {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			tx.Date.Format("2006-01-02 15:04:05"), tx.SenderID, tx.ReceiverID, tx.Amount.StringFixed(2), tx.Message)
	}
	return w.Flush()
}
