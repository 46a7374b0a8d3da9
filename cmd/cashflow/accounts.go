package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/cashflow/internal/cli"
	"github.com/Veraticus/cashflow/internal/model"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List and manage accounts",
		Args:  cobra.NoArgs,
		RunE:  runAccountsList,
	}
	cmd.Flags().StringP("format", "f", formatTable, "Output format (table, json)")

	cmd.AddCommand(accountsAddCmd())

	return cmd
}

func accountsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <id> <name>",
		Short: "Create or rename an account",
		Long: `Create an account, or update the name and balance of an existing one.

Examples:
  cashflow accounts add checking "Everyday Checking" --balance 2500 --default
  cashflow accounts add savings Savings`,
		Args: cobra.ExactArgs(2),
		RunE: runAccountsAdd,
	}

	cmd.Flags().Float64("balance", 0, "Current balance")
	cmd.Flags().Bool("default", false, "Make this the default account")

	return cmd
}

func runAccountsList(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := initStorage(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	accounts, err := store.GetAccounts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	if format == formatJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), accounts)
	}
	return cli.NewRenderer(cmd.OutOrStdout(), cli.WithCurrency(cfg.Currency)).Accounts(accounts)
}

func runAccountsAdd(cmd *cobra.Command, args []string) error {
	balance, _ := cmd.Flags().GetFloat64("balance")
	isDefault, _ := cmd.Flags().GetBool("default")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := initStorage(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	account := &model.Account{
		ID:        args[0],
		Name:      args[1],
		Balance:   balance,
		IsDefault: isDefault,
	}
	if err := store.SaveAccount(cmd.Context(), account); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Saved account %s (%s)", account.Name, account.ID))) //nolint:forbidigo // User-facing output
	return nil
}
