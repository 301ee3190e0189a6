package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zdziszkee/account-codes/internal/accounts"
	service "github.com/zdziszkee/account-codes/internal/services"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <account...>",
		Short: "Print type, subject code and affiliation of account numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier := accounts.NewClassifier(nil)
			for _, account := range args {
				c := classifier.Classify(account)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\ttype=%s\tsubject=%s\taffiliation=%s\n", c.Account, c.Type, c.Subject, c.Affiliation)
			}
			return nil
		},
	}
}

func newAffiliationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "affiliation <account...>",
		Short: "Print the issuing affiliation of account numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, account := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", account, accounts.ClassifyAffiliation(account))
			}
			return nil
		},
	}
}

func newGroupCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "group <amount...>",
		Short: "Insert thousands separators into amounts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatService := a.formatService()
			for _, amount := range args {
				grouped, err := formatService.Group(amount, strict)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), grouped)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject amounts with leading zeros")
	return cmd
}

func newWordsCmd(a *app) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "words <amount>",
		Short: "Spell an amount out in Korean",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spelled, err := a.formatService().Words(args[0], unit)
			if errors.Is(err, service.ErrRangeExceeded) {
				fmt.Fprintln(cmd.OutOrStdout(), spelled.Words)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), spelled.Words)
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "Unit suffix: won, man, sipman or dollar (default from config)")
	return cmd
}
