package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AashmanShukla3223/Financial-Golf/internal/config"
	"github.com/AashmanShukla3223/Financial-Golf/internal/usecase/interest"
)

func newRootCmd() *cobra.Command {
	v := config.NewViper()

	root := &cobra.Command{
		Use:           "fingolf",
		Short:         "Financial Golf compound interest API",
		SilenceUsage:  true,
		// bare "fingolf" behaves like "fingolf serve"
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, v)
		},
	}
	root.PersistentFlags().String("config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("host", "", "listen host (default 127.0.0.1)")
	root.PersistentFlags().String("port", "", "listen port (default 8082)")
	_ = v.BindPFlag("app.host", root.PersistentFlags().Lookup("host"))
	_ = v.BindPFlag("app.port", root.PersistentFlags().Lookup("port"))

	root.AddCommand(newServeCmd(v), newCalcCmd())
	return root
}

func newServeCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, v)
		},
	}
}

func runServe(cmd *cobra.Command, v *viper.Viper) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return serve(cmd.Context(), cfg)
}

func newCalcCmd() *cobra.Command {
	var (
		principal, rate float64
		years           int
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print one compound interest result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// unset flags fall back to the same defaults as the HTTP endpoint
			var in interest.CalculateInput
			if cmd.Flags().Changed("principal") {
				in.Principal = principal
			}
			if cmd.Flags().Changed("rate") {
				in.Rate = rate
			}
			if cmd.Flags().Changed("years") {
				in.Years = years
			}
			dto, err := interest.NewUsecase().Calculate(in)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto)
		},
	}
	cmd.Flags().Float64Var(&principal, "principal", 0, "initial amount")
	cmd.Flags().Float64Var(&rate, "rate", 0.05, "annual rate as a fraction (0.05 = 5%)")
	cmd.Flags().IntVar(&years, "years", 10, "number of years")
	return cmd
}
