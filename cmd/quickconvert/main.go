// Package main provides the quickconvert binary entry point: a thin
// command-line host over the conversion core, standing in for the graphical
// frontend. It lists converters, shows their units and parameters, and runs
// single conversions.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quickconvert/quickconvert/internal/core/ports"
	"github.com/quickconvert/quickconvert/internal/core/services"
	"github.com/quickconvert/quickconvert/internal/utils"
	"github.com/quickconvert/quickconvert/pkg/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "quickconvert",
		Short:         "Unit conversion toolbox",
		Long:          "Quickconvert converts values between units of length, weight, temperature,\ndata size, battery capacity and currency.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(listCmd())
	cmd.AddCommand(unitsCmd())
	cmd.AddCommand(convertCmd())
	return cmd
}

// buildRegistry wires the default converter set from configuration.
func buildRegistry() (*services.ConverterRegistry, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return services.NewDefaultRegistry(services.DefaultRegistryOptions{
		RateAPIBaseURL: cfg.RateAPIBaseURL,
		BaseCurrency:   cfg.BaseCurrency,
		RequestTimeout: cfg.RateRequestTimeout,
		RateTTL:        cfg.RateCacheTTL,
		Logger:         logger,
	})
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available converters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := buildRegistry()
			if err != nil {
				return err
			}
			for _, name := range registry.ListNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units <converter>",
		Short: "Show the units (and parameters) of a converter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := buildRegistry()
			if err != nil {
				return err
			}
			converter, err := registry.GetConverter(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(converter.Units(), ", "))
			if pc, ok := converter.(ports.ParameterizedConverter); ok {
				for name, spec := range pc.Parameters() {
					fmt.Fprintf(cmd.OutOrStdout(), "parameter %s: %s (default %s, required=%t)\n",
						name, spec.Label, spec.Default, spec.Required)
				}
			}
			return nil
		},
	}
}

func convertCmd() *cobra.Command {
	var rawParams []string

	cmd := &cobra.Command{
		Use:   "convert <converter> <value> <from-unit> <to-unit>",
		Short: "Convert a value between two units",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%q is not a valid number", args[1])
			}

			params, err := parseParams(rawParams)
			if err != nil {
				return err
			}

			registry, err := buildRegistry()
			if err != nil {
				return err
			}
			converter, err := registry.GetConverter(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			var result float64
			if pc, ok := converter.(ports.ParameterizedConverter); ok {
				result, err = pc.ConvertWithParams(ctx, value, args[2], args[3], params)
			} else {
				if len(params) > 0 {
					return errors.New("this converter takes no parameters")
				}
				result, err = converter.Convert(ctx, value, args[2], args[3])
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), utils.FormatResult(result))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&rawParams, "param", nil, "extra converter parameter as name=value (repeatable), e.g. --param voltage=12")
	return cmd
}

// parseParams turns repeated name=value flags into a numeric parameter map.
func parseParams(raw []string) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	params := make(map[string]float64, len(raw))
	for _, entry := range raw {
		name, valueStr, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected name=value", entry)
		}
		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %q is not a valid number", name, valueStr)
		}
		params[name] = value
	}
	return params, nil
}
