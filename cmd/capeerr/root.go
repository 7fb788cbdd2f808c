package main

import (
	"fmt"
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avila-r/cape"
	"github.com/avila-r/cape/gateway"
	"github.com/avila-r/cape/hresult"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "capeerr",
		Short: "Inspect CAPE-OPEN error codes and the classes they map to",
		Long: `capeerr resolves CAPE-OPEN status codes to their error classes, lists the
whole taxonomy and shows how a bare failure carrying a code is translated.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cfgFile); err != nil {
				return err
			}
			return applyConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.capeerr.yaml)")
	flags.StringP("output", "o", "", "output format: table, json, yaml")
	flags.String("color", "", "colored output: auto, always, never")
	flags.String("log-level", "", "log level: none, error, warning, info, verbose, trace")

	_ = viper.BindPFlag("output.format", flags.Lookup("output"))
	_ = viper.BindPFlag("output.color", flags.Lookup("color"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(
		newExplainCmd(),
		newListCmd(),
		newTranslateCmd(),
		newVersionCmd(),
	)
	return root
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <code>",
		Short: "Describe the class bound to a status code",
		Long: `The code may be hexadecimal (0x80040507), decimal (2147747079 or
-2147220217) or symbolic (ECapeOutOfBoundsHR, ECapeOutOfBounds).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := resolve(args[0])
			if err != nil {
				return err
			}
			return render(cmd, describe(class))
		},
	}
}

func newListCmd() *cobra.Command {
	var under string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every bound status code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ancestor *cape.ErrorClass
			if under != "" {
				class, err := resolve(under)
				if err != nil {
					return err
				}
				ancestor = class
			}

			rows := []codeInfo{}
			for _, code := range cape.Codes() {
				class, _ := cape.Lookup(code)
				if ancestor != nil && !class.Is(ancestor) {
					continue
				}
				rows = append(rows, describe(class))
			}
			return render(cmd, rows)
		},
	}

	cmd.Flags().StringVar(&under, "under", "", "only list the given class and its subclasses")
	return cmd
}

func newTranslateCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "translate <code> [message...]",
		Short: "Translate a bare failure carrying a status code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := hresult.Parse(args[0])
			if err != nil {
				return errors.Annotatef(err, "invalid code %q", args[0])
			}

			message := ""
			if len(args) > 1 {
				message = strings.Join(args[1:], " ")
			}

			translated := gateway.Translate(nil, hresult.New(code, message))
			result := translation{
				Code:        translated.Code().Hex(),
				Interface:   translated.Class().Interface,
				Name:        translated.Name(),
				Description: translated.Description(),
				Summary:     translated.Summary(),
			}
			if trace && translated.StackTrace != nil {
				result.Trace = strings.TrimSpace(fmt.Sprintf("%v", translated.StackTrace.Trimmed()))
			}
			return render(cmd, result)
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "include where the translated error was built")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of capeerr",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "capeerr version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "CAPE-OPEN codes: %d\n", len(cape.Codes()))
			return nil
		},
	}
}

// execute runs root over args. Signed decimal codes (-2147220217) are
// rewritten to hexadecimal first, pflag would read them as shorthand flags.
func execute(root *cobra.Command, args []string) error {
	rewritten := make([]string, len(args))
	for i, arg := range args {
		rewritten[i] = arg
		if len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9' {
			if code, err := hresult.Parse(arg); err == nil {
				rewritten[i] = code.Hex()
			}
		}
	}

	root.SetArgs(rewritten)
	return root.Execute()
}

// resolve accepts any form hresult.Parse does and returns the bound class.
func resolve(arg string) (*cape.ErrorClass, error) {
	code, err := hresult.Parse(arg)
	if err != nil {
		return nil, errors.Annotatef(err, "invalid code %q", arg)
	}

	class, ok := cape.Lookup(code)
	if !ok {
		return nil, errors.NotFoundf("class for %s", code.Hex())
	}
	return class, nil
}
