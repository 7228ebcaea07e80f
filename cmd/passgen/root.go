package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

type globalFlags struct {
	count int
	seed  string
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:          "passgen",
		Short:        "Generate random passwords, memorable passwords and PINs",
		SilenceUsage: true,
	}
	root.PersistentFlags().IntVarP(&g.count, "count", "c", 1, "number of credentials to generate")
	root.PersistentFlags().StringVar(&g.seed, "seed", "", "seed for reproducible output (not for real credentials)")

	root.AddCommand(
		newRandomCmd(&g),
		newMemorableCmd(&g),
		newPinCmd(&g),
		newTokenCmd(),
	)
	return root
}

func newRandomCmd(g *globalFlags) *cobra.Command {
	var (
		length  int
		numbers bool
		symbols bool
	)
	cmd := &cobra.Command{
		Use:     "random",
		Aliases: []string{"r"},
		Short:   fmt.Sprintf("Random characters (%d-%d long)", crypto.MinRandomLength, crypto.MaxRandomLength),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, g, model.GenerateRequest{
				Type:    string(crypto.KindRandom),
				Length:  length,
				Numbers: &numbers,
				Symbols: &symbols,
			})
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", service.DefaultRandomLength, "password length")
	cmd.Flags().BoolVarP(&numbers, "numbers", "n", true, "include digits")
	cmd.Flags().BoolVarP(&symbols, "symbols", "s", true, "include special characters")
	return cmd
}

func newMemorableCmd(g *globalFlags) *cobra.Command {
	var (
		words      int
		separator  string
		capitalize bool
	)
	cmd := &cobra.Command{
		Use:     "memorable",
		Aliases: []string{"m"},
		Short:   fmt.Sprintf("Dictionary words joined by a separator (%d-%d words)", crypto.MinWordCount, crypto.MaxWordCount),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// An empty request separator means the default; an empty flag does not.
			if cmd.Flags().Changed("separator") && separator == "" {
				return fmt.Errorf("%w: separator must not be empty", crypto.ErrInvalidParameter)
			}
			return run(cmd, g, model.GenerateRequest{
				Type:       string(crypto.KindMemorable),
				Words:      words,
				Separator:  separator,
				Capitalize: capitalize,
			})
		},
	}
	cmd.Flags().IntVarP(&words, "words", "w", service.DefaultWordCount, "number of words")
	cmd.Flags().StringVar(&separator, "separator", string(service.DefaultSeparator), "separator, one of "+crypto.Symbols)
	cmd.Flags().BoolVar(&capitalize, "capitalize", false, "capitalize each word")
	return cmd
}

func newPinCmd(g *globalFlags) *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:     "pin",
		Aliases: []string{"p"},
		Short:   fmt.Sprintf("Numeric PIN (%d-%d digits)", crypto.MinPinLength, crypto.MaxPinLength),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, g, model.GenerateRequest{
				Type:   string(crypto.KindPin),
				Length: length,
			})
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", service.DefaultPinLength, "number of digits")
	return cmd
}

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token CLIENT_ID",
		Short: "Mint an API bearer token for a client (uses JWT_SECRET)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.AuthEnabled() {
				return fmt.Errorf("JWT_SECRET is not set, the API does not require tokens")
			}
			token, err := crypto.GenerateToken(args[0], cfg.JWTSecret, cfg.JWTExpiry)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	return cmd
}

func run(cmd *cobra.Command, g *globalFlags, req model.GenerateRequest) error {
	svc, closeFn, err := newService(g)
	if err != nil {
		return err
	}
	defer closeFn()

	req.Count = g.count
	resp, err := svc.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printPasswords(cmd.OutOrStdout(), resp.Passwords)
}

func newService(g *globalFlags) (*service.GeneratorService, func() error, error) {
	var words crypto.WordSource
	closeFn := func() error { return nil }

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.WordSource != config.WordSourceEmbedded {
		if words, closeFn, err = service.NewWordSource(cfg); err != nil {
			return nil, nil, err
		}
	}

	var opts []service.ServiceOption
	if g.seed != "" {
		r, err := crypto.NewSeededReader([]byte(g.seed))
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, service.WithRandom(r))
	}
	return service.NewGeneratorService(words, opts...), closeFn, nil
}

func printPasswords(w io.Writer, passwords []string) error {
	for _, pw := range passwords {
		if _, err := fmt.Fprintln(w, pw); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}
