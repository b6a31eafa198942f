package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yokitheyo/vowelswap/config"
	"github.com/yokitheyo/vowelswap/game"
	"github.com/yokitheyo/vowelswap/server"
	"github.com/yokitheyo/vowelswap/wordlist"
)

type options struct {
	verbose   bool
	normalize bool
	count     bool
}

func newRootCmd(cfg config.Config) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "vowelswap [file]",
		Short: "find words whose vowel can be swapped for every other vowel",
		Long: `vowelswap reads a word list (one word per line, "-" for stdin) and prints
every set of five words that differ only in one vowel position, e.g.

    last, lest, list, lost, lust`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(io.Discard)
			if opts.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.WordsFile
			if len(args) > 0 {
				path = args[0]
			}
			return run(cmd.OutOrStdout(), path, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.normalize, "normalize", false, "convert words to Unicode NFC before matching")
	rootCmd.Flags().BoolVarP(&opts.count, "count", "c", false, "print only the number of solutions")

	rootCmd.AddCommand(newSkeletonsCmd(), newServeCmd(cfg, &opts))
	return rootCmd
}

func run(w io.Writer, path string, opts options) error {
	log.Printf("Starting vowelswap with options: %+v", opts)

	words, err := wordlist.ReadFile(path, wordlist.Options{Normalize: opts.normalize})
	if err != nil {
		return err
	}
	log.Printf("Loaded %d words from %s", len(words), path)

	found := 0
	for s := range game.Solutions(slices.Values(words)) {
		found++
		if opts.count {
			continue
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return fmt.Errorf("write solution: %w", err)
		}
	}

	if opts.count {
		if _, err := fmt.Fprintln(w, found); err != nil {
			return fmt.Errorf("write count: %w", err)
		}
	}

	log.Printf("Found %d solutions", found)
	return nil
}

func newSkeletonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skeletons word...",
		Short: "print the skeletons of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, word := range args {
				skeletons := slices.Collect(game.Skeletons(word))
				line := word + ":"
				if len(skeletons) > 0 {
					line += " " + strings.Join(skeletons, " ")
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newServeCmd(cfg config.Config, opts *options) *cobra.Command {
	var (
		port  string
		words string
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve solutions over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			preloaded, err := wordlist.ReadFile(words, wordlist.Options{Normalize: opts.normalize})
			switch {
			case err == nil:
				log.Printf("Loaded %d words from %s", len(preloaded), words)
			case errors.Is(err, os.ErrNotExist):
				fmt.Fprintf(cmd.ErrOrStderr(), "vowelswap: %s not found, serving without preloaded words\n", words)
			default:
				return err
			}

			return server.ListenAndServe(port, preloaded)
		},
	}

	serveCmd.Flags().StringVarP(&port, "port", "p", cfg.Port, "HTTP server port")
	serveCmd.Flags().StringVarP(&words, "words", "w", cfg.WordsFile, "word list answered by GET /solutions")
	return serveCmd
}
