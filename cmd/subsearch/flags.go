package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/resistanceisuseless/subsearch/internal/config"
)

type Flags struct {
	Domain string
	Output string
	Config string

	// set when -o/--output was given explicitly
	OutputSet bool
}

type runFunc func(ctx context.Context, f *Flags) error

func newRootCmd(run runFunc) *cobra.Command {
	f := &Flags{}

	cmd := &cobra.Command{
		Use:   "subsearch <domain>",
		Short: "Subdomain finder using DNS brute force and public recon APIs",
		Long: `subsearch - subdomain discovery for a single domain.

Resolves every label in ./subdomains.txt against the target, then queries
crt.sh, HackerTarget, AlienVault OTX and urlscan.io, and writes the merged,
sorted list to the output file.`,
		Example: `  subsearch example.com
  subsearch example.com -o example_subs.txt
  subsearch example.com --config subsearch.yaml`,
		Args:          cobra.ExactArgs(1),
		Version:       GetVersionInfo(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.Domain = args[0]
			f.OutputSet = cmd.Flags().Changed("output")
			return run(cmd.Context(), f)
		},
	}

	cmd.Flags().StringVarP(&f.Output, "output", "o", config.DefaultOutputFile, "Output file to save results")
	cmd.Flags().StringVarP(&f.Config, "config", "c", "", "Configuration file path (YAML)")

	return cmd
}
