package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/catalog"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/output"
)

var (
	componentsFiles   bool
	componentsJSON    bool
	componentsCatalog string
)

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List the available components",
	Long: `List the components an extension can be generated with, whether each is
selected by default, and the components it is usually combined with.`,
	Args: cobra.NoArgs,
	RunE: runComponents,
}

func init() {
	componentsCmd.Flags().BoolVar(&componentsFiles, "files", false, "Show the files each component contributes")
	componentsCmd.Flags().BoolVar(&componentsJSON, "json", false, "Output in JSON format")
	componentsCmd.Flags().StringVar(&componentsCatalog, "catalog", "", "YAML component catalog replacing the built-in one")
	rootCmd.AddCommand(componentsCmd)
}

func runComponents(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(componentsCatalog)
	if err != nil {
		return err
	}

	if componentsJSON {
		return printComponentsJSON(cmd, cat.List())
	}
	return printComponentsTable(cmd, cat.List())
}

func printComponentsTable(cmd *cobra.Command, components []catalog.Component) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDEFAULT\tDEPENDENCIES")
	for _, c := range components {
		deps := strings.Join(c.Dependencies, ", ")
		if deps == "" {
			deps = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", output.NameStyle.Render(c.Name), output.Check(c.Default), deps)
		if componentsFiles {
			for _, f := range c.Files {
				fmt.Fprintf(w, "  %s\t\t\n", output.MutedStyle.Render(f))
			}
		}
	}
	return w.Flush()
}

func printComponentsJSON(cmd *cobra.Command, components []catalog.Component) error {
	data, err := json.MarshalIndent(components, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
