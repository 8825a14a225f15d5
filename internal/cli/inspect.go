package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/output"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/packager"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive.zip>",
	Short: "Show the contents of a generated archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	info, err := packager.InspectZip(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if inspectJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling archive info: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	m := info.Manifest
	fmt.Fprintf(out, "%s %s\n", output.HeadingStyle.Render("Package"), output.NameStyle.Render(m.Name))
	fmt.Fprintf(out, "  %s %s\n", output.MutedStyle.Render("display name:"), m.Extra.DisplayName)
	fmt.Fprintf(out, "  %s %s\n", output.MutedStyle.Render("version:     "), m.Version)
	fmt.Fprintf(out, "  %s %s\n", output.MutedStyle.Render("php:         "), m.Require["php"])
	fmt.Fprintf(out, "  %s %s\n", output.MutedStyle.Render("phpbb:       "), m.SoftRequirePHPBB())
	for _, a := range m.Authors {
		fmt.Fprintf(out, "  %s %s\n", output.MutedStyle.Render("author:      "), a.Name)
	}

	fmt.Fprintf(out, "%s (%d)\n", output.HeadingStyle.Render("Entries"), len(info.Entries))
	for _, e := range info.Entries {
		fmt.Fprintf(out, "  %s\n", e)
	}
	return nil
}
