package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/config"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/dialog"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/manifest"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/output"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/packager"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/validator"
)

var (
	checkCatalog  string
	checkManifest bool
)

var checkCmd = &cobra.Command{
	Use:   "check <answers.yaml>",
	Short: "Validate an answers file without generating anything",
	Long: `Validate an answers file with the same rules the interactive form applies
and list the files a create run would write. Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkCatalog, "catalog", "", "YAML component catalog replacing the built-in one")
	checkCmd.Flags().BoolVar(&checkManifest, "manifest", false, "Also print the composer.json that would be written and check it against the schema")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(checkCatalog)
	if err != nil {
		return err
	}

	in, err := dialog.LoadFile(args[0])
	if err != nil {
		return err
	}
	dialog.ApplyDefaults(in, packager.ComposerDialogValues(config.DialogDefaults(), time.Now()), cat)

	out := cmd.OutOrStdout()
	if err := dialog.Validate(newValidator(), in, cat); err != nil {
		printValidationErrors(cmd, err)
		return fmt.Errorf("%s is not valid", args[0])
	}

	fmt.Fprintf(out, "%s %s is valid\n", output.Check(true), output.NameStyle.Render(in.PackageName()))

	// The packager is only used to resolve files; nothing touches its root.
	p := packager.New(cat, nil, "")
	fmt.Fprintln(out, output.HeadingStyle.Render("Files:"))
	for _, f := range p.ResolveFiles(in.Components) {
		fmt.Fprintf(out, "  %s\n", f)
	}
	fmt.Fprintf(out, "  %s\n", manifest.FileName)

	if checkManifest {
		data, err := manifest.Marshal(packager.BuildManifest(in))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, output.HeadingStyle.Render(manifest.FileName+":"))
		fmt.Fprintln(out, string(data))

		result, err := manifest.Validate(data)
		if err != nil {
			return fmt.Errorf("validating %s: %w", manifest.FileName, err)
		}
		if result.Valid {
			fmt.Fprintf(out, "%s schema ok\n", output.Check(true))
		}
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "  %s %s\n", output.WarnStyle.Render("warning:"), issue)
		}
	}
	return nil
}

// printValidationErrors prints one line per failed rule.
func printValidationErrors(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		fmt.Fprintf(w, "  %s\n", err)
		return
	}
	for _, e := range joined.Unwrap() {
		var ve *validator.ValidationError
		if errors.As(e, &ve) {
			fmt.Fprintf(w, "  %s %s\n", output.WarnStyle.Render(string(ve.Field)+":"), ve.Message)
			continue
		}
		fmt.Fprintf(w, "  %s\n", e)
	}
}
