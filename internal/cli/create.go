package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/catalog"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/config"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/dialog"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/output"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/packager"
)

var (
	createInput        string
	createStagingDir   string
	createTemplatesDir string
	createCatalogFile  string
	createJSON         bool
)

func init() {
	createCmd.Flags().StringVarP(&createInput, "input", "i", "", "Read answers from a YAML file instead of asking")
	createCmd.Flags().StringVar(&createStagingDir, "staging-dir", "", "Staging root, wiped before generation (default: a new temporary directory)")
	createCmd.Flags().StringVar(&createTemplatesDir, "templates-dir", "", "Directory of .tmpl files replacing the built-in templates")
	createCmd.Flags().StringVar(&createCatalogFile, "catalog", "", "YAML component catalog replacing the built-in one")
	createCmd.Flags().BoolVar(&createJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a phpBB extension skeleton",
	Long: `Generate a phpBB extension skeleton and pack it into a zip archive.

Without --input the command asks for the authors, the package identity, the
version requirements and the components to include. Invalid answers are
asked again.

Examples:
  skeleton create
  skeleton create --input answers.yaml --staging-dir ./build`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

// createResult is the --json output of create.
type createResult struct {
	Package  string   `json:"package"`
	Path     string   `json:"path"`
	Archive  string   `json:"archive"`
	Files    []string `json:"files"`
	Warnings []string `json:"warnings,omitempty"`
}

func runCreate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(createCatalogFile)
	if err != nil {
		return err
	}
	engine, err := loadEngine(createTemplatesDir)
	if err != nil {
		return err
	}

	in, err := collectInput(cmd, cat)
	if err != nil {
		return err
	}

	root, err := packager.NewStagingRoot(firstSet(createStagingDir, config.StagingDir()))
	if err != nil {
		return err
	}
	output.Debug("staging root", "path", root)

	p := packager.New(cat, engine, root)
	res, zipPath, err := p.Generate(in)
	if err != nil {
		return fmt.Errorf("generating %s: %w", in.PackageName(), err)
	}

	out := cmd.OutOrStdout()
	if createJSON {
		data, err := json.MarshalIndent(createResult{
			Package:  in.PackageName(),
			Path:     res.Path,
			Archive:  zipPath,
			Files:    res.Written(),
			Warnings: res.Warnings,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	printCreateResult(out, in, res, zipPath)
	return nil
}

// collectInput reads the answers file when one is given and runs the
// interactive form otherwise.
func collectInput(cmd *cobra.Command, cat *catalog.Catalog) (*packager.ExtensionInput, error) {
	v := newValidator()
	defaults := packager.ComposerDialogValues(config.DialogDefaults(), time.Now())

	if createInput == "" {
		form := dialog.NewForm(cmd.InOrStdin(), cmd.OutOrStdout(), v, cat, defaults)
		in, err := form.Run()
		if err != nil {
			return nil, fmt.Errorf("interactive mode: %w", err)
		}
		return in, nil
	}

	in, err := dialog.LoadFile(createInput)
	if err != nil {
		return nil, err
	}
	dialog.ApplyDefaults(in, defaults, cat)
	if err := dialog.Validate(v, in, cat); err != nil {
		return nil, fmt.Errorf("invalid answers in %s:\n%w", createInput, err)
	}
	return in, nil
}

func printCreateResult(w io.Writer, in *packager.ExtensionInput, res *packager.Result, zipPath string) {
	fmt.Fprintf(w, "\n%s %s\n", output.HeadingStyle.Render("Created"), output.NameStyle.Render(in.PackageName()))
	fmt.Fprintf(w, "  %s %s\n", output.MutedStyle.Render("tree:   "), res.Path)
	fmt.Fprintf(w, "  %s %d\n", output.MutedStyle.Render("files:  "), len(res.Written()))
	fmt.Fprintf(w, "  %s %s\n", output.MutedStyle.Render("archive:"), zipPath)
	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "  %s %s\n", output.WarnStyle.Render("warning:"), warning)
	}
}
