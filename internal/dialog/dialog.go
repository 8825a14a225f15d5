package dialog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/catalog"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/packager"
	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/validator"
)

// ErrInputClosed is returned when the reader ends before the form is done.
var ErrInputClosed = errors.New("input ended before the form was complete")

// Form is the multi-step input dialog.
type Form struct {
	reader   *bufio.Reader
	w        io.Writer
	v        *validator.Validator
	cat      *catalog.Catalog
	defaults *packager.ExtensionInput
}

// NewForm returns a form reading answers from r and writing prompts to w.
// defaults supplies the pre-filled values, see packager.ComposerDialogValues.
func NewForm(r io.Reader, w io.Writer, v *validator.Validator, cat *catalog.Catalog, defaults *packager.ExtensionInput) *Form {
	return &Form{
		reader:   bufio.NewReader(r),
		w:        w,
		v:        v,
		cat:      cat,
		defaults: defaults,
	}
}

// Run asks every question in order: authors, extension, requirements and
// components.
func (f *Form) Run() (*packager.ExtensionInput, error) {
	in := &packager.ExtensionInput{}

	fmt.Fprintf(f.w, "\nAuthors\n")
	numRaw, err := f.ask("Number of authors", "1", func(s string) (string, error) {
		n, err := f.v.ValidateNumAuthors(s)
		return strconv.Itoa(n), err
	})
	if err != nil {
		return nil, err
	}
	num, _ := strconv.Atoi(numRaw)

	for i := 0; i < num; i++ {
		var def packager.Author
		if i < len(f.defaults.Authors) {
			def = f.defaults.Authors[i]
		}
		a, err := f.askAuthor(i+1, def)
		if err != nil {
			return nil, err
		}
		in.Authors = append(in.Authors, a)
	}

	fmt.Fprintf(f.w, "\nExtension\n")
	if in.Extension, err = f.askExtension(f.defaults.Extension); err != nil {
		return nil, err
	}

	fmt.Fprintf(f.w, "\nRequirements\n")
	if in.Requirements, err = f.askRequirements(f.defaults.Requirements); err != nil {
		return nil, err
	}

	fmt.Fprintf(f.w, "\nComponents\n")
	if in.Components, err = f.askComponents(); err != nil {
		return nil, err
	}

	return in, nil
}

func (f *Form) askAuthor(n int, def packager.Author) (packager.Author, error) {
	var (
		a   packager.Author
		err error
	)
	prefix := fmt.Sprintf("Author %d ", n)
	if a.Name, err = f.ask(prefix+"name", def.Name, nil); err != nil {
		return a, err
	}
	if a.Email, err = f.ask(prefix+"email", def.Email, nil); err != nil {
		return a, err
	}
	if a.Homepage, err = f.ask(prefix+"homepage", def.Homepage, nil); err != nil {
		return a, err
	}
	if a.Role, err = f.ask(prefix+"role", def.Role, nil); err != nil {
		return a, err
	}
	return a, nil
}

func (f *Form) askExtension(def packager.Extension) (packager.Extension, error) {
	var (
		e   packager.Extension
		err error
	)
	if e.VendorName, err = f.ask("Vendor name", def.VendorName, f.v.ValidateVendorName); err != nil {
		return e, err
	}
	if e.DisplayName, err = f.ask("Display name", def.DisplayName, f.v.ValidateDisplayName); err != nil {
		return e, err
	}
	if e.Name, err = f.ask("Extension name", def.Name, f.v.ValidateExtensionName); err != nil {
		return e, err
	}
	if e.Description, err = f.ask("Description", def.Description, nil); err != nil {
		return e, err
	}
	if e.Version, err = f.ask("Version", def.Version, f.v.ValidateExtensionVersion); err != nil {
		return e, err
	}
	if e.Homepage, err = f.ask("Homepage", def.Homepage, nil); err != nil {
		return e, err
	}
	if e.Time, err = f.ask("Date (YYYY-MM-DD)", def.Time, f.v.ValidateExtensionTime); err != nil {
		return e, err
	}
	return e, nil
}

func (f *Form) askRequirements(def packager.Requirements) (packager.Requirements, error) {
	var (
		r   packager.Requirements
		err error
	)
	if r.PHPVersion, err = f.ask("PHP requirement", def.PHPVersion, f.v.ValidateRequirement); err != nil {
		return r, err
	}
	if r.PHPBBVersionMin, err = f.ask("Minimum phpBB version", def.PHPBBVersionMin, f.v.ValidateRequirement); err != nil {
		return r, err
	}
	if r.PHPBBVersionMax, err = f.ask("Maximum phpBB version", def.PHPBBVersionMax, f.v.ValidateRequirement); err != nil {
		return r, err
	}
	return r, nil
}

// askComponents asks a yes/no question per catalog component. Dependencies
// are shown for information; answering yes never selects them.
func (f *Form) askComponents() (map[string]bool, error) {
	selected := make(map[string]bool)
	for _, comp := range f.cat.List() {
		label := comp.Name
		if len(comp.Dependencies) > 0 {
			label += " (uses " + strings.Join(comp.Dependencies, ", ") + ")"
		}
		def := comp.Default
		if v, ok := f.defaults.Components[comp.Name]; ok {
			def = v
		}
		yes, err := f.confirm(label, def)
		if err != nil {
			return nil, err
		}
		selected[comp.Name] = yes
	}
	return selected, nil
}

// ask prints a prompt and reads one line. An empty answer takes def. When
// check is set the answer is passed through it; a ValidationError prints
// the message and asks again, any other error aborts the form.
func (f *Form) ask(label, def string, check func(string) (string, error)) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(f.w, "%s [%s]: ", label, def)
		} else {
			fmt.Fprintf(f.w, "%s: ", label)
		}

		answer, err := f.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			answer = def
		}
		if check == nil {
			return answer, nil
		}

		value, err := check(answer)
		if err == nil {
			return value, nil
		}
		var ve *validator.ValidationError
		if !errors.As(err, &ve) {
			return "", err
		}
		fmt.Fprintf(f.w, "  %s\n", ve.Message)
	}
}

func (f *Form) confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(f.w, "%s [%s]: ", label, hint)
		answer, err := f.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(f.w, "  answer y or n\n")
	}
}

// readLine returns the next line without surrounding whitespace. A final
// line without a newline is still returned.
func (f *Form) readLine() (string, error) {
	line, err := f.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
