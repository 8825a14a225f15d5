package manifest

// Fixed values of every generated manifest.
const (
	FileName = "composer.json"

	Type    = "phpbb-extension"
	License = "GPL-2.0"

	// HostPackage is the soft requirement key for the phpBB version range.
	HostPackage = "phpbb/phpbb"

	// BuildToolPackage and BuildToolVersion form the require-dev entry
	// added when the build component is selected.
	BuildToolPackage = "phing/phing"
	BuildToolVersion = "2.4.*"
)

// Composer is the composer.json document. Field order is the serialized
// key order.
type Composer struct {
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Homepage    string            `json:"homepage"`
	Version     string            `json:"version"`
	Time        string            `json:"time"`
	License     string            `json:"license"`
	Authors     []Author          `json:"authors"`
	Require     map[string]string `json:"require"`
	Extra       Extra             `json:"extra"`
	RequireDev  map[string]string `json:"require-dev,omitempty"`
}

// Author is one entry of the authors list.
type Author struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Homepage string `json:"homepage"`
	Role     string `json:"role"`
}

// Extra holds the phpBB-specific "extra" block.
type Extra struct {
	DisplayName string            `json:"display-name"`
	SoftRequire map[string]string `json:"soft-require"`
}

// SoftRequirePHPBB returns the phpBB version range from extra.soft-require.
func (c *Composer) SoftRequirePHPBB() string {
	return c.Extra.SoftRequire[HostPackage]
}
