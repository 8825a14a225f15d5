package manifest

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func sampleComposer() *Composer {
	return &Composer{
		Name:        "acme/widget",
		Type:        Type,
		Description: "Adds a widget",
		Homepage:    "https://acme.example",
		Version:     "1.0.0-dev",
		Time:        "2024-05-01",
		License:     License,
		Authors: []Author{
			{Name: "Ann", Email: "a@b.com", Role: "Developer"},
		},
		Require: map[string]string{"php": ">=5.3.3"},
		Extra: Extra{
			DisplayName: "Acme Widget",
			SoftRequire: map[string]string{HostPackage: ">=3.1.4,<3.2.0@dev"},
		},
	}
}

func TestMarshalMatchesPHPLayout(t *testing.T) {
	got, err := Marshal(sampleComposer())
	require.NoError(t, err)

	want := `{
    "name": "acme/widget",
    "type": "phpbb-extension",
    "description": "Adds a widget",
    "homepage": "https://acme.example",
    "version": "1.0.0-dev",
    "time": "2024-05-01",
    "license": "GPL-2.0",
    "authors": [
        {
            "name": "Ann",
            "email": "a@b.com",
            "homepage": "",
            "role": "Developer"
        }
    ],
    "require": {
        "php": ">=5.3.3"
    },
    "extra": {
        "display-name": "Acme Widget",
        "soft-require": {
            "phpbb/phpbb": ">=3.1.4,<3.2.0@dev"
        }
    }
}`
	assert.Equal(t, want, string(got))
}

func TestMarshalRequireDevComesLast(t *testing.T) {
	c := sampleComposer()
	c.RequireDev = map[string]string{BuildToolPackage: BuildToolVersion}

	got, err := Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(got), `    },
    "require-dev": {
        "phing/phing": "2.4.*"
    }
}`)
}

func TestMarshalEmptyAuthors(t *testing.T) {
	c := sampleComposer()
	c.Authors = nil

	got, err := Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"authors": [],`)
	assert.Nil(t, c.Authors, "Marshal must not modify its argument")
}

func TestMarshalEscaping(t *testing.T) {
	c := sampleComposer()
	c.Description = `Café & "quotes" <b>bold</b> 😀`
	c.Require["php"] = "&gt;=7.1"
	c.Extra.SoftRequire[HostPackage] = "&gt;=3.2.0,&lt;3.4.0@dev"

	got, err := Marshal(c)
	require.NoError(t, err)
	out := string(got)

	assert.Contains(t, out, `"description": "Caf\u00e9 & \"quotes\" <b>bold</b> \ud83d\ude00"`)
	assert.Contains(t, out, `"php": ">=7.1"`)
	assert.Contains(t, out, `"phpbb/phpbb": ">=3.2.0,<3.4.0@dev"`)
	assert.Contains(t, out, `"homepage": "https://acme.example"`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(got, &decoded))
	assert.Equal(t, `Café & "quotes" <b>bold</b> 😀`, decoded["description"])
}

func TestParseRoundTrip(t *testing.T) {
	c := sampleComposer()
	c.RequireDev = map[string]string{BuildToolPackage: BuildToolVersion}
	data, err := Marshal(c)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
	assert.Equal(t, ">=3.1.4,<3.2.0@dev", parsed.SoftRequirePHPBB())
}

func TestParseFile(t *testing.T) {
	c, err := ParseFile(testPath("valid.json"))
	require.NoError(t, err)
	assert.Equal(t, "acme/widget", c.Name)
	require.Len(t, c.Authors, 1)
	assert.Equal(t, "Ann", c.Authors[0].Name)

	_, err = ParseFile(testPath("invalid-not-json.json"))
	assert.Error(t, err)

	_, err = ParseFile(testPath("nonexistent.json"))
	assert.Error(t, err)
}
