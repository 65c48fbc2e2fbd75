package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestWriteCatalog(t *testing.T) {
	t.Parallel()

	outRoot := t.TempDir()
	models := []Model{
		{
			Label: strptr("X100"),
			Fields: Fields{
				{Key: "modello", Value: "X100"},
				{Key: "potenza_kw", Value: "5.5"},
			},
		},
	}

	path, err := WriteCatalog(outRoot, "pompe", "demo", models)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outRoot, "pompe", "demo"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		`{"success":true,"data":[{"label":"X100","fields":{"modello":"X100","potenza_kw":"5.5"}}]}`,
		string(data))
}

func TestWriteCatalogEmpty(t *testing.T) {
	t.Parallel()

	path, err := WriteCatalog(t.TempDir(), "pompe", "demo", nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"success":true,"data":[]}`, string(data))
}

func TestWriteCatalogNullLabel(t *testing.T) {
	t.Parallel()

	models := []Model{{Fields: Fields{{Key: "codice", Value: "C1"}}}}
	path, err := WriteCatalog(t.TempDir(), "pompe", "demo", models)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"success":true,"data":[{"label":null,"fields":{"codice":"C1"}}]}`, string(data))
}

func TestWriteCatalogASCIIEscaped(t *testing.T) {
	t.Parallel()

	models := []Model{
		{
			Label:  strptr("Città"),
			Fields: Fields{{Key: "citta", Value: "Città"}},
		},
	}
	path, err := WriteCatalog(t.TempDir(), "pompe", "demo", models)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		`{"success":true,"data":[{"label":"Citt\u00e0","fields":{"citta":"Citt\u00e0"}}]}`,
		string(data))
}

func TestWriteCatalogSurrogatePair(t *testing.T) {
	t.Parallel()

	models := []Model{{Fields: Fields{{Key: "nota", Value: "ok \U0001F600"}}}}
	path, err := WriteCatalog(t.TempDir(), "pompe", "demo", models)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		`{"success":true,"data":[{"label":null,"fields":{"nota":"ok \ud83d\ude00"}}]}`,
		string(data))
}

func TestWriteCatalogNoHTMLEscaping(t *testing.T) {
	t.Parallel()

	models := []Model{{Fields: Fields{{Key: "formula", Value: "a<b & c>d"}}}}
	path, err := WriteCatalog(t.TempDir(), "pompe", "demo", models)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"formula":"a<b & c>d"`)
}

func TestWriteCatalogOverwrites(t *testing.T) {
	t.Parallel()

	outRoot := t.TempDir()
	first := []Model{{Fields: Fields{{Key: "v", Value: "1"}}}}
	second := []Model{{Fields: Fields{{Key: "v", Value: "2"}}}}

	_, err := WriteCatalog(outRoot, "pompe", "demo", first)
	require.NoError(t, err)
	path, err := WriteCatalog(outRoot, "pompe", "demo", second)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"success":true,"data":[{"label":null,"fields":{"v":"2"}}]}`, string(data))
}

func TestFieldsGet(t *testing.T) {
	t.Parallel()

	f := Fields{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}
	v, ok := f.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
	_, ok = f.Get("z")
	assert.False(t, ok)
}

func TestDeriveLabel(t *testing.T) {
	t.Parallel()

	label := deriveLabel(Fields{
		{Key: "denominazione", Value: "d"},
		{Key: "modello", Value: "m"},
	})
	require.NotNil(t, label)
	assert.Equal(t, "m", *label)

	assert.Nil(t, deriveLabel(Fields{{Key: "prezzo", Value: "9"}}))
}
