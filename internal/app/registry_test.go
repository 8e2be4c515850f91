package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/manifest-info/internal/manifest"
	"github.com/quantmind-br/manifest-info/internal/utils"
)

func noopHandler(context.Context, *Env, manifest.Value) error { return nil }

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{CommandSources}, r.Names())

	cmd, err := r.Lookup("src")
	require.NoError(t, err)
	assert.Equal(t, "src", cmd.Name)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Handler)
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantErr error
	}{
		{"valid", Command{Name: "json", Handler: noopHandler}, nil},
		{"duplicate", Command{Name: "src", Handler: noopHandler}, ErrDuplicateCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRegistry()
			err := r.Register(tt.cmd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegistry_RegisterIncomplete(t *testing.T) {
	r := NewRegistry()

	assert.Error(t, r.Register(Command{Name: "x"}))
	assert.Error(t, r.Register(Command{Handler: noopHandler}))
	assert.Empty(t, r.Names())
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := DefaultRegistry()
	require.NoError(t, r.Register(Command{Name: "icons", Handler: noopHandler}))

	_, err := r.Lookup("pack")

	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"pack"`)
	assert.Contains(t, err.Error(), "icons, src")
}

func TestRegistry_CommandsSorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Command{Name: "zip", Handler: noopHandler}))
	require.NoError(t, r.Register(Command{Name: "abc", Handler: noopHandler}))

	cmds := r.Commands()

	require.Len(t, cmds, 2)
	assert.Equal(t, "abc", cmds[0].Name)
	assert.Equal(t, "zip", cmds[1].Name)
}

func TestRunSources(t *testing.T) {
	var out bytes.Buffer
	env := &Env{
		Extractor: manifest.NewExtractor(manifest.ExtractorOptions{
			Locales: manifest.StaticLocaleLister{"_locales/en/messages.json"},
		}),
		Stdout: &out,
		Logger: utils.NewNopLogger(),
	}
	doc, err := manifest.NewLoader().LoadFromBytes(
		[]byte(`{"background": {"scripts": ["/a.js", "b.js"]}}`), ".json")
	require.NoError(t, err)

	err = RunSources(context.Background(), env, doc)

	require.NoError(t, err)
	assert.Equal(t, "manifest.json a.js b.js _locales/en/messages.json\n", out.String())
}

func TestRunSources_ErrorWritesNothing(t *testing.T) {
	var out bytes.Buffer
	env := &Env{
		Extractor: manifest.NewExtractor(manifest.ExtractorOptions{Locales: manifest.StaticLocaleLister(nil)}),
		Stdout:    &out,
	}
	doc, err := manifest.NewLoader().LoadFromBytes([]byte(`{"experiment_apis": {"x": {}}}`), ".json")
	require.NoError(t, err)

	err = RunSources(context.Background(), env, doc)

	assert.ErrorIs(t, err, manifest.ErrKeyNotFound)
	assert.Empty(t, out.String())
}
