package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/manifest-info/internal/app"
	"github.com/quantmind-br/manifest-info/internal/config"
	"github.com/quantmind-br/manifest-info/internal/utils"
	"github.com/quantmind-br/manifest-info/tests/testutil"
)

const mailExtensionManifest = `{
  "manifest_version": 2,
  "name": "__MSG_extensionName__",
  "default_locale": "en",
  "applications": {"gecko": {"id": "orco@example.org", "strict_min_version": "91.0"}},
  "background": {
    "scripts": [
      "/mwel/common/mwel_common.js",
      "/mwel/common/mwel_console.js",
      "/mtwel/background/mtwel_util.js",
      "/lrlib/background/lr_settings.js",
      "/orco_common/orco_common.js",
      "/orco_bg/orco_pubsub.js",
      "/orco_bg/main_orco.js"
    ]
  },
  "experiment_apis": {
    "cucolapi": {
      "schema": "cucolapi/experiment/schema.json",
      "parent": {
        "scopes": ["addon_parent"],
        "paths": [["cucolapi"]],
        "script": "cucolapi/experiment/cucolapi.js"
      }
    }
  },
  "browser_action": {
    "default_title": "__MSG_actionTitle__",
    "default_popup": "/orco_pages/orcop_popup.html",
    "default_icon": {"16": "/icons/orco-16.png", "32": "/icons/orco-32.png"}
  },
  "message_display_action": {
    "default_popup": "/orco_pages/orcop_popup.html",
    "default_icon": {"16": "/icons/orco-16.png", "64": "/icons/orco-64.png"}
  },
  "options_ui": {"page": "/orco_pages/orcop_options.html", "open_in_tab": true},
  "permissions": ["messagesRead", "storage"]
}`

func newIntegrationRunner(t *testing.T, root string) (*app.Runner, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.Locales.Root = root

	var out bytes.Buffer
	runner, err := app.NewRunner(app.RunnerOptions{
		Config: cfg,
		Logger: utils.NewNopLogger(),
		Stdout: &out,
	})
	require.NoError(t, err)
	return runner, &out
}

func TestManifest_Integration_MailExtension(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	root := testutil.TempDir(t)
	path := testutil.WriteManifest(t, root, mailExtensionManifest)
	testutil.WriteLocales(t, root, "en", "de", "fr")

	runner, out := newIntegrationRunner(t, root)

	err := runner.Run(context.Background(), path, app.CommandSources)
	require.NoError(t, err)

	line := out.String()
	require.True(t, strings.HasSuffix(line, "\n"))
	assert.Equal(t, 1, strings.Count(line, "\n"))

	fields := strings.Split(strings.TrimSuffix(line, "\n"), " ")

	// manifest, background scripts, experiment schema and script, two popups, options page
	assert.Equal(t, []string{
		"manifest.json",
		"mwel/common/mwel_common.js",
		"mwel/common/mwel_console.js",
		"mtwel/background/mtwel_util.js",
		"lrlib/background/lr_settings.js",
		"orco_common/orco_common.js",
		"orco_bg/orco_pubsub.js",
		"orco_bg/main_orco.js",
		"cucolapi/experiment/schema.json",
		"cucolapi/experiment/cucolapi.js",
		"orco_pages/orcop_popup.html",
		"orco_pages/orcop_popup.html",
		"orco_pages/orcop_options.html",
	}, fields[:13])

	assert.ElementsMatch(t, []string{
		"icons/orco-16.png",
		"icons/orco-32.png",
		"icons/orco-64.png",
	}, fields[13:16])

	assert.ElementsMatch(t, []string{
		"_locales/en/messages.json",
		"_locales/de/messages.json",
		"_locales/fr/messages.json",
	}, fields[16:])
}

func TestManifest_Integration_MissingSchemaFailsWithoutOutput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	root := testutil.TempDir(t)
	broken := strings.Replace(mailExtensionManifest,
		`"schema": "cucolapi/experiment/schema.json",`, "", 1)
	path := testutil.WriteManifest(t, root, broken)

	runner, out := newIntegrationRunner(t, root)

	err := runner.Run(context.Background(), path, app.CommandSources)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "experiment_apis.cucolapi.schema")
	assert.Empty(t, out.String())
}

func TestManifest_Integration_ContextCancellation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	root := testutil.TempDir(t)
	path := testutil.WriteManifest(t, root, mailExtensionManifest)

	runner, out := newIntegrationRunner(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.Run(ctx, path, app.CommandSources)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
