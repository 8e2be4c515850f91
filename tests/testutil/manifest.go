package testutil

import (
	"path"
	"testing"
)

// SampleManifest exercises every extraction rule
const SampleManifest = `{
  "manifest_version": 2,
  "name": "Sample",
  "background": {
    "scripts": ["/background/main.js", "background/pubsub.js"]
  },
  "experiment_apis": {
    "customUI": {
      "schema": "experiment/customUI.json",
      "parent": {
        "scopes": ["addon_parent"],
        "script": "experiment/customUI.js"
      }
    },
    "schemaOnly": {
      "schema": "experiment/schemaOnly.json"
    }
  },
  "browser_action": {
    "default_popup": "/pages/popup.html",
    "default_icon": {
      "16": "/icons/icon16.png",
      "32": "/icons/icon32.png"
    }
  },
  "message_display_action": {
    "default_popup": "pages/display.html",
    "default_icon": {
      "16": "icons/icon16.png",
      "32": "/icons/icon32.png"
    }
  },
  "options_ui": {
    "page": "pages/options.html"
  }
}`

// WriteManifest writes content as manifest.json under dir
func WriteManifest(t *testing.T, dir, content string) string {
	t.Helper()
	return WriteFile(t, dir, "manifest.json", content)
}

// WriteLocales creates an empty messages.json for each language under dir
// and returns the paths relative to dir.
func WriteLocales(t *testing.T, dir string, langs ...string) []string {
	t.Helper()

	rel := make([]string, 0, len(langs))
	for _, lang := range langs {
		p := path.Join("_locales", lang, "messages.json")
		WriteFile(t, dir, p, "{}")
		rel = append(rel, p)
	}
	return rel
}
