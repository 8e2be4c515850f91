package manifest

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/quantmind-br/manifest-info/internal/utils"
)

// ManifestFile is always the first source emitted
const ManifestFile = "manifest.json"

// actionKeys are the top-level action entries that can carry a popup and icons
var actionKeys = []string{"browser_action", "message_display_action"}

// ExtractorOptions configures an Extractor
type ExtractorOptions struct {
	Locales LocaleLister
	Logger  *utils.Logger
}

// Extractor collects the source files a manifest references
type Extractor struct {
	locales LocaleLister
	logger  *utils.Logger
}

// NewExtractor creates an Extractor. Without a LocaleLister, locale files are
// globbed in the current working directory.
func NewExtractor(opts ExtractorOptions) *Extractor {
	locales := opts.Locales
	if locales == nil {
		locales = NewOSLocaleLister(".", DefaultLocalePattern)
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Extractor{
		locales: locales,
		logger:  logger.WithComponent("extractor"),
	}
}

type rule struct {
	name string
	fn   func(doc Value) ([]string, error)
}

func (e *Extractor) rules() []rule {
	return []rule{
		{"background", e.backgroundSources},
		{"experiment", e.experimentSources},
		{"html", e.htmlSources},
		{"icon", e.iconSources},
		{"messages", e.messageSources},
	}
}

// Extract returns the raw (unnormalized) source paths referenced by doc:
// ManifestFile first, then each rule's output in order. Only icons are
// deduplicated.
func (e *Extractor) Extract(doc Value) ([]string, error) {
	sources := []string{ManifestFile}
	for _, r := range e.rules() {
		paths, err := r.fn(doc)
		if err != nil {
			return nil, fmt.Errorf("%s sources: %w", r.name, err)
		}
		e.logger.Debug().
			Str("rule", r.name).
			Int("count", len(paths)).
			Msg("Collected sources")
		sources = append(sources, paths...)
	}
	return sources, nil
}

func (e *Extractor) backgroundSources(doc Value) ([]string, error) {
	scripts := doc.Get("background").Get("scripts")
	return e.stringValues("background.scripts", scripts.Items()), nil
}

func (e *Extractor) experimentSources(doc Value) ([]string, error) {
	apis := doc.Get("experiment_apis")
	if apis.IsPresent() && apis.Kind() != KindMap {
		return nil, NewKeyError(ErrUnexpectedType, "experiment_apis")
	}

	var paths []string
	for _, name := range apis.Keys() {
		ns := apis.Get(name)

		schema, err := requireString(ns, "experiment_apis", name, "schema")
		if err != nil {
			return nil, err
		}
		paths = append(paths, schema)

		parent := ns.Get("parent")
		if !parent.IsPresent() {
			continue
		}
		script, err := requireString(parent, "experiment_apis", name, "parent", "script")
		if err != nil {
			return nil, err
		}
		paths = append(paths, script)
	}
	return paths, nil
}

func (e *Extractor) htmlSources(doc Value) ([]string, error) {
	var paths []string
	for _, key := range actionKeys {
		popup := doc.Get(key).Get("default_popup")
		if !popup.IsPresent() {
			continue
		}
		paths = append(paths, e.stringValues(key+".default_popup", []Value{popup})...)
	}

	optionsUI := doc.Get("options_ui")
	if optionsUI.IsPresent() {
		// options_ui always contributes an entry, even without a page
		pageValue := optionsUI.Get("page")
		page, ok := pageValue.Str()
		switch {
		case ok:
		case !pageValue.IsPresent():
			e.logger.Warn().Msg("options_ui has no page, emitting empty entry")
		default:
			e.logger.Warn().
				Str("kind", pageValue.Kind().String()).
				Msg("options_ui.page is not a string, emitting empty entry")
		}
		paths = append(paths, page)
	}
	return paths, nil
}

// iconSources does not resolve theme_icons.
func (e *Extractor) iconSources(doc Value) ([]string, error) {
	unique := linkedhashset.New()
	for _, name := range doc.Get("values").Keys() {
		unique.Add(name)
	}

	for _, key := range actionKeys {
		icons := doc.Get(key).Get("default_icon")
		switch icons.Kind() {
		case KindMap:
			for _, p := range e.stringValues(key+".default_icon", icons.Values()) {
				unique.Add(p)
			}
		case KindString:
			p, _ := icons.Str()
			unique.Add(p)
		}
	}

	paths := make([]string, 0, unique.Size())
	for _, v := range unique.Values() {
		paths = append(paths, v.(string))
	}
	return paths, nil
}

func (e *Extractor) messageSources(Value) ([]string, error) {
	return e.locales.List()
}

// stringValues returns the string elements of values, skipping anything else
func (e *Extractor) stringValues(field string, values []Value) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.Str()
		if !ok {
			e.logger.Debug().
				Str("field", field).
				Str("kind", v.Kind().String()).
				Msg("Skipping non-string value")
			continue
		}
		out = append(out, s)
	}
	return out
}

// requireString returns the string under the last element of path in
// container, failing with a KeyError if it is missing or not a string.
func requireString(container Value, path ...string) (string, error) {
	v := container.Get(path[len(path)-1])
	if !v.IsPresent() {
		return "", NewKeyError(ErrKeyNotFound, path...)
	}
	s, ok := v.Str()
	if !ok {
		return "", NewKeyError(ErrUnexpectedType, path...)
	}
	return s, nil
}
