package messages

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, s.tag)
	}
	return language.NewMatcher(tags)
}()

// Catalog maps message keys to parsed templates for one language.
type Catalog struct {
	lang      language.Tag
	caser     cases.Caser
	templates map[Key]*template.Template
}

// New parses entries into a catalog. Every key in Keys must be present and
// no others are allowed.
func New(lang language.Tag, entries map[Key]string) (*Catalog, error) {
	el := errors.NewErrorList()

	known := make(map[Key]bool, len(Keys))
	for _, k := range Keys {
		known[k] = true
		if _, ok := entries[k]; !ok {
			el.Add(fmt.Errorf("message %q is missing", k))
		}
	}

	templates := make(map[Key]*template.Template, len(entries))
	for k, text := range entries {
		if !known[k] {
			el.Add(fmt.Errorf("message %q is unknown", k))
			continue
		}

		tmpl, err := template.New(string(k)).Funcs(templateFuncs).Option("missingkey=error").Parse(text)
		if err != nil {
			el.Add(fmt.Errorf("parsing message %q: %w", k, err))
			continue
		}
		templates[k] = tmpl
	}

	if err := el.Err(); err != nil {
		return nil, err
	}

	return &Catalog{
		lang:      lang,
		caser:     cases.Lower(lang),
		templates: templates,
	}, nil
}

// Load builds the catalog for locale from the built-in messages, with the
// entries of the JSON file at overridesPath layered on top when it is set.
func Load(locale string, overridesPath string) (*Catalog, error) {
	lang, entries, err := Builtin(locale)
	if err != nil {
		return nil, err
	}

	if overridesPath != "" {
		overrides, err := readOverrides(overridesPath)
		if err != nil {
			return nil, err
		}
		maps.Copy(entries, overrides)
	}

	return New(lang, entries)
}

// Builtin returns a copy of the built-in messages closest to locale, and the
// language they are written in.
func Builtin(locale string) (language.Tag, map[Key]string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}

	_, idx, _ := matcher.Match(tag)
	s := supported[idx]
	return s.tag, maps.Clone(s.messages), nil
}

func readOverrides(path string) (map[Key]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading messages %q: %w", path, err)
	}

	var overrides map[Key]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("unmarshalling messages %q: %w", path, err)
	}

	return overrides, nil
}

// Language returns the language the catalog is written in.
func (c *Catalog) Language() language.Tag {
	return c.lang
}

// Lower lowercases player input using the catalog language's rules.
func (c *Catalog) Lower(s string) string {
	return c.caser.String(s)
}

// Render expands the message for key with data.
func (c *Catalog) Render(key Key, data any) (string, error) {
	tmpl, ok := c.templates[key]
	if !ok {
		return "", fmt.Errorf("message %q is not defined", key)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing message %q: %w", key, err)
	}

	return buf.String(), nil
}
