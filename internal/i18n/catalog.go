package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"github.com/vk/plugkit/internal/ctxlog"
	"github.com/vk/plugkit/internal/fsutil"
	"golang.org/x/text/language"
)

// DefaultLocale is assumed for untranslated message keys.
const DefaultLocale = "en_US"

// Translator is the minimal contract for rendering user-facing messages.
type Translator interface {
	// T renders the message identified by key for the given locale. data is
	// an optional map used for {placeholder} expansion (may be nil).
	T(locale, key string, data map[string]any) string
}

// Catalog holds the per-locale message tables for a single text domain.
type Catalog struct {
	domain   string
	fallback language.Tag
	tags     []language.Tag
	messages map[language.Tag]map[string]string
	matcher  language.Matcher
}

// LoadTextDomain reads every catalog file for domain from dir. A missing
// directory yields an empty catalog: translation is an optional feature and
// its absence must not fail plugin boot. Individual malformed catalog files
// are skipped with a warning.
func LoadTextDomain(ctx context.Context, domain, dir string) (*Catalog, error) {
	logger := ctxlog.FromContext(ctx)

	c := &Catalog{
		domain:   domain,
		fallback: parseLocale(DefaultLocale),
		messages: make(map[language.Tag]map[string]string),
	}

	if _, err := os.Stat(dir); err != nil {
		logger.Debug("Languages directory absent, using untranslated keys.", "dir", dir)
		c.rebuildMatcher()
		return c, nil
	}

	files, err := fsutil.FindFilesByExtension(dir, ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to scan languages directory %s: %w", dir, err)
	}

	prefix := domain + "-"
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".json")
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		locale := strings.TrimPrefix(name, prefix)

		raw, err := os.ReadFile(file)
		if err != nil {
			logger.Warn("Skipping unreadable catalog file.", "file", file, "error", err)
			continue
		}

		var table map[string]string
		if err := json.Unmarshal(jsonc.ToJSON(raw), &table); err != nil {
			logger.Warn("Skipping malformed catalog file.", "file", file, "error", err)
			continue
		}

		tag := parseLocale(locale)
		c.messages[tag] = table
		logger.Debug("Loaded translation catalog.", "domain", domain, "locale", locale, "messages", len(table))
	}

	c.rebuildMatcher()
	return c, nil
}

// Domain returns the text domain this catalog serves.
func (c *Catalog) Domain() string {
	return c.domain
}

// Locales returns the loaded locale tags, fallback first.
func (c *Catalog) Locales() []language.Tag {
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// T implements Translator. Lookup order: best-match loaded locale, then the
// default locale's table, then the key itself.
func (c *Catalog) T(locale, key string, data map[string]any) string {
	msg := key

	if table := c.tableFor(locale); table != nil {
		if m, ok := table[key]; ok {
			msg = m
		} else if fb, ok := c.messages[c.fallback][key]; ok {
			msg = fb
		}
	} else if fb, ok := c.messages[c.fallback][key]; ok {
		msg = fb
	}

	return expand(msg, data)
}

// tableFor negotiates the closest loaded locale for the requested one.
func (c *Catalog) tableFor(locale string) map[string]string {
	if len(c.tags) == 0 {
		return nil
	}
	_, idx, confidence := c.matcher.Match(parseLocale(locale))
	if confidence == language.No {
		return nil
	}
	return c.messages[c.tags[idx]]
}

// rebuildMatcher refreshes the negotiation set after loading. The fallback
// locale goes first so it wins ties, per language.NewMatcher semantics.
func (c *Catalog) rebuildMatcher() {
	c.tags = c.tags[:0]
	if _, ok := c.messages[c.fallback]; ok {
		c.tags = append(c.tags, c.fallback)
	}
	for tag := range c.messages {
		if tag != c.fallback {
			c.tags = append(c.tags, tag)
		}
	}
	if len(c.tags) == 0 {
		c.tags = append(c.tags, c.fallback)
	}
	c.matcher = language.NewMatcher(c.tags)
}

// parseLocale turns a host-platform locale code (e.g. "de_DE") into a BCP 47
// tag, falling back to the undetermined tag for garbage input.
func parseLocale(locale string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// expand substitutes {name} placeholders in msg from data.
func expand(msg string, data map[string]any) string {
	if len(data) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", fmt.Sprintf("%v", v))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
