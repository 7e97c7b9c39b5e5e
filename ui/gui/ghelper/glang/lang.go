package glang

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	yaml "gopkg.in/yaml.v3"
)

//go:embed messages.*.yaml
var defaultFiles embed.FS

// GUILangWorker holds flattened dot-keys ("toolbar.undo") for one language.
type GUILangWorker struct {
	lang string
	dict map[string]string
}

// NewGUILangWorker loads the embedded catalogue for lang, then applies
// every messages.<lang>.yaml found in overrideDir.
func NewGUILangWorker(lang, overrideDir string) (*GUILangWorker, error) {
	lw := &GUILangWorker{lang: lang, dict: make(map[string]string)}

	raw, err := defaultFiles.ReadFile("messages." + lang + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown language %q: %w", lang, err)
	}
	if err := lw.apply(raw); err != nil {
		return nil, fmt.Errorf("parse embedded %s messages: %w", lang, err)
	}

	if strings.TrimSpace(overrideDir) == "" {
		return lw, nil
	}
	matches, err := filepath.Glob(filepath.Join(overrideDir, "messages."+lang+".y*ml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	for _, name := range matches {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := lw.apply(b); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}
	return lw, nil
}

func (lw *GUILangWorker) Lang() string {
	return lw.lang
}

// T returns the key itself when it is not found.
func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key
}

// Tf renders the message as a text/template with data.
func (lw *GUILangWorker) Tf(key string, data interface{}) string {
	src := lw.T(key)
	tpl, err := template.New(key).Option("missingkey=error").Parse(src)
	if err != nil {
		return src
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return src
	}
	return buf.String()
}

func (lw *GUILangWorker) apply(raw []byte) error {
	var root map[string]interface{}
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return err
	}
	flatten("", root, lw.dict)
	return nil
}

func flatten(prefix string, node map[string]interface{}, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}
