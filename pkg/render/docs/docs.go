// Package docs renders a field-reference sheet for a dataset schema. The
// default template emits Markdown; callers can swap in their own pongo2
// template when the sheet needs to land somewhere else.
package docs

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-dataitem/pkg/choice"
	"github.com/goliatone/go-dataitem/pkg/dataset"
	"github.com/goliatone/go-dataitem/pkg/item"
)

const defaultTemplate = `# {{ name }}

| Field | Kind | Description |
| --- | --- | --- |
{% for row in rows %}| {{ row.Label }} | {{ row.Kind }} | {{ row.Help }} |
{% endfor %}`

// Row is the per-field view handed to the template.
type Row struct {
	Label   string
	Kind    string
	Help    string
	Default string
	Choices []string
}

// Option configures a Renderer before construction.
type Option func(*config)

type config struct {
	source string
}

// WithTemplate replaces the default sheet template. The template receives
// "name" (string) and "rows" ([]Row).
func WithTemplate(source string) Option {
	return func(cfg *config) {
		cfg.source = source
	}
}

// Renderer renders reference sheets. Safe for concurrent use once built.
type Renderer struct {
	once sync.Once
	tpl  *pongo2.Template
	err  error

	source string
}

// New constructs a Renderer. The template compiles lazily on first use.
func New(options ...Option) *Renderer {
	cfg := &config{source: defaultTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return &Renderer{source: cfg.source}
}

// Render produces the reference sheet for a schema.
func (r *Renderer) Render(ds *dataset.Schema) (string, error) {
	if ds == nil {
		return "", errors.New("docs: nil schema")
	}
	r.once.Do(func() {
		set := pongo2.NewSet("dataitem-docs", pongo2.MustNewLocalFileSystemLoader(""))
		r.tpl, r.err = set.FromString(r.source)
	})
	if r.err != nil {
		return "", fmt.Errorf("docs: compile template: %w", r.err)
	}

	rows := make([]Row, 0, ds.Len())
	for _, it := range ds.Items() {
		rows = append(rows, rowFor(it))
	}

	var buf bytes.Buffer
	ctx := pongo2.Context{"name": ds.Name(), "rows": rows}
	if err := r.tpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("docs: render %q: %w", ds.Name(), err)
	}
	return buf.String(), nil
}

func rowFor(it item.Item) Row {
	row := Row{
		Label: it.Label(),
		Kind:  kindOf(it),
		Help:  it.AutoHelp(nil),
	}
	if src, ok := choiceSource(it); ok {
		if lst, static := src.Static(); static {
			row.Choices = lst.LabelStrings()
		}
	}
	if v, err := it.DefaultValue(nil); err == nil && v != nil {
		row.Default = fmt.Sprintf("%v", v)
	}
	return row
}

func choiceSource(it item.Item) (choice.Source, bool) {
	type sourced interface {
		Source() choice.Source
	}
	if s, ok := it.(sourced); ok {
		return s.Source(), true
	}
	return choice.Source{}, false
}

func kindOf(it item.Item) string {
	switch it.(type) {
	case *item.IntItem:
		return "integer"
	case *item.FloatItem:
		return "float"
	case *item.BoolItem:
		return "boolean"
	case *item.DateTimeItem:
		return "date/time"
	case *item.DateItem:
		return "date"
	case *item.ColorItem:
		return "color"
	case *item.FontFamilyItem:
		return "font family"
	case *item.TextItem:
		return "text"
	case *item.StringItem:
		return "string"
	case *item.FileSaveItem:
		return "file (save)"
	case *item.FileOpenItem:
		return "file (open)"
	case *item.FilesOpenItem:
		return "files (open)"
	case *item.DirectoryItem:
		return "directory"
	case *item.ImageChoiceItem:
		return "image choice"
	case *item.MultipleChoiceItem:
		return "multiple choice"
	case *item.ChoiceItem:
		return "choice"
	case *item.FloatArrayItem:
		return "float array"
	case *item.DictItem:
		return "dictionary"
	case *item.ButtonItem:
		return "action"
	default:
		return strings.TrimPrefix(fmt.Sprintf("%T", it), "*item.")
	}
}
