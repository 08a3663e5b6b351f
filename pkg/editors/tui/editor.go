// Package tui edits dataset records interactively in the terminal. The editor
// walks the record type in declaration order and picks a prompt per item kind;
// the terminal itself sits behind PromptDriver so flows stay testable.
package tui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-dataitem/pkg/dataset"
	"github.com/goliatone/go-dataitem/pkg/icons"
	"github.com/goliatone/go-dataitem/pkg/item"
)

// Option configures an Editor before use.
type Option func(*Editor)

// WithDriver replaces the survey-backed prompt driver.
func WithDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithIconResolver supplies the resolver used to display the icon references
// of image-choice entries.
func WithIconResolver(resolver icons.Resolver) Option {
	return func(e *Editor) {
		e.icons = resolver
	}
}

// Editor runs an interactive editing pass over a record. It also serves as
// the map editor for dictionary items, so activating one opens a nested
// prompt flow.
type Editor struct {
	driver PromptDriver
	icons  icons.Resolver

	// ctx of the Edit call in flight; EditMap runs inside it.
	ctx context.Context
}

// New constructs an editor backed by the default terminal driver.
func New(options ...Option) *Editor {
	e := &Editor{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Edit prompts for every field of the record in declaration order. An empty
// answer keeps the field's current value. Returns ErrAborted when the user
// interrupts.
func (e *Editor) Edit(ctx context.Context, rec *dataset.Record) error {
	if rec == nil {
		return fmt.Errorf("tui: nil record")
	}
	e.ctx = ctx
	defer func() { e.ctx = nil }()

	for _, it := range rec.Schema().Items() {
		if err := e.editItem(ctx, rec, it); err != nil {
			return err
		}
	}
	if failed := rec.Check(); len(failed) > 0 {
		return fmt.Errorf("tui: invalid fields after edit: %s", strings.Join(failed, ", "))
	}
	return nil
}

func (e *Editor) editItem(ctx context.Context, rec *dataset.Record, it item.Item) error {
	switch typed := it.(type) {
	case *item.BoolItem:
		return e.editBool(ctx, rec, typed)
	case *item.MultipleChoiceItem:
		return e.editMultiChoice(ctx, rec, typed)
	case *item.ImageChoiceItem:
		return e.editImageChoice(ctx, rec, typed)
	case *item.ChoiceItem:
		return e.editChoice(ctx, rec, typed)
	case *item.TextItem:
		return e.editText(ctx, rec, typed)
	case *item.FloatArrayItem:
		return e.editFloatArray(ctx, rec, typed)
	case *item.DictItem:
		_, err := typed.Activate(rec, e)
		return err
	case *item.ButtonItem:
		_, err := typed.Activate(rec, e)
		return err
	default:
		return e.editScalar(ctx, rec, it)
	}
}

// editScalar covers every item that round-trips through FromString.
func (e *Editor) editScalar(ctx context.Context, rec *dataset.Record, it item.Item) error {
	current, hasCurrent := rec.Value(it)
	answer, err := e.driver.Input(ctx, InputConfig{
		Message: it.Label(),
		Default: formatValue(current),
		Help:    it.AutoHelp(rec),
		Validator: func(s string) error {
			if s == "" {
				return nil
			}
			v, ok := it.FromString(s)
			if !ok {
				return fmt.Errorf("cannot interpret %q", s)
			}
			if !it.CheckValue(v) {
				return fmt.Errorf("out of bounds: %s", it.AutoHelp(rec))
			}
			return nil
		},
	})
	if err != nil {
		return err
	}
	if answer == "" && hasCurrent {
		return nil
	}
	v, ok := it.FromString(answer)
	if !ok {
		// An empty answer on an unset field leaves it unset.
		if answer == "" {
			return nil
		}
		return fmt.Errorf("tui: %q: cannot interpret %q", it.Label(), answer)
	}
	rec.SetValue(it, v)
	return nil
}

func (e *Editor) editBool(ctx context.Context, rec *dataset.Record, it *item.BoolItem) error {
	current, _ := rec.Value(it)
	def, _ := current.(bool)
	answer, err := e.driver.Confirm(ctx, ConfirmConfig{
		Message: promptText(it),
		Default: def,
		Help:    it.AutoHelp(rec),
	})
	if err != nil {
		return err
	}
	rec.SetValue(it, answer)
	return nil
}

func (e *Editor) editText(ctx context.Context, rec *dataset.Record, it *item.TextItem) error {
	current, _ := rec.Value(it)
	answer, err := e.driver.TextArea(ctx, TextAreaConfig{
		Message: it.Label(),
		Default: formatValue(current),
		Help:    it.AutoHelp(rec),
	})
	if err != nil {
		return err
	}
	v, ok := it.FromString(answer)
	if !ok {
		return fmt.Errorf("tui: %q: cannot interpret input", it.Label())
	}
	rec.SetValue(it, v)
	return nil
}

func (e *Editor) editChoice(ctx context.Context, rec *dataset.Record, it *item.ChoiceItem) error {
	lst, err := it.Choices(rec)
	if err != nil {
		return err
	}
	if len(lst) == 0 {
		return nil
	}
	current, _ := rec.Value(it)
	idx, err := e.driver.Select(ctx, SelectConfig{
		Message:      it.Label(),
		Options:      lst.LabelStrings(),
		DefaultIndex: lst.Index(current),
		Help:         it.AutoHelp(rec),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(lst) {
		return fmt.Errorf("tui: %q: selection out of range", it.Label())
	}
	rec.SetValue(it, lst[idx].Key)
	return nil
}

// editImageChoice annotates option labels with resolved icon references so
// image-backed choices stay distinguishable in a text terminal. Without a
// resolver the entries prompt like a plain choice. The record is keyed by the
// concrete item, so the flow never goes through the embedded ChoiceItem.
func (e *Editor) editImageChoice(ctx context.Context, rec *dataset.Record, it *item.ImageChoiceItem) error {
	lst, err := it.Choices(rec)
	if err != nil {
		return err
	}
	if len(lst) == 0 {
		return nil
	}
	options := make([]string, len(lst))
	for idx, entry := range lst {
		options[idx] = entry.Label
		if e.icons == nil || entry.Icon == "" {
			continue
		}
		// An unresolvable icon falls back to the bare label.
		if ref, err := e.icons.Resolve(entry.Icon); err == nil {
			options[idx] = entry.Label + " [" + ref + "]"
		}
	}
	current, _ := rec.Value(it)
	idx, err := e.driver.Select(ctx, SelectConfig{
		Message:      it.Label(),
		Options:      options,
		DefaultIndex: lst.Index(current),
		Help:         it.AutoHelp(rec),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(lst) {
		return fmt.Errorf("tui: %q: selection out of range", it.Label())
	}
	rec.SetValue(it, lst[idx].Key)
	return nil
}

func (e *Editor) editMultiChoice(ctx context.Context, rec *dataset.Record, it *item.MultipleChoiceItem) error {
	lst, err := it.Choices(rec)
	if err != nil {
		return err
	}
	if len(lst) == 0 {
		return nil
	}
	current, _ := rec.Value(it)
	selected, _ := current.([]any)
	var defaults []int
	for idx, entry := range lst {
		for _, key := range selected {
			if key == entry.Key {
				defaults = append(defaults, idx)
			}
		}
	}
	indices, err := e.driver.MultiSelect(ctx, SelectConfig{
		Message:  it.Label(),
		Options:  lst.LabelStrings(),
		Defaults: defaults,
		Help:     it.AutoHelp(rec),
	})
	if err != nil {
		return err
	}
	keys := []any{}
	for _, idx := range indices {
		if idx >= 0 && idx < len(lst) {
			keys = append(keys, lst[idx].Key)
		}
	}
	rec.SetValue(it, keys)
	return nil
}

func (e *Editor) editFloatArray(ctx context.Context, rec *dataset.Record, it *item.FloatArrayItem) error {
	current, _ := rec.Value(it)
	answer, err := e.driver.Input(ctx, InputConfig{
		Message: it.Label(),
		Default: formatFloats(current),
		Help:    "comma separated values",
		Validator: func(s string) error {
			if s == "" {
				return nil
			}
			_, err := parseFloats(s)
			return err
		},
	})
	if err != nil {
		return err
	}
	if answer == "" {
		return nil
	}
	values, err := parseFloats(answer)
	if err != nil {
		return fmt.Errorf("tui: %q: %w", it.Label(), err)
	}
	rec.SetValue(it, values)
	return nil
}

// EditMap implements item.MapEditor with a nested prompt flow: edit each
// existing entry, optionally add new ones, then confirm.
func (e *Editor) EditMap(label string, value map[string]any) (map[string]any, bool, error) {
	ctx := e.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	out := make(map[string]any, len(value))
	keys := make([]string, 0, len(value))
	for k := range value {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		answer, err := e.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s.%s", label, key),
			Default: formatValue(value[key]),
		})
		if err != nil {
			return nil, false, err
		}
		out[key] = answer
	}

	for {
		more, err := e.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%s: add entry?", label),
		})
		if err != nil {
			return nil, false, err
		}
		if !more {
			break
		}
		key, err := e.driver.Input(ctx, InputConfig{Message: "key"})
		if err != nil {
			return nil, false, err
		}
		if key == "" {
			continue
		}
		val, err := e.driver.Input(ctx, InputConfig{Message: "value"})
		if err != nil {
			return nil, false, err
		}
		out[key] = val
	}

	accepted, err := e.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("%s: apply changes?", label),
		Default: true,
	})
	if err != nil {
		return nil, false, err
	}
	return out, accepted, nil
}

// promptText prefers the on/off caption of boolean items over the label.
func promptText(it *item.BoolItem) string {
	if text, ok := it.Prop(item.GroupDisplay, item.PropText).(string); ok && text != "" {
		return text
	}
	return it.Label()
}

func formatValue(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case time.Time:
		return typed.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", typed)
	}
}

func formatFloats(v any) string {
	values, ok := v.([]float64)
	if !ok {
		return ""
	}
	parts := make([]string, len(values))
	for i, f := range values {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", part)
		}
		out = append(out, f)
	}
	return out, nil
}
