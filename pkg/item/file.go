package item

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-dataitem/internal/textutil"
	"github.com/goliatone/go-dataitem/pkg/property"
	"github.com/goliatone/go-dataitem/pkg/serialize"
)

// FileSaveItem is a path field for a file about to be written. The path does
// not have to exist yet; a missing extension is completed from the wildcard
// filter list on text input.
type FileSaveItem struct {
	StringItem
}

// NewFileSave declares a save-target path field. formats are wildcard filters
// ("*.txt", ".txt" or "txt"); the literal "*" means all file types and is the
// default when none are given.
func NewFileSave(label string, formats ...string) *FileSaveItem {
	it := &FileSaveItem{}
	it.bind(it, label)
	it.SetProp(GroupData, PropFormats, property.Static(normalizeFormats(formats)))
	return it
}

// WithHelp sets the tooltip text.
func (it *FileSaveItem) WithHelp(help string) *FileSaveItem {
	it.setHelp(help)
	return it
}

// WithDefault sets a constant default value.
func (it *FileSaveItem) WithDefault(v string) *FileSaveItem {
	it.StringItem.WithDefault(v)
	return it
}

// WithBasedir sets the directory file dialogs start from.
func (it *FileSaveItem) WithBasedir(dir string) *FileSaveItem {
	it.SetProp(GroupData, PropBasedir, property.Static(dir))
	return it
}

// AllFilesFirst prioritises the literal all-files filter when completing
// extensions and populating dialogs.
func (it *FileSaveItem) AllFilesFirst() *FileSaveItem {
	it.SetProp(GroupData, PropAllFilesFirst, property.Static(true))
	return it
}

// CheckValue implements Item: a save target only needs to be a non-empty
// path.
func (it *FileSaveItem) CheckValue(value any) bool {
	v, ok := value.(string)
	if !ok {
		return false
	}
	return v != ""
}

// FromString implements Item, completing a missing extension from the filter
// list.
func (it *FileSaveItem) FromString(text string) (any, bool) {
	text = textutil.Normalize(text)
	if text == "" {
		return nil, false
	}
	return addExtension(it, text), true
}

// AutoHelp implements Item.
func (it *FileSaveItem) AutoHelp(Record) string {
	formats := itemFormats(it)
	if len(formats) == 0 || (len(formats) == 1 && formats[0] == "*") {
		return "all file types"
	}
	return "supported file types: *." + strings.Join(formats, ", *.")
}

// FileOpenItem is a path field for an existing regular file.
type FileOpenItem struct {
	FileSaveItem
}

// NewFileOpen declares an existing-file path field.
func NewFileOpen(label string, formats ...string) *FileOpenItem {
	it := &FileOpenItem{}
	it.bind(it, label)
	it.SetProp(GroupData, PropFormats, property.Static(normalizeFormats(formats)))
	return it
}

// WithDefault sets a constant default value.
func (it *FileOpenItem) WithDefault(v string) *FileOpenItem {
	it.StringItem.WithDefault(v)
	return it
}

// CheckValue implements Item: the path must exist and be a regular file. A
// transient filesystem error surfaces as false, not as an I/O error.
func (it *FileOpenItem) CheckValue(value any) bool {
	v, ok := value.(string)
	if !ok {
		return false
	}
	return isRegularFile(v)
}

// FilesOpenItem is a path-sequence field for multiple existing regular files.
type FilesOpenItem struct {
	FileSaveItem
}

// NewFilesOpen declares a multiple-existing-files field.
func NewFilesOpen(label string, formats ...string) *FilesOpenItem {
	it := &FilesOpenItem{}
	it.bind(it, label)
	it.SetProp(GroupData, PropFormats, property.Static(normalizeFormats(formats)))
	return it
}

// WithDefault sets a constant default value. A single path becomes a
// one-element sequence.
func (it *FilesOpenItem) WithDefault(paths ...string) *FilesOpenItem {
	it.setDefault(property.Static(append([]string(nil), paths...)))
	return it
}

// CheckValue implements Item: every path in the sequence must exist and be a
// regular file. The AND over an empty sequence is vacuously true.
func (it *FilesOpenItem) CheckValue(value any) bool {
	paths, ok := asStringSlice(value)
	if !ok {
		return false
	}
	for _, p := range paths {
		if !isRegularFile(p) {
			return false
		}
	}
	return true
}

// FromString implements Item. A JSON array of strings parses as the path
// list; anything else is a single path. Every path is extension-normalized.
func (it *FilesOpenItem) FromString(text string) (any, bool) {
	text = textutil.Normalize(text)
	if text == "" {
		return nil, false
	}
	var paths []string
	if strings.HasPrefix(strings.TrimSpace(text), "[") {
		if err := json.Unmarshal([]byte(text), &paths); err != nil {
			return nil, false
		}
	} else {
		paths = []string{text}
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, addExtension(it, p))
	}
	return out, true
}

// Serialize implements Item, writing the path list as one sequence.
func (it *FilesOpenItem) Serialize(rec Record, w serialize.Writer) error {
	v, _ := rec.Value(it)
	paths, _ := asStringSlice(v)
	seq := make([]any, len(paths))
	for idx, p := range paths {
		seq[idx] = p
	}
	if err := w.WriteSequence(seq); err != nil {
		return fmt.Errorf("item: serialize %q: %w", it.Label(), err)
	}
	return nil
}

// Deserialize implements Item.
func (it *FilesOpenItem) Deserialize(rec Record, r serialize.Reader) error {
	seq, err := r.ReadSequence()
	if err != nil {
		return fmt.Errorf("item: deserialize %q: %w", it.Label(), err)
	}
	paths, ok := asStringSlice(seq)
	if !ok {
		return fmt.Errorf("item: deserialize %q: sequence holds non-path entries", it.Label())
	}
	rec.SetValue(it, paths)
	return nil
}

// DirectoryItem is a path field for an existing directory.
type DirectoryItem struct {
	StringItem
}

// NewDirectory declares an existing-directory path field.
func NewDirectory(label string) *DirectoryItem {
	it := &DirectoryItem{}
	it.bind(it, label)
	return it
}

// WithDefault sets a constant default value.
func (it *DirectoryItem) WithDefault(v string) *DirectoryItem {
	it.StringItem.WithDefault(v)
	return it
}

// CheckValue implements Item: the path must exist and be a directory.
func (it *DirectoryItem) CheckValue(value any) bool {
	v, ok := value.(string)
	if !ok {
		return false
	}
	info, err := os.Stat(v)
	return err == nil && info.IsDir()
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// normalizeFormats strips wildcard/dot prefixes so filters compare and join
// uniformly; the literal "*" survives as-is. No filters means all files.
func normalizeFormats(formats []string) []string {
	if len(formats) == 0 {
		return []string{"*"}
	}
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if f != "*" {
			f = strings.TrimPrefix(f, "*")
			f = strings.TrimPrefix(f, ".")
		}
		if f == "" {
			f = "*"
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func itemFormats(it Item) []string {
	formats, _ := it.Prop(GroupData, PropFormats).([]string)
	return formats
}

// addExtension completes a missing extension from the first filter. With the
// all-files filter first, either literally or via AllFilesFirst, the path
// is left alone.
func addExtension(it Item, path string) string {
	if path == "" {
		return path
	}
	formats := itemFormats(it)
	if len(formats) == 0 {
		return path
	}
	first := formats[0]
	if allFirst, _ := it.Prop(GroupData, PropAllFilesFirst).(bool); allFirst {
		for _, f := range formats {
			if f == "*" {
				first = "*"
				break
			}
		}
	}
	if first == "*" {
		return path
	}
	if filepath.Ext(path) != "" {
		return path
	}
	return path + "." + first
}
