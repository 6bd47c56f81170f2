package forms

import (
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"strconv"
	"strings"
)

// Helpers for pulling flat and nested fields out of a multipart form. Array
// fields arrive either repeated ("tags[]") or indexed ("tags[0]", "tags[1]");
// nested list entries arrive as "trusted_by[0][name]", "trusted_by[0][logo]".

// File extracts the three-state input for a single attachment field. A file
// part wins; a present-but-empty value means clear; a non-empty value is the
// client echoing the currently stored path and counts as omitted; an absent
// field is omitted.
func File(form *multipart.Form, field string) (FileInput, error) {
	if headers, ok := form.File[field]; ok && len(headers) > 0 {
		return readUpload(headers[0])
	}
	if values, ok := form.Value[field]; ok && len(values) > 0 {
		if strings.TrimSpace(values[0]) == "" {
			return ClearFile(), nil
		}
	}
	return OmittedFile(), nil
}

// Value returns the first value for a field, or "".
func Value(form *multipart.Form, field string) string {
	if values, ok := form.Value[field]; ok && len(values) > 0 {
		return values[0]
	}
	return ""
}

// Bool interprets checkbox-style values ("1", "true", "on").
func Bool(form *multipart.Form, field string) bool {
	switch strings.ToLower(Value(form, field)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// Strings collects an array-valued field, preserving submission order for
// both the repeated and the indexed encoding.
func Strings(form *multipart.Form, field string) []string {
	if values, ok := form.Value[field+"[]"]; ok {
		return values
	}
	var indices []int
	for key := range form.Value {
		if i, ok := entryIndex(key, field); ok && !strings.Contains(key[len(field)+1:], "][") {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	out := make([]string, 0, len(indices))
	for _, i := range indices {
		out = append(out, Value(form, fmt.Sprintf("%s[%d]", field, i)))
	}
	return out
}

// EntryIndices returns the sorted distinct indices present for a nested list
// field, counting both value keys and file keys so an entry consisting only
// of a logo upload is still seen.
func EntryIndices(form *multipart.Form, field string) []int {
	seen := make(map[int]bool)
	for key := range form.Value {
		if i, ok := entryIndex(key, field); ok {
			seen[i] = true
		}
	}
	for key := range form.File {
		if i, ok := entryIndex(key, field); ok {
			seen[i] = true
		}
	}
	indices := make([]int, 0, len(seen))
	for i := range seen {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// EntryValue returns the value of a sub-field of a nested list entry, e.g.
// EntryValue(form, "trusted_by", 0, "name").
func EntryValue(form *multipart.Form, field string, index int, sub string) string {
	return Value(form, fmt.Sprintf("%s[%d][%s]", field, index, sub))
}

// EntryFile returns the three-state file input for a sub-field of a nested
// list entry, with the same semantics as File.
func EntryFile(form *multipart.Form, field string, index int, sub string) (FileInput, error) {
	return File(form, fmt.Sprintf("%s[%d][%s]", field, index, sub))
}

// entryIndex parses keys of the form "field[N]..." and returns N.
func entryIndex(key, field string) (int, bool) {
	if !strings.HasPrefix(key, field+"[") {
		return 0, false
	}
	rest := key[len(field)+1:]
	end := strings.IndexByte(rest, ']')
	if end <= 0 {
		return 0, false
	}
	i, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return i, true
}

func readUpload(header *multipart.FileHeader) (FileInput, error) {
	file, err := header.Open()
	if err != nil {
		return OmittedFile(), err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return OmittedFile(), err
	}
	return NewUpload(data, header.Filename), nil
}
