// Package docs carries the built-in manual. Every .md file in this
// directory is a topic addressed by its base name; readme.md is the
// table of contents and is left out of the "*" wildcard.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Topic returns the markdown source of one topic. The wildcard "*"
// expands to every topic in alphabetical order.
func Topic(name string) (string, error) {
	if name == "*" {
		return Topics(All()...)
	}
	content, err := pages.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("no help topic %q, 'pg topic readme' lists them", name)
	}
	return string(content), nil
}

// Topics concatenates several topics, a newline between them.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// All lists the topic names, sorted. The embedded set is fixed at build
// time, so there is no error to report.
func All() []string {
	entries, _ := pages.ReadDir(".")
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
