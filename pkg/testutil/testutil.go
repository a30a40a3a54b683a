// Package testutil provides fixture builders shared by the package
// tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"romsieve/pkg/catalog"
)

// MustEntry parses a release name and fails the test if it is invalid.
func MustEntry(t *testing.T, name string) catalog.Entry {
	t.Helper()
	e, err := catalog.ParseEntry(name)
	if err != nil {
		t.Fatalf("ParseEntry(%q): %v", name, err)
	}
	return e
}

// Entries parses a list of release names, tolerating invalid ones (they
// come back flagged, the way the pipeline sees them).
func Entries(names ...string) []catalog.Entry {
	entries := make([]catalog.Entry, 0, len(names))
	for _, name := range names {
		e, _ := catalog.ParseEntry(name)
		entries = append(entries, e)
	}
	return entries
}

// DatGame describes one game element of a test Dat document.
type DatGame struct {
	Name         string
	Description  string
	CloneOf      string
	Manufacturer string
	BIOS         bool
}

// DatXML renders a minimal Dat document with a DOCTYPE and header
// envelope around the given games.
func DatXML(games ...DatGame) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?>` + "\n")
	b.WriteString(`<!DOCTYPE datafile PUBLIC "-//Logiqx//DTD ROM Management Datafile//EN" "http://www.logiqx.com/Dats/datafile.dtd">` + "\n")
	b.WriteString("<datafile>\n")
	b.WriteString("  <header>\n    <name>Test Set</name>\n    <version>1.0</version>\n  </header>\n")
	for _, g := range games {
		b.WriteString(fmt.Sprintf("  <game name=%q", g.Name))
		if g.CloneOf != "" {
			b.WriteString(fmt.Sprintf(" cloneof=%q", g.CloneOf))
		}
		if g.BIOS {
			b.WriteString(` isbios="yes"`)
		}
		b.WriteString(">\n")
		desc := g.Description
		if desc == "" {
			desc = g.Name
		}
		b.WriteString(fmt.Sprintf("    <description>%s</description>\n", desc))
		if g.Manufacturer != "" {
			b.WriteString(fmt.Sprintf("    <manufacturer>%s</manufacturer>\n", g.Manufacturer))
		}
		b.WriteString("  </game>\n")
	}
	b.WriteString("</datafile>\n")
	return b.String()
}
