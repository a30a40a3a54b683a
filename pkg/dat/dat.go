// Package dat reads hierarchical XML Dat catalogs and rebuilds filtered
// ones. The document envelope (XML declaration, DOCTYPE, header element)
// is carried through untouched; only game elements are selected.
package dat

import (
	"io"
	"strings"

	"github.com/beevik/etree"

	"romsieve/pkg/catalog"
	"romsieve/pkg/errors"
	"romsieve/pkg/logging"
)

// gameTags are the element names that represent catalog entries. MAME
// style documents use "machine", older ones "game".
var gameTags = map[string]bool{
	"game":    true,
	"machine": true,
}

// Catalog is a parsed Dat document plus the entries extracted from it.
// Each entry's Meta field holds its original *etree.Element.
type Catalog struct {
	doc     *etree.Document
	Entries []catalog.Entry
}

// Load reads and parses a Dat file from disk.
func Load(path string) (*Catalog, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDatParse, "failed to read dat file %s", path)
	}
	return fromDocument(doc)
}

// Parse parses a Dat document from a reader.
func Parse(r io.Reader) (*Catalog, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, errors.ErrDatParse, "failed to parse dat document")
	}
	return fromDocument(doc)
}

func fromDocument(doc *etree.Document) (*Catalog, error) {
	logger := logging.GetLogger("dat")

	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrDatParse, "dat document has no root element")
	}

	c := &Catalog{doc: doc}
	for _, el := range root.ChildElements() {
		if !gameTags[el.Tag] {
			continue
		}
		c.Entries = append(c.Entries, entryFromElement(el))
	}

	logger.Debug().
		Str("root", root.Tag).
		Int("entries", len(c.Entries)).
		Msg("Dat document parsed")
	return c, nil
}

// entryFromElement builds an Entry from a game element. The description
// text is the display name carrying the tag groups; entries whose
// description has none come back invalid (empty country list) and are
// reported by the engine, never silently scored.
func entryFromElement(el *etree.Element) catalog.Entry {
	name := el.SelectAttrValue("name", "")
	display := name
	if d := el.SelectElement("description"); d != nil && strings.TrimSpace(d.Text()) != "" {
		display = strings.TrimSpace(d.Text())
	}

	// The parse error only signals a missing region group; the partial
	// entry is still usable and carries the invalid marker (empty
	// Countries) forward.
	e, _ := catalog.ParseEntry(display)
	e.ID = name
	e.ParentKey = el.SelectAttrValue("cloneof", "")
	e.BIOS = el.SelectAttrValue("isbios", "") == "yes" ||
		strings.Contains(display, "[BIOS]")
	if m := el.SelectElement("manufacturer"); m != nil {
		e.Manufacturer = strings.TrimSpace(m.Text())
	}
	e.Meta = el
	return e
}

// Description returns the display text the validity predicate and the
// analysis output use for an entry of this catalog.
func Description(e catalog.Entry) string {
	return e.RawName
}
