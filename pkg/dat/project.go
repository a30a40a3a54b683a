package dat

import (
	"strings"

	"github.com/beevik/etree"

	"romsieve/pkg/catalog"
	"romsieve/pkg/errors"
	"romsieve/pkg/logging"
)

// ProjectOptions controls how the filtered catalog is assembled.
type ProjectOptions struct {
	// CloneValidity decides which clones of a winning parent are kept.
	// Clones are never scored, only filtered. Nil means
	// DefaultCloneValidity.
	CloneValidity func(catalog.Entry) bool

	// Manufacturer, when non-empty, drops winners (and their clones)
	// whose manufacturer does not contain it, case-insensitively. This
	// restricts output only; scoring has already happened.
	Manufacturer string
}

// DefaultCloneValidity keeps clones whose description carries a
// "Players" marker: such a clone differs in supported player count from
// its parent and is a materially distinct variant.
func DefaultCloneValidity(e catalog.Entry) bool {
	return strings.Contains(e.RawName, "Players")
}

// Project rebuilds a filtered Dat document: the original envelope and
// header, then each winning parent followed by its valid clones, in
// winner order.
func (c *Catalog) Project(winners []catalog.Entry, clones map[string][]catalog.Entry, opts ProjectOptions) (*etree.Document, error) {
	logger := logging.GetLogger("dat.projector")

	validity := opts.CloneValidity
	if validity == nil {
		validity = DefaultCloneValidity
	}
	manufacturer := strings.ToLower(strings.TrimSpace(opts.Manufacturer))

	// Start from a full copy so the declaration, DOCTYPE and header
	// survive untouched, then strip every game element before appending
	// the selected ones.
	out := c.doc.Copy()
	root := out.Root()
	if root == nil {
		return nil, errors.New(errors.ErrDatWrite, "dat document has no root element")
	}
	for _, el := range root.ChildElements() {
		if gameTags[el.Tag] {
			root.RemoveChild(el)
		}
	}

	kept, keptClones := 0, 0
	for _, w := range winners {
		if manufacturer != "" &&
			!strings.Contains(strings.ToLower(w.Manufacturer), manufacturer) {
			continue
		}

		el, ok := w.Meta.(*etree.Element)
		if !ok {
			return nil, errors.Newf(errors.ErrDatWrite,
				"winner %q carries no dat element", w.ID)
		}
		root.AddChild(el.Copy())
		kept++

		for _, clone := range clones[w.ID] {
			if !validity(clone) {
				continue
			}
			cloneEl, ok := clone.Meta.(*etree.Element)
			if !ok {
				return nil, errors.Newf(errors.ErrDatWrite,
					"clone %q carries no dat element", clone.ID)
			}
			root.AddChild(cloneEl.Copy())
			keptClones++
		}
	}

	logger.Info().
		Int("winners", kept).
		Int("clones", keptClones).
		Str("manufacturer", opts.Manufacturer).
		Msg("Filtered catalog assembled")
	return out, nil
}
