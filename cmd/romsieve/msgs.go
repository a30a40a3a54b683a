package main

// Short messages (one-liners)
const (
	MsgRootShort = "Pick the best release from sets of near-duplicate ROM dumps"
	MsgRootLong  = `romsieve selects a single "best" release from each group of
near-duplicate catalog entries, driven by a configurable set of weighted
rules: country preference, revision recency, re-edition bonuses, and
skip/force attribute filters.

Flat catalogs (a sorted file list or directory) are grouped by shared
name prefix; XML Dat catalogs use their declared parent/clone links and
can be written back out as a filtered Dat.`

	MsgPickShort = "Select winners from a flat catalog (list file or directory)"
	MsgPickLong  = `Pick reads entry names from a line-delimited list file or from a
directory listing, groups adjacent entries sharing a name prefix, scores
each group and prints one winning name per line.

The input is expected to be sorted by name; directory listings are
sorted automatically.`

	MsgDatShort = "Filter an XML Dat catalog down to winning parents and their variants"
	MsgDatLong  = `Dat parses an XML Dat file, selects the parents that survive the
policy (BIOS exclusion, skip rules, manufacturer filter) and writes a
filtered Dat preserving the original header, with each winning parent
followed by its materially distinct clones.`

	MsgGenConfigShort = "Print the default policy configuration"
	MsgTopicsShort    = "Display available documentation topics"
	MsgTopicsLong     = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort   = "Print version information"

	MsgNoWinners = "No entries selected."
)
