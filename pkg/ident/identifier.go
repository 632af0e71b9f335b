package ident

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// UnrankedKey is the sort key assigned to identifiers without any digit run.
// It is larger than any plausible plot count, so unranked identifiers sort
// after every real plot number instead of landing at an arbitrary position.
const UnrankedKey = 999999

// Identifier is a normalized identifier string with its cached numeric sort
// key.
type Identifier struct {
	Text string
	Key  int
}

// prefixes are tried in order; at most one is stripped. PLOT must come before
// P so "PLOT2A" loses the whole token, and NO. before NO for the same reason.
var prefixes = []string{"PLOT", "NO.", "NO", "P"}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	punctRe      = regexp.MustCompile(`[#.]`)
	digitRunRe   = regexp.MustCompile(`\d+`)
)

// Normalize converts raw identifier text to its canonical form: upper-cased,
// one leading prefix token removed, all whitespace and literal "#"/"." stripped.
// Normalize("PLOT 2A") and Normalize("plot2a") both yield "2A".
func Normalize(text string) Identifier {
	t := strings.ToUpper(strings.TrimSpace(text))

	for _, prefix := range prefixes {
		if strings.HasPrefix(t, prefix) {
			t = strings.TrimSpace(t[len(prefix):])
			break
		}
	}

	t = whitespaceRe.ReplaceAllString(t, "")
	t = punctRe.ReplaceAllString(t, "")

	return Identifier{Text: t, Key: SortKey(t)}
}

// SortKey extracts the first maximal digit run of an identifier as its numeric
// sort key. Identifiers without digits get UnrankedKey.
func SortKey(identifier string) int {
	match := digitRunRe.FindString(identifier)
	if match == "" {
		return UnrankedKey
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		// A digit run too long for int; treat like a missing one.
		return UnrankedKey
	}
	return n
}

// Sort orders identifiers ascending by numeric key, breaking ties by the
// normalized text so equal keys ("5" vs "5/A") still order deterministically.
func Sort(ids []Identifier) {
	sort.SliceStable(ids, func(i, j int) bool {
		if ids[i].Key != ids[j].Key {
			return ids[i].Key < ids[j].Key
		}
		return ids[i].Text < ids[j].Text
	})
}

// Dedupe returns the identifiers with duplicates (by normalized text) removed,
// sorted in the canonical order.
func Dedupe(ids []Identifier) []Identifier {
	seen := make(map[string]bool, len(ids))
	out := make([]Identifier, 0, len(ids))
	for _, id := range ids {
		if seen[id.Text] {
			continue
		}
		seen[id.Text] = true
		out = append(out, id)
	}
	Sort(out)
	return out
}
