// Package code derives short, collision-free identifiers from free-text
// names: SKUs for products and short codes for outlets. Generation is
// deterministic — the same name against the same existing set always yields
// the same code.
package code

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback stems used when a name normalizes to nothing.
const (
	StemProduct = "PRD"
	StemOutlet  = "OUT"
)

const maxBaseLen = 16

// stripDiacritics decomposes to NFD and removes combining marks, leaving a
// 7-bit-safe representation of accented latin input ("Kopi Luwak Café" ->
// "Kopi Luwak Cafe").
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generate builds a code for name that is unused within existing. exclude is
// the entity's own current code, ignored during the collision search so a
// rename-in-place can keep its code. stem is the fallback when the name has
// no usable characters.
//
// Normalization: trim, drop diacritics and non-ASCII, uppercase, collapse
// any non-[A-Z0-9] run to a single space. The base code takes the first 3
// characters of each token joined with '-', truncated to 16. Collisions are
// resolved by appending -2, -3, ... until a free candidate is found.
func Generate(name string, existing []string, exclude, stem string) string {
	used := make(map[string]struct{}, len(existing))
	lowerExclude := strings.ToLower(strings.TrimSpace(exclude))
	for _, c := range existing {
		lc := strings.ToLower(strings.TrimSpace(c))
		if lc == "" || lc == lowerExclude {
			continue
		}
		used[lc] = struct{}{}
	}

	base := buildBase(name, stem)
	if _, taken := used[strings.ToLower(base)]; !taken {
		return base
	}
	for i := 2; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if _, taken := used[strings.ToLower(candidate)]; !taken {
			return candidate
		}
	}
}

// ProductSKU generates a product SKU.
func ProductSKU(name string, existing []string, exclude string) string {
	return Generate(name, existing, exclude, StemProduct)
}

// OutletCode generates an outlet short code.
func OutletCode(name string, existing []string, exclude string) string {
	return Generate(name, existing, exclude, StemOutlet)
}

func buildBase(name, stem string) string {
	tokens := tokenize(name)
	if len(tokens) == 0 {
		return stem
	}
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) > 3 {
			tok = tok[:3]
		}
		parts = append(parts, tok)
	}
	base := strings.Join(parts, "-")
	if len(base) > maxBaseLen {
		base = base[:maxBaseLen]
	}
	return base
}

// tokenize normalizes the name and splits it into uppercase alphanumeric
// tokens. Returns nil when nothing usable remains.
func tokenize(name string) []string {
	s := strings.TrimSpace(name)
	if out, _, err := transform.String(stripDiacritics, s); err == nil {
		s = out
	}
	s = strings.ToUpper(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}
