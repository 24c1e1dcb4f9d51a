// Package names derives the naming-convention variants of a scaffold
// identifier. A user may pass a name in either kebab-case ("user-card") or
// PascalCase ("UserCard"); both canonical forms are derived once and stay
// immutable for the run. The conversion is deterministic and round-trips:
// ToKebab(ToPascal(x)) == x for any valid kebab-case x.
package names

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// identPattern is the safe character set accepted for raw identifiers.
// Names are interpolated into generated source files, so anything outside
// letters, digits, and hyphens is rejected up front.
var identPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// Derived holds the naming-convention variants of one identifier.
type Derived struct {
	Pascal string // e.g., "UserCard"
	Kebab  string // e.g., "user-card"
}

// Validate checks that raw is a usable identifier: non-empty, safe
// character set, no empty kebab segments.
func Validate(raw string) error {
	if raw == "" {
		return fmt.Errorf("name must not be empty")
	}
	if !identPattern.MatchString(raw) {
		return fmt.Errorf("invalid name %q: must start with a letter and contain only letters, digits, and hyphens", raw)
	}
	if strings.Contains(raw, "--") || strings.HasSuffix(raw, "-") {
		return fmt.Errorf("invalid name %q: hyphens must separate non-empty segments", raw)
	}
	return nil
}

// Derive validates raw and returns both canonical forms. Input may be
// kebab-case, PascalCase, or camelCase; mixed input is normalized through
// the kebab form first so both outputs agree.
func Derive(raw string) (Derived, error) {
	if err := Validate(raw); err != nil {
		return Derived{}, err
	}
	kebab := ToKebab(raw)
	return Derived{
		Pascal: ToPascal(kebab),
		Kebab:  kebab,
	}, nil
}

// ToPascal converts a kebab-case identifier to PascalCase: split on "-",
// uppercase the first character of each segment, concatenate.
func ToPascal(kebab string) string {
	var b strings.Builder
	for _, seg := range strings.Split(kebab, "-") {
		if seg == "" {
			continue
		}
		r := []rune(seg)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(string(r[1:]))
	}
	return b.String()
}

// ToKebab converts a PascalCase (or camelCase) identifier to kebab-case:
// insert "-" before each uppercase letter except the first, lowercase
// everything. Digits stay attached to their segment, so "My2Widget"
// becomes "my2-widget" and survives the round trip. Kebab-case input
// passes through unchanged.
func ToKebab(name string) string {
	var b strings.Builder
	prev := rune(0)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 && prev != '-' {
				b.WriteRune('-')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return strings.TrimPrefix(b.String(), "-")
}
