// internal/form/rules.go
//
// Contact form: per-field rule table.
//
// Context
//   Each recognised field name maps to an ordered list of rules.  Validate
//   runs every rule of a field in order and stores the message of each
//   failing rule under the field name, so when several rules fail only the
//   last one survives.  Field names missing from the table are ignored.
//
// Notes
//   •  Lengths count runes, not bytes, so Cyrillic names get the same
//      64-character budget as Latin ones.
//   •  The phone rule counts digits rather than matching one national
//      layout; "+38 (067) 123-45-67" and "380671234567" are both accepted.
//   •  "<" opens a tag unless whitespace follows it, so "a < b" is plain
//      text while "<>", "I <3 you", and "5<6 and 7>3" are markup.
//
//------------------------------------------------------------------------------

package form

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	NameMaxLen     = 64
	CommentMaxLen  = 1024
	PhoneMinDigits = 10
	PhoneMaxDigits = 16
)

// Rule is one predicate plus the message recorded when it fails.
type Rule struct {
	Message string
	Fails   func(value string) bool
}

// Field messages.  Exported so callers and tests can match them exactly.
const (
	MsgNameRequired  = "Name is required."
	MsgNameDigits    = "Name must not contain digits."
	MsgNameTooLong   = "Name must not be longer than 64 characters."
	MsgPhoneFormat   = "Phone must be in international format, e.g. +38 (067) 123-45-67."
	MsgPhoneRequired = "Phone is required."
	MsgEmailFormat   = "E-mail must be empty or a valid address."
	MsgCommentTags   = "Comment must not contain tags."
	MsgCommentLong   = "Comment must not be longer than 1024 characters."
)

// Rules is the complete table.  Treat it as read-only.
var Rules = map[string][]Rule{
	"name": {
		{MsgNameRequired, blank},
		{MsgNameDigits, hasDigit},
		{MsgNameTooLong, longerThan(NameMaxLen)},
	},
	"phone": {
		{MsgPhoneFormat, badPhone},
		{MsgPhoneRequired, blank},
	},
	"email": {
		{MsgEmailFormat, optional(badEmail)},
	},
	"comment": {
		{MsgCommentTags, optional(hasTags)},
		{MsgCommentLong, longerThan(CommentMaxLen)},
	},
}

// -----------------------------------------------------------------------------
// Predicates
// -----------------------------------------------------------------------------

var (
	emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	tagRE   = regexp.MustCompile(`<[^\s][^>]*(>|$)`)
)

func blank(v string) bool { return strings.TrimSpace(v) == "" }

func hasDigit(v string) bool { return strings.IndexFunc(v, unicode.IsDigit) >= 0 }

func longerThan(n int) func(string) bool {
	return func(v string) bool { return utf8.RuneCountInString(v) > n }
}

// optional skips the wrapped check for blank values.
func optional(check func(string) bool) func(string) bool {
	return func(v string) bool { return !blank(v) && check(v) }
}

// badPhone reports whether the digit count lies outside the accepted range.
func badPhone(v string) bool {
	n := DigitCount(v)
	return n < PhoneMinDigits || n > PhoneMaxDigits
}

func badEmail(v string) bool { return !emailRE.MatchString(strings.TrimSpace(v)) }

func hasTags(v string) bool {
	v = strings.TrimSpace(v)
	return StripTags(v) != v
}

// DigitCount returns how many runes of v are decimal digits.
func DigitCount(v string) int {
	n := 0
	for _, r := range v {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// StripTags removes HTML-like tags, including an unterminated trailing one.
func StripTags(v string) string { return tagRE.ReplaceAllString(v, "") }
