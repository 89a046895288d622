package strip

import (
	"time"

	"github.com/dlclark/regexp2"
)

// Rule is one pattern substitution in the pipeline.
type Rule struct {
	Name        string
	Replacement string
	pattern     string
	opts        regexp2.RegexOptions
	re          *regexp2.Regexp
}

// newRule compiles pattern with regexp2's default timeout, which never
// expires.
func newRule(name, pattern, replacement string, opts regexp2.RegexOptions) Rule {
	return Rule{
		Name:        name,
		Replacement: replacement,
		pattern:     pattern,
		opts:        opts,
		re:          regexp2.MustCompile(pattern, opts),
	}
}

// withTimeout returns a copy of the rule bounded by d per document.
// regexp2 keeps the timeout on the compiled expression, so the copy gets
// its own compilation.
func (r Rule) withTimeout(d time.Duration) Rule {
	bounded := newRule(r.Name, r.pattern, r.Replacement, r.opts)
	bounded.re.MatchTimeout = d
	return bounded
}

// apply rewrites every match in text.
func (r Rule) apply(text string) (string, error) {
	return r.re.Replace(text, r.Replacement, -1, -1)
}

const (
	lines   = regexp2.Multiline
	dotAll  = regexp2.Singleline
	noFlags = regexp2.None
)

// DefaultRules returns the rewrite pipeline in application order.
//
// Images run before links, otherwise the link rule consumes the bracketed
// part of an image and leaves the "!" behind. Fenced blocks run before
// inline code, otherwise the inline rule pairs up the fence backticks and
// the block content survives.
func DefaultRules() []Rule {
	return []Rule{
		newRule("header", `^#{1,6}\s*(.*?)\s*$`, "$1", lines),

		newRule("bold-asterisk", `\*\*(.*?)\*\*`, "$1", noFlags),
		newRule("bold-underscore", `__(.*?)__`, "$1", noFlags),
		newRule("italic", `(?<!\*)(\*|_)(.*?)(?<!\*)(\*|_)(?!\w)`, "$2", noFlags),

		newRule("image", `!\[(.*?)\]\(.*?\)`, "$1", noFlags),
		newRule("link", `\[(.*?)\]\(.*?\)`, "$1", noFlags),

		newRule("fence-backtick", "```.*?```", "", dotAll),
		newRule("fence-tilde", `~~~.*?~~~`, "", dotAll),
		newRule("inline-code", "`(.*?)`", "$1", noFlags),

		newRule("blockquote", `^\s*>\s*(.*)`, "$1", lines),
		newRule("unordered-list", `^(\s*[-*+])\s+(.*)`, "$2", lines),
		newRule("ordered-list", `^(\s*\d+\.)\s*(.*)`, "$2", lines),
		newRule("horizontal-rule", `^[-*_]{3,}\s*$`, "", lines),

		newRule("strikethrough", `~~(.*?)~~`, "$1", noFlags),

		newRule("table-row", `^\|.*\|\s*$`, "", lines),
		newRule("table-separator", `^[-:|\s]+$`, "", lines),

		newRule("escape", `\\([*#_|])`, "$1", noFlags),
		newRule("stray-asterisk", `^\s*\*\s*(.*?)\s*\*(?=\s|$)`, "$1", lines),

		newRule("blank-lines", `\n\s*\n`, "\n", noFlags),
	}
}
