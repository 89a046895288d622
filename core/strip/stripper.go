// Package strip implements the Stripper interface.
// It turns Markdown into plain text by running a fixed, ordered list of
// pattern substitutions over the whole document. No tree is built; each
// rule sees the output of the one before it.
package strip

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// MarkdownStripper applies the rule pipeline. It is safe for concurrent use;
// compiled rules are never mutated after construction.
type MarkdownStripper struct {
	rules   []Rule
	timeout time.Duration
	logger  logrus.FieldLogger
}

// Option configures a MarkdownStripper.
type Option func(*MarkdownStripper)

// WithMatchTimeout bounds each rule to d per document. A rule that runs out
// of time is skipped and its input carried forward unchanged, so output may
// keep syntax that an unbounded run would remove. d <= 0 means no bound,
// which is the default.
func WithMatchTimeout(d time.Duration) Option {
	return func(s *MarkdownStripper) {
		s.timeout = d
	}
}

// New creates a MarkdownStripper with the default rules. A nil logger
// discards diagnostics.
func New(logger logrus.FieldLogger, opts ...Option) *MarkdownStripper {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	s := &MarkdownStripper{
		rules:  DefaultRules(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.timeout > 0 {
		for i, rule := range s.rules {
			s.rules[i] = rule.withTimeout(s.timeout)
		}
	}
	return s
}

// Strip removes Markdown syntax from the input and trims the result.
// Without a match timeout every rule runs to completion. With one, a rule
// that fails is skipped and its input carried forward unchanged.
func (s *MarkdownStripper) Strip(markdown string) string {
	text := markdown
	for _, rule := range s.rules {
		out, err := rule.apply(text)
		if err != nil {
			s.logSkipped(rule)
			continue
		}
		text = out
	}
	return strings.TrimSpace(text)
}

// logSkipped reports a rule that ran out of time, the only error regexp2
// returns from Replace. Its error text embeds the whole input, so only the
// rule and the bound are logged.
func (s *MarkdownStripper) logSkipped(rule Rule) {
	s.logger.WithFields(logrus.Fields{
		"rule":    rule.Name,
		"timeout": s.timeout.String(),
	}).Warn("Strip rule timed out, skipping")
}

var defaultStripper = New(nil)

// Strip runs the default stripper over markdown.
func Strip(markdown string) string {
	return defaultStripper.Strip(markdown)
}
