package wikitext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrRuleConfig indicates a defect in the rule table itself: an alias
// pointing at an unknown tag, or an alias cycle. It is detected when the
// table is built, before any traversal starts.
var ErrRuleConfig = errors.New("rule table misconfigured")

// Options fixes per-session conversion behavior. The options are applied
// once while building the table and never change afterwards.
type Options struct {
	// PreserveBold emits <b> tags verbatim instead of ''' markup.
	PreserveBold bool

	// PreserveItalic emits <i> tags verbatim instead of '' markup.
	PreserveItalic bool

	// DetectCodeLanguage renders pre blocks with detected languages as
	// <syntaxhighlight> instead of space-indented text.
	DetectCodeLanguage bool
}

// Table maps lowercase tag names to their terminal rendering rules.
// A Table is immutable after NewTable returns and is safe to share
// between renderers.
type Table struct {
	rules map[string]*Rule
	opts  Options
}

// Tags without a wiki markup equivalent that MediaWiki renders natively;
// they are emitted verbatim with the common attribute allow-list.
//
//nolint:gochecknoglobals // Read-only lookup table.
var preservedTags = []string{
	"center", "cite", "code", "var", "sup", "sub", "tt", "big", "small",
	"strike", "s", "u", "del", "ins", "ruby", "rb", "rt", "rp",
	"blockquote",
}

// Tags with no content meaningful to the output document.
//
//nolint:gochecknoglobals // Read-only lookup table.
var strippedTags = []string{
	"head", "title", "script", "style", "meta", "link", "object",
}

// NewTable builds the rule table for one conversion session.
// It returns an error wrapping ErrRuleConfig if an alias rule does not
// resolve to a terminal rule.
func NewTable(opts Options) (*Table, error) {
	rules := map[string]*Rule{
		"p":   {Behavior: BehaviorWrap, Block: true, Trim: TrimAll},
		"div": {Behavior: BehaviorWrap, Block: true, Trim: TrimAll},

		"hr": {Behavior: BehaviorReplace, Replace: "----", Block: true},
		"br": {Behavior: BehaviorReplace, Replace: "<br />"},

		"b":      {Behavior: BehaviorWrap, Start: "'''", End: "'''", Trim: TrimSpace},
		"strong": {Behavior: BehaviorAlias, AliasFor: "b"},
		"i":      {Behavior: BehaviorWrap, Start: "''", End: "''", Trim: TrimSpace},
		"em":     {Behavior: BehaviorAlias, AliasFor: "i"},

		"ul": {Behavior: BehaviorWrap},
		"ol": {Behavior: BehaviorWrap},
		"dl": {Behavior: BehaviorWrap},
		"li": {Behavior: BehaviorWrap, StartFunc: listItemStart, Trim: TrimSpace},
		"dt": {Behavior: BehaviorWrap, StartFunc: listItemStart, Trim: TrimSpace},
		"dd": {Behavior: BehaviorWrap, StartFunc: listItemStart, Trim: TrimSpace},

		"a":   {Behavior: BehaviorReplace, ReplaceFunc: linkRepl},
		"img": {Behavior: BehaviorReplace, ReplaceFunc: imageRepl},

		"pre": {Behavior: BehaviorReplace, ReplaceFunc: preRepl, Block: true},

		"table":   {Behavior: BehaviorWrap, StartFunc: tableStart, End: "\n|}", Block: true},
		"caption": {Behavior: BehaviorWrap, StartFunc: captionStart, Trim: TrimSpace},
		"tr":      {Behavior: BehaviorWrap, StartFunc: tableRowStart},
		"td":      {Behavior: BehaviorWrap, StartFunc: tableCellStart, Trim: TrimAll},
		"th":      {Behavior: BehaviorAlias, AliasFor: "td"},

		"font": {Behavior: BehaviorPreserve, AllowedAttrs: fontAttrs},
	}

	// Generated heading rules: level N uses N '=' markers.
	for level := 1; level <= 6; level++ {
		marker := strings.Repeat("=", level)
		rules["h"+strconv.Itoa(level)] = &Rule{
			Behavior: BehaviorWrap,
			Start:    marker + " ",
			End:      " " + marker,
			Block:    true,
			Trim:     TrimSpace,
		}
	}

	for _, tag := range preservedTags {
		rules[tag] = &Rule{Behavior: BehaviorPreserve, AllowedAttrs: commonAttrs}
	}

	for _, tag := range strippedTags {
		rules[tag] = &Rule{Behavior: BehaviorDelete}
	}

	// Session overrides. Applied before alias resolution so strong/em
	// follow the overridden b/i rules.
	if opts.PreserveBold {
		rules["b"] = &Rule{Behavior: BehaviorPreserve, AllowedAttrs: commonAttrs}
	}
	if opts.PreserveItalic {
		rules["i"] = &Rule{Behavior: BehaviorPreserve, AllowedAttrs: commonAttrs}
	}

	if err := resolveAliases(rules); err != nil {
		return nil, err
	}

	return &Table{rules: rules, opts: opts}, nil
}

// Lookup returns the terminal rule for a tag. The second return is false
// for tags the table does not know, which render as their children only.
func (t *Table) Lookup(tag string) (*Rule, bool) {
	rule, ok := t.rules[tag]
	return rule, ok
}

// Options returns the session options the table was built with.
func (t *Table) Options() Options {
	return t.opts
}

// resolveAliases replaces every alias entry with the terminal rule it
// points at. Unknown targets and cycles are configuration defects.
func resolveAliases(rules map[string]*Rule) error {
	for tag, rule := range rules {
		if rule.Behavior != BehaviorAlias {
			continue
		}

		seen := map[string]bool{tag: true}
		current := rule
		for current.Behavior == BehaviorAlias {
			target := current.AliasFor
			if seen[target] {
				return fmt.Errorf("%w: alias cycle at %q", ErrRuleConfig, target)
			}
			seen[target] = true

			next, ok := rules[target]
			if !ok {
				return fmt.Errorf("%w: alias %q points at unknown tag %q", ErrRuleConfig, tag, target)
			}
			current = next
		}
		rules[tag] = current
	}
	return nil
}
