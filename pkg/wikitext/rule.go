// Package wikitext converts parsed HTML trees into MediaWiki markup.
// It provides the per-element rule table, the renderer that applies it,
// and the preprocessing filter that runs before rendering.
package wikitext

import (
	"github.com/yaklabco/gowikitext/pkg/htmldom"
)

// Behavior classifies how an element is rendered.
type Behavior uint8

const (
	// BehaviorWrap emits start markup, rendered children, then end markup.
	BehaviorWrap Behavior = iota

	// BehaviorReplace emits a literal or computed string; children are
	// consumed by the replacement function, if any.
	BehaviorReplace

	// BehaviorPreserve re-emits the original tag with its allowed
	// attributes around the rendered children.
	BehaviorPreserve

	// BehaviorDelete drops the element and its subtree entirely.
	BehaviorDelete

	// BehaviorAlias defers to another tag's rule. Aliases are resolved
	// to their terminal rule when the table is built.
	BehaviorAlias
)

// Trim controls how a wrapped element's inner content is trimmed.
type Trim uint8

const (
	// TrimNone leaves inner content untouched.
	TrimNone Trim = iota

	// TrimSpace strips leading and trailing spaces and tabs, keeping
	// newlines produced by nested block markup.
	TrimSpace

	// TrimAll strips all leading and trailing whitespace.
	TrimAll
)

// RenderFunc computes markup for a node using the renderer's context.
type RenderFunc func(r *Renderer, n *htmldom.Node) string

// Rule describes how one HTML element maps to wiki markup.
// Rules are immutable once the table is built.
type Rule struct {
	// Behavior selects the rendering strategy.
	Behavior Behavior

	// Start and End are literal markup for BehaviorWrap. StartFunc and
	// EndFunc take precedence when set.
	Start     string
	End       string
	StartFunc RenderFunc
	EndFunc   RenderFunc

	// Replace is the literal output for BehaviorReplace. ReplaceFunc
	// takes precedence when set.
	Replace     string
	ReplaceFunc RenderFunc

	// Block elements are padded with blank lines in the output.
	Block bool

	// Trim is applied to inner content before Start/End are attached.
	Trim Trim

	// AllowedAttrs lists the attributes kept by BehaviorPreserve.
	AllowedAttrs []string

	// AliasFor names the target tag for BehaviorAlias.
	AliasFor string
}
