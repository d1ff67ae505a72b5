package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gowikitext/pkg/htmldom"
)

func TestListItemStartNesting(t *testing.T) {
	// dl > dd > ol > li > ul > li, outer to inner.
	dl := htmldom.NewElement("dl")
	dd := htmldom.NewElement("dd")
	ol := htmldom.NewElement("ol")
	olItem := htmldom.NewElement("li")
	ul := htmldom.NewElement("ul")
	item := htmldom.NewElement("li")
	htmldom.AppendChild(dl, dd)
	htmldom.AppendChild(dd, ol)
	htmldom.AppendChild(ol, olItem)
	htmldom.AppendChild(olItem, ul)
	htmldom.AppendChild(ul, item)

	assert.Equal(t, "\n:#* ", listItemStart(nil, item))
	assert.Equal(t, "\n:# ", listItemStart(nil, olItem))
}

func TestListItemStartDefinitionTerm(t *testing.T) {
	dl := htmldom.NewElement("dl")
	dt := htmldom.NewElement("dt")
	dd := htmldom.NewElement("dd")
	htmldom.AppendChild(dl, dt)
	htmldom.AppendChild(dl, dd)

	assert.Equal(t, "\n; ", listItemStart(nil, dt))
	assert.Equal(t, "\n: ", listItemStart(nil, dd))
}

func TestListItemStartTermMarkerOnlyAtOwnList(t *testing.T) {
	// A dt nested below a second dl keeps ':' for the outer dl.
	outer := htmldom.NewElement("dl")
	outerDD := htmldom.NewElement("dd")
	inner := htmldom.NewElement("dl")
	dt := htmldom.NewElement("dt")
	htmldom.AppendChild(outer, outerDD)
	htmldom.AppendChild(outerDD, inner)
	htmldom.AppendChild(inner, dt)

	assert.Equal(t, "\n:; ", listItemStart(nil, dt))
}

func TestListItemStartDepthOne(t *testing.T) {
	ul := htmldom.NewElement("ul")
	li := htmldom.NewElement("li")
	htmldom.AppendChild(ul, li)

	assert.Equal(t, "\n* ", listItemStart(nil, li))
}
