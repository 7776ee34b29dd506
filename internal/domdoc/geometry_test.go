package domdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxEstimation(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<img id="media" src="x.png">
		<img id="sized" src="y.png" width="64" height="48">
		<input id="check" type="checkbox">
		<input id="field" type="text">
		<button id="styled" style="width: 60px; height: 50px">Go</button>
		<a id="tiny" href="/x">x</a>
	</body></html>`)

	tests := []struct {
		name      string
		id        string
		width     float64
		height    float64
		exactOnly bool
	}{
		{name: "media default", id: "media", width: 300, height: 150, exactOnly: true},
		{name: "attribute dimensions", id: "sized", width: 64, height: 48, exactOnly: true},
		{name: "checkbox", id: "check", width: 16, height: 16, exactOnly: true},
		{name: "text input", id: "field", width: 180, height: 32, exactOnly: true},
		{name: "styled button", id: "styled", width: 60, height: 50, exactOnly: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := elementByID(t, doc, tt.id).Box()
			assert.InDelta(t, tt.width, box.Width, 0.01)
			assert.InDelta(t, tt.height, box.Height, 0.01)
		})
	}

	// Single-character links stay small but non-zero.
	tiny := elementByID(t, doc, "tiny").Box()
	assert.Greater(t, tiny.Width, 0.0)
	assert.Less(t, tiny.Height, 44.0)
}

func TestHiddenElementHasEmptyBox(t *testing.T) {
	doc := mustParse(t, `<html><body><div id="gone" hidden>text</div></body></html>`)
	box := elementByID(t, doc, "gone").Box()
	assert.Zero(t, box.Width)
	assert.Zero(t, box.Height)
}

func TestSelectorPaths(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<main id="content">
			<p>first</p>
			<p>second</p>
		</main>
		<div class="card extra"><span>deep</span></div>
	</body></html>`)

	paras := doc.ElementsByTag("p")
	require.Len(t, paras, 2)
	assert.Equal(t, "#content > p:nth-of-type(1)", paras[0].Selector())
	assert.Equal(t, "#content > p:nth-of-type(2)", paras[1].Selector())

	spans := doc.ElementsByTag("span")
	require.Len(t, spans, 1)
	assert.Equal(t, "body > div.card > span", spans[0].Selector())
}
