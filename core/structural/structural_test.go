package structural

import (
	"testing"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectors(t *testing.T) {
	detectors := Detectors()
	require.Len(t, detectors, 8)
	names := make([]string, 0, len(detectors))
	for _, d := range detectors {
		names = append(names, d.Name)
		assert.NotNil(t, d.Run)
	}
	assert.Equal(t, []string{
		"contrast-analysis",
		"heading-structure",
		"keyboard-reachability",
		"image-alternatives",
		"form-labeling",
		"touch-targets",
		"landmark-consistency",
		"motion-safety",
	}, names)
}

func TestAnalyzeCanonicalOrder(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<p style="color: #cccccc">faint body copy text</p>
		<input type="text" name="q">
	</body></html>`)

	var ids []string
	for _, f := range Analyze(doc) {
		ids = append(ids, f.TestID)
	}
	assert.Equal(t, []string{
		"contrast-ratio",
		"page-has-h1",
		"form-label",
		"touch-target-size",
		"landmark-main",
	}, ids)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	doc := mustParse(t, `<html><body>
		<h2>No top heading</h2>
		<img src="a.png">
		<div onclick="x()">mouse only</div>
		<main><p>content</p></main>
	</body></html>`)

	first := Analyze(doc)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Analyze(doc))
	}
}

func TestRunIsolatedRecovers(t *testing.T) {
	det := Detector{
		Name: "exploding",
		Run: func(domdoc.Document) []schema.Finding {
			panic("boom")
		},
	}
	doc := mustParse(t, `<html><body><p>x</p></body></html>`)
	assert.Nil(t, runIsolated(det, doc))
}
