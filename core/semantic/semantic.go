// Package semantic implements the semantic accessibility analyzer: five
// detection algorithms over extracted text and interaction patterns.
// Detectors are pure functions of the document and are isolated by the
// runner so a faulty detector degrades to an empty category.
package semantic

import (
	"sync"

	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// Detector is one semantic detection algorithm.
type Detector struct {
	Name string
	Run  func(doc domdoc.Document) []schema.SemanticFinding
}

// Detectors returns the five semantic detection algorithms in their
// canonical order.
func Detectors() []Detector {
	return []Detector{
		{Name: "readability", Run: CheckReadability},
		{Name: "navigation-semantics", Run: CheckLinkText},
		{Name: "form-cognitive-load", Run: CheckFormLoad},
		{Name: "jargon-detection", Run: CheckJargon},
		{Name: "page-flow", Run: CheckPageFlow},
	}
}

// Analyze runs every semantic detector over the immutable document
// snapshot, fanning out concurrently and concatenating results in
// canonical order.
func Analyze(doc domdoc.Document) []schema.SemanticFinding {
	detectors := Detectors()
	results := make([][]schema.SemanticFinding, len(detectors))

	var wg sync.WaitGroup
	for i, det := range detectors {
		wg.Add(1)
		go func(i int, det Detector) {
			defer wg.Done()
			results[i] = runIsolated(det, doc)
		}(i, det)
	}
	wg.Wait()

	var findings []schema.SemanticFinding
	for _, r := range results {
		findings = append(findings, r...)
	}
	return findings
}

func runIsolated(det Detector, doc domdoc.Document) (findings []schema.SemanticFinding) {
	defer func() {
		if r := recover(); r != nil {
			contract.LogWarnf("semantic detector %s failed: %v", det.Name, r)
			findings = nil
		}
	}()
	return det.Run(doc)
}
