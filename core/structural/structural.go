package structural

import (
	"sync"

	"github.com/pagelens/pagelens/internal/contract"
	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// Detector is one structural detection algorithm: a pure function of the
// document tree returning an owned finding list.
type Detector struct {
	Name string
	Run  func(doc domdoc.Document) []schema.Finding
}

// Detectors returns the eight structural detection algorithms in their
// canonical order.
func Detectors() []Detector {
	return []Detector{
		{Name: "contrast-analysis", Run: CheckContrast},
		{Name: "heading-structure", Run: CheckHeadings},
		{Name: "keyboard-reachability", Run: CheckKeyboard},
		{Name: "image-alternatives", Run: CheckImages},
		{Name: "form-labeling", Run: CheckForms},
		{Name: "touch-targets", Run: CheckTouchTargets},
		{Name: "landmark-consistency", Run: CheckLandmarks},
		{Name: "motion-safety", Run: CheckMotion},
	}
}

// Analyze runs every detector over the document and concatenates their
// findings in canonical detector order. The document snapshot is
// immutable, so detectors fan out concurrently; results are slotted by
// index to keep the output deterministic. A panicking detector degrades
// to an empty category.
func Analyze(doc domdoc.Document) []schema.Finding {
	detectors := Detectors()
	results := make([][]schema.Finding, len(detectors))

	var wg sync.WaitGroup
	for i, det := range detectors {
		wg.Add(1)
		go func(i int, det Detector) {
			defer wg.Done()
			results[i] = runIsolated(det, doc)
		}(i, det)
	}
	wg.Wait()

	var findings []schema.Finding
	for _, r := range results {
		findings = append(findings, r...)
	}
	return findings
}

// runIsolated shields the scan from a faulty detector.
func runIsolated(det Detector, doc domdoc.Document) (findings []schema.Finding) {
	defer func() {
		if r := recover(); r != nil {
			contract.LogWarnf("structural detector %s failed: %v", det.Name, r)
			findings = nil
		}
	}()
	return det.Run(doc)
}
