package structural

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/pagelens/pagelens/internal/domdoc"
	"github.com/pagelens/pagelens/schema"
)

// Low-information alt text: generic words and sequential camera filenames.
var (
	genericAltWords = map[string]struct{}{
		"image":    {},
		"img":      {},
		"photo":    {},
		"picture":  {},
		"pic":      {},
		"icon":     {},
		"graphic":  {},
		"logo":     {},
		"untitled": {},
	}
	cameraFilenameRe = regexp.MustCompile(`(?i)^(?:img|dsc|dscn|dcim|photo|image|screenshot)[-_ ]?\d+(?:\.\w{2,4})?$`)
)

// CheckImages verifies that every image-like element carries a meaningful
// text alternative unless explicitly marked decorative. Failures
// aggregate into one serious finding listing all offending elements.
func CheckImages(doc domdoc.Document) []schema.Finding {
	var offenders []schema.ElementRef
	for _, el := range doc.Elements() {
		if !isImageLike(el) || !el.Visible() {
			continue
		}
		if isDecorative(el) {
			continue
		}
		alt, ok := textAlternative(doc, el)
		switch {
		case !ok || alt == "":
			offenders = append(offenders, schema.ElementRef{
				Selector:   el.Selector(),
				Snapshot:   el.Snapshot(),
				IssueText:  "No text alternative (alt, aria-label or aria-labelledby)",
				Suggestion: "Describe the image's purpose, or mark it decorative with alt=\"\"",
			})
		case isLowInformationAlt(alt, el.Attr("src")):
			offenders = append(offenders, schema.ElementRef{
				Selector:   el.Selector(),
				Snapshot:   el.Snapshot(),
				IssueText:  fmt.Sprintf("Alt text %q conveys no information", alt),
				Suggestion: "Replace the placeholder with a description of what the image shows",
			})
		}
	}
	if len(offenders) == 0 {
		return nil
	}
	return []schema.Finding{{
		TestID:        "image-alt",
		WCAGLevel:     schema.LevelA,
		Category:      schema.CategoryImages,
		Severity:      schema.SeveritySerious,
		Title:         "Images without meaningful alternatives",
		Description:   "Images need text alternatives so their content is available to screen reader users.",
		WCAGCriterion: "1.1.1 Non-text Content",
		Elements:      offenders,
		Score:         45,
		Algorithm:     "image-alternatives",
		AutoFixable:   true,
	}}
}

func isImageLike(el domdoc.Element) bool {
	switch el.Tag() {
	case "img", "svg":
		return true
	}
	return strings.EqualFold(el.Attr("role"), "img")
}

// isDecorative honors the explicit opt-outs: presentation roles, empty
// alt on img, and aria-hidden.
func isDecorative(el domdoc.Element) bool {
	role := strings.ToLower(el.Attr("role"))
	if role == "presentation" || role == "none" {
		return true
	}
	if el.Tag() == "img" && el.HasAttr("alt") && strings.TrimSpace(el.Attr("alt")) == "" {
		return true
	}
	return strings.EqualFold(el.Attr("aria-hidden"), "true")
}

// textAlternative resolves the alternative text for an image-like element.
func textAlternative(doc domdoc.Document, el domdoc.Element) (string, bool) {
	if el.Tag() == "img" && el.HasAttr("alt") {
		return strings.TrimSpace(el.Attr("alt")), true
	}
	if label := strings.TrimSpace(el.Attr("aria-label")); label != "" {
		return label, true
	}
	if el.HasAttr("aria-labelledby") {
		if name := accessibleName(doc, el); name != "" {
			return name, true
		}
	}
	if el.Tag() == "svg" {
		for _, c := range el.Children() {
			if c.Tag() == "title" && c.Text() != "" {
				return c.Text(), true
			}
		}
	}
	return "", false
}

// isLowInformationAlt flags alt text that matches generic words, camera
// filename patterns, the image's own filename, or is shorter than three
// characters.
func isLowInformationAlt(alt, src string) bool {
	normalized := strings.ToLower(strings.TrimSpace(alt))
	if len(normalized) < 3 {
		return true
	}
	if _, generic := genericAltWords[normalized]; generic {
		return true
	}
	if cameraFilenameRe.MatchString(normalized) {
		return true
	}
	if src != "" {
		base := strings.ToLower(path.Base(src))
		stem := strings.TrimSuffix(base, path.Ext(base))
		if normalized == base || (stem != "" && normalized == stem) {
			return true
		}
	}
	return false
}
