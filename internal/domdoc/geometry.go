package domdoc

import (
	"fmt"
	"strings"
)

// Default box sizes for elements with no explicit dimensions. A static
// adapter cannot lay the page out, so these are deterministic estimates
// tuned to typical user-agent rendering.
const (
	defaultControlWidth  = 180
	defaultControlHeight = 32
	defaultCheckboxSize  = 16
	defaultMediaWidth    = 300
	defaultMediaHeight   = 150
	charWidthFactor      = 0.55
	textPadding          = 16
	lineHeightFactor     = 1.5
)

// Box estimates the rendered bounding geometry: explicit style first,
// then width/height attributes, then a per-tag heuristic.
func (e *staticElement) Box() Box {
	e.mu.Lock()
	cached := e.boxCache
	e.mu.Unlock()
	if cached != nil {
		return *cached
	}

	box := e.computeBox()

	e.mu.Lock()
	e.boxCache = &box
	e.mu.Unlock()
	return box
}

func (e *staticElement) computeBox() Box {
	if !e.Visible() {
		return Box{}
	}

	width := styleDimension(e, "width")
	height := styleDimension(e, "height")
	if width == 0 {
		width = attrDimension(e, "width")
	}
	if height == 0 {
		height = attrDimension(e, "height")
	}
	if width > 0 && height > 0 {
		return Box{Width: width, Height: height}
	}

	est := e.estimateBox()
	if width == 0 {
		width = est.Width
	}
	if height == 0 {
		height = est.Height
	}
	return Box{Width: width, Height: height}
}

func (e *staticElement) estimateBox() Box {
	fontSize := FontSizePx(e)
	switch e.tag {
	case "img", "svg", "video", "canvas", "iframe", "embed", "object":
		return Box{Width: defaultMediaWidth, Height: defaultMediaHeight}
	case "input":
		switch strings.ToLower(e.Attr("type")) {
		case "checkbox", "radio":
			return Box{Width: defaultCheckboxSize, Height: defaultCheckboxSize}
		default:
			return Box{Width: defaultControlWidth, Height: defaultControlHeight}
		}
	case "select", "textarea":
		return Box{Width: defaultControlWidth, Height: defaultControlHeight}
	}
	// Text-bearing elements scale with their content.
	text := e.Text()
	width := charWidthFactor*fontSize*float64(len(text)) + textPadding
	if width > 800 {
		width = 800
	}
	height := fontSize * lineHeightFactor
	if e.tag == "button" || e.Attr("role") == "button" {
		height += 8
		if width < 48 {
			width = 48
		}
	}
	return Box{Width: width, Height: height}
}

func styleDimension(e *staticElement, prop string) float64 {
	v := e.Style(prop)
	if v == "" || !strings.HasSuffix(strings.ToLower(v), "px") {
		return 0
	}
	return parsePx(v, 0)
}

func attrDimension(e *staticElement, name string) float64 {
	v := strings.TrimSpace(e.Attr(name))
	if v == "" {
		return 0
	}
	return parseFloat(strings.TrimSuffix(v, "px"), 0)
}

// Selector builds a stable CSS-style path for the element, anchored at
// the nearest ancestor with an id when one exists.
func (e *staticElement) Selector() string {
	e.mu.Lock()
	cached := e.selCache
	e.mu.Unlock()
	if cached != "" {
		return cached
	}

	var segments []string
	for cur := e; cur != nil; cur = cur.parent {
		if id := cur.Attr("id"); id != "" {
			segments = append([]string{"#" + id}, segments...)
			break
		}
		segments = append([]string{cur.pathSegment()}, segments...)
		if cur.tag == "body" {
			break
		}
	}
	sel := strings.Join(segments, " > ")

	e.mu.Lock()
	e.selCache = sel
	e.mu.Unlock()
	return sel
}

// pathSegment returns the element's own selector segment, disambiguated
// with :nth-of-type when siblings share the tag.
func (e *staticElement) pathSegment() string {
	seg := e.tag
	if cls := strings.Fields(e.Attr("class")); len(cls) > 0 {
		seg += "." + cls[0]
	}
	if e.parent == nil {
		return seg
	}
	sameTag := 0
	position := 0
	for _, sib := range e.parent.children {
		if sib.tag == e.tag {
			sameTag++
			if sib == e {
				position = sameTag
			}
		}
	}
	if sameTag > 1 {
		seg += fmt.Sprintf(":nth-of-type(%d)", position)
	}
	return seg
}
