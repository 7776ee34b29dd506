package structural

import (
	"testing"

	"github.com/pagelens/pagelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckImages(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		offenders int
	}{
		{
			name:      "descriptive alt passes",
			src:       `<html><body><img src="chart.png" alt="Quarterly revenue, up 12 percent"></body></html>`,
			offenders: 0,
		},
		{
			name:      "missing alt",
			src:       `<html><body><img src="chart.png"></body></html>`,
			offenders: 1,
		},
		{
			name:      "empty alt marks decorative",
			src:       `<html><body><img src="divider.png" alt=""></body></html>`,
			offenders: 0,
		},
		{
			name:      "role presentation is decorative",
			src:       `<html><body><img src="bg.png" role="presentation"></body></html>`,
			offenders: 0,
		},
		{
			name:      "aria-hidden is decorative",
			src:       `<html><body><svg aria-hidden="true"></svg></body></html>`,
			offenders: 0,
		},
		{
			name:      "generic alt word",
			src:       `<html><body><img src="a.png" alt="image"></body></html>`,
			offenders: 1,
		},
		{
			name:      "camera filename alt",
			src:       `<html><body><img src="a.png" alt="IMG_1234"></body></html>`,
			offenders: 1,
		},
		{
			name:      "alt repeats the filename",
			src:       `<html><body><img src="/photos/sunset.jpg" alt="sunset.jpg"></body></html>`,
			offenders: 1,
		},
		{
			name:      "svg with title child passes",
			src:       `<html><body><svg><title>Download icon</title></svg></body></html>`,
			offenders: 0,
		},
		{
			name:      "svg without any alternative",
			src:       `<html><body><svg></svg></body></html>`,
			offenders: 1,
		},
		{
			name:      "role img with aria-label passes",
			src:       `<html><body><div role="img" aria-label="Star rating: four of five"></div></body></html>`,
			offenders: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := CheckImages(mustParse(t, tt.src))
			if tt.offenders == 0 {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			f := findings[0]
			assert.Equal(t, "image-alt", f.TestID)
			assert.Equal(t, schema.SeveritySerious, f.Severity)
			assert.Equal(t, schema.CategoryImages, f.Category)
			assert.Len(t, f.Elements, tt.offenders)
		})
	}
}

func TestIsLowInformationAlt(t *testing.T) {
	tests := []struct {
		name string
		alt  string
		src  string
		low  bool
	}{
		{name: "descriptive", alt: "Team photo at the 2025 offsite", low: false},
		{name: "too short", alt: "ab", low: true},
		{name: "generic word", alt: "photo", low: true},
		{name: "camera filename", alt: "DSC_0042.jpg", low: true},
		{name: "matches source basename", alt: "hero.png", src: "/img/hero.png", low: true},
		{name: "matches source stem", alt: "hero", src: "/img/hero.png", low: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.low, isLowInformationAlt(tt.alt, tt.src))
		})
	}
}
