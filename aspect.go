package imagine

import (
	"regexp"
	"strings"
)

// DefaultAspectRatio is used when neither the prompt nor the caller
// supplies a usable ratio.
const DefaultAspectRatio = "1:1"

// supportedAspectRatios is the set the image endpoint accepts.
var supportedAspectRatios = map[string]bool{
	"1:1":  true,
	"3:4":  true,
	"4:3":  true,
	"9:16": true,
	"16:9": true,
}

// aspectMarkerRe matches the "Aspect Ratio: X" line the enhancement
// persona emits in its structured output.
var aspectMarkerRe = regexp.MustCompile(`(?i)aspect\s*ratio:\s*([0-9.]+\s*:\s*[0-9.]+)`)

// ResolveAspectRatio determines the ratio for an image request. An
// explicit "Aspect Ratio: X" marker inside prompt overrides requested.
// Unsupported ratios snap to the nearest supported one; a marker that
// cannot be snapped is ignored in favor of requested, and an unusable
// requested ratio falls back to DefaultAspectRatio.
func ResolveAspectRatio(prompt, requested string) string {
	if m := aspectMarkerRe.FindStringSubmatch(prompt); m != nil {
		marker := strings.ReplaceAll(m[1], " ", "")
		if r := SnapAspectRatio(marker); r != "" {
			return r
		}
	}
	if r := SnapAspectRatio(strings.TrimSpace(requested)); r != "" {
		return r
	}
	return DefaultAspectRatio
}

// SnapAspectRatio maps ratio onto the supported set. Supported ratios
// pass through unchanged; 4:5 and 2:3 snap to 3:4; anything containing
// 1.91 snaps to 16:9. Returns "" when the ratio cannot be snapped.
func SnapAspectRatio(ratio string) string {
	if supportedAspectRatios[ratio] {
		return ratio
	}
	switch ratio {
	case "4:5", "2:3":
		return "3:4"
	}
	if strings.Contains(ratio, "1.91") {
		return "16:9"
	}
	return ""
}
