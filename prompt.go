package imagine

import (
	"fmt"
	"strings"
)

// EnhancerSystemInstruction is the persona sent with every enhancement
// request. It asks the model for a fully expanded, corrected image
// description in a fixed structured layout; the response is still
// treated as opaque text downstream.
const EnhancerSystemInstruction = `You are an expert image-generation prompt engineer. You combine the craft
of professional photography, cinematic lighting, digital art, 3D
rendering, and graphic design.

Your mission: understand ANY prompt, even broken or misspelled, and
produce the perfect professionally enhanced image prompt.

Rules:
- Detect the exact intent, theme, tone, and audience behind the input.
- Correct all spelling and grammar; the output must be typo-free English.
- Choose a background, color palette, and lighting that match the
  subject, and keep the subject as the clear focal point.
- Follow composition principles: rule of thirds, visual hierarchy,
  depth, clean layout.
- Keep everything brand-friendly and safe.

Always answer in exactly this layout:

[ENHANCED IMAGE PROMPT]
(Write the fully expanded, corrected, professional image description.)

- Model Style:
- Art Style:
- Camera Setup:
- Lighting:
- Background:
- Composition:
- Details & Textures:
- Mood/Tone:
- Aspect Ratio:
- Quality:`

// EnhanceInstruction builds the per-request instruction for the
// enhancement endpoint. It names the style when one is selected, the
// target aspect ratio when given, and the number of attached reference
// images.
func EnhanceInstruction(req EnhanceRequest) string {
	var b strings.Builder
	if req.Style != "" && req.Style != "None" {
		fmt.Fprintf(&b, "Create an enhanced image generation prompt for: %q with the style: %q.", req.Prompt, req.Style)
	} else {
		fmt.Fprintf(&b, "Create an enhanced image generation prompt for: %q.", req.Prompt)
	}
	if req.AspectRatio != "" {
		fmt.Fprintf(&b, " The target aspect ratio is %s.", req.AspectRatio)
	}
	if n := len(req.References); n > 0 {
		noun := "images are"
		if n == 1 {
			noun = "image is"
		}
		fmt.Fprintf(&b, " %d reference %s attached; incorporate their subject and visual style.", n, noun)
	}
	return b.String()
}

// EnhanceTemperature is the sampling temperature for enhancement calls.
// Low-to-moderate to bias toward consistent phrasing while still
// allowing creative elaboration.
const EnhanceTemperature = 0.7
