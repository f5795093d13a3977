package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/formforge/formforge-server/internal/logger"
	"github.com/formforge/formforge-server/internal/model"
)

// Completer produces a chat completion for a system/user prompt pair.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type promptPreset struct {
	id      int
	persona string
	prompt  string
}

// Generative assembles prompts from persona and designer presets and asks the
// completion backend for a single-line React component.
type Generative struct {
	completer Completer
	logger    *logger.Logger

	audiences []promptPreset
	designers []promptPreset
}

func NewGenerative(completer Completer, logger *logger.Logger) *Generative {
	return &Generative{
		completer: completer,
		logger:    logger,
		audiences: []promptPreset{
			{
				id:      1,
				persona: "Event Organizer",
				prompt:  "Event organizers looking to create a user-friendly form for event registration.",
			},
			{
				id:      2,
				persona: "Personal Coach",
				prompt:  "Personal coaches building introspective intake forms for their clients.",
			},
			{
				id:      3,
				persona: "HR Manager",
				prompt:  "HR managers creating onboarding and employee insight forms with complex level of details.",
			},
		},
		designers: []promptPreset{
			{
				id:      1,
				persona: "Minimalist Designer",
				prompt: `I prefer a clean, modern, minimalist design with generous white space, subtle typography, and a neutral color palette (e.g., black, white, light gray).
Content should be direct, well-organized, and free of unnecessary visual embellishments or gradients.
Emphasize clarity, simplicity, and hierarchy of information through typographic scale and spacing.
Action buttons should be bold and high-contrast but remain minimal in styling, with flat colors and no shadows.
Icons are optional; if used, they should be simple, monochromatic, and line-based to maintain minimalism.
Avoid borders unless necessary for separation; rely on spacing and alignment to guide the user.`,
			},
			{
				id:      2,
				persona: "Playful & Creative Designer",
				prompt: `I want a fun, colorful, and lively UI that feels energetic and modern, targeted for young adults or creative professionals, not for children.
Use rounded corners, soft shadows, and vibrant accent colors to make the interface approachable and dynamic, while avoiding overly cartoonish or exaggerated elements.
Include tasteful illustrative icons or small decorative graphics alongside feature lists to convey friendliness without being childish.
Typography can be slightly expressive (e.g., a geometric or rounded sans-serif), but maintain professionalism and legibility.
Buttons should use bold, saturated colors with subtle hover animations (like color shifts or scale) to add personality without being playful in a juvenile sense.
Backgrounds may include soft gradients or subtle patterns for depth, but should avoid overly bright or primary color palettes typical of children's designs.`,
			},
			{
				id:      3,
				persona: "Professional & Corporate Designer",
				prompt: `I prefer a formal, polished, enterprise-level design with structured grid layouts, sharp lines, and a professional color palette (e.g., white, dark gray, navy, with subtle accent colors like blue or green).
Icons should be minimal, monochromatic, and professional, aligning with modern business software aesthetics.
Use clear, legible typography with consistent font weights (e.g., medium for body, bold for headings) to convey trust, reliability, and authority.
Buttons should have clear outlines or solid fills with subtle hover states, avoiding flashy animations.
Layouts should prioritize information hierarchy with strong alignment and spacing, using dividers or subtle background shades for section separation.
Avoid decorative elements that don't serve a functional or communicative purpose.`,
			},
		},
	}
}

var techVariations = []string{
	`Use React and inline CSS for styling.
Use functional components and hooks.
Focus on responsive design principles.
Ensure compatibility with modern browsers and accessibility standards.`,
	`Use React with Material UI components.
Apply modern hooks pattern for state management.
Ensure components are accessible and follow WCAG guidelines.
Optimize for performance and reusability.`,
	`Use React functional components.
Implement clean separation of markup and logic.
Use CSS-in-JS for styling with MUI.
Ensure modularity and scalability of components.`,
}

var uiVariations = []string{
	`Create a form to get to know the user.
The form should always include the following fields:
- Full Name (text input)
- Email Address (email input)
- Phone Number (tel input)
Add 3-5 additional fields based on the user target.
Include tooltips or helper text for better user guidance.`,
	`Design a user profile form that captures essential information.
Required fields include:
- Name (text input)
- Contact email (email input)
- Mobile number (tel input)
Include validation, helpful error messages, and a progress indicator for multi-step forms.`,
	`Build an information collection form with:
- User's full name (text input)
- Email for communications (email input)
- Contact number (tel input)
Add dynamic fields based on user preferences.
Ensure a clear submission flow with a confirmation message.`,
}

var designVariations = []string{
	`Use a cohesive color scheme with at least 3 coordinating colors.
Buttons should have distinct hover states with animations.
Maintain consistent spacing between elements.
Use subtle gradients or shadows to add depth to the design.`,
	`Apply visual hierarchy through size, color, and spacing.
Form fields should include clear labels, helper text, and icons where appropriate.
Use smooth transitions and animations for interactive elements.
Keep the interface clean, focused, and visually appealing.`,
	`Implement thoughtful spacing for improved readability.
Use colors strategically to guide attention and create contrast.
Make sure error states are clearly visible with detailed messages.
Form layout should guide the user through completion steps with visual cues.`,
}

var (
	approachChoices = []string{"minimalist", "playful", "professional", "modern", "artistic"}
	focusChoices    = []string{"usability", "visual appeal", "efficiency", "clarity", "engagement"}
	featureChoices  = []string{"subtle animations", "thoughtful microcopy", "intuitive validation", "visual feedback", "progressive disclosure"}
	advancedChoices = []string{"gradient backgrounds", "micro-interactions", "custom icons", "dynamic field validation", "multi-step progress indicators"}
)

const defaultTargetAudience = `some target audience examples:
- Event organizers looking to create a user-friendly form for event registration.
- Personal coaches building introspective intake forms for their clients.`

func pick(options []string) string {
	return options[rand.Intn(len(options))]
}

// systemMessage assembles the full system prompt. Empty parameters are filled
// with random variations to keep successive generations distinct.
func (g *Generative) systemMessage(targetAudience, designGuidelines string) string {
	techRequirements := pick(techVariations)
	uiRequirements := pick(uiVariations)

	if targetAudience == "" {
		targetAudience = defaultTargetAudience
	}
	if designGuidelines == "" {
		designGuidelines = pick(designVariations)
	}

	randomizationPrompt := fmt.Sprintf(`Make this implementation unique by:
- Using a %s approach
- Focusing on %s
- Including %s
- Each time you generate, create a different layout and component arrangement
- Incorporate advanced design elements like %s`,
		pick(approachChoices), pick(focusChoices), pick(featureChoices), pick(advancedChoices))

	return fmt.Sprintf(`You are a React component generator. You will receive a user preference and generate a React component based on it.
Follow these instructions carefully:
Make sure its a valid React component.
Output a single, complete React component as a valid JSX expression.
Do not include import statements, export statements, or variable declarations.
Do not add code comments, backslashes, or line breaks (\n).
Do not wrap the output in markdown code blocks or syntax highlighting tags.
Return only the JSX, written in a single line of text.
The code must compile without errors in React and work inside react-live.
Do not include const or function keywords, only output the JSX expression directly.
Do not write inline javascript code inside the JSX.
Do not use any external libraries or frameworks except for MUI.
If needed, Use MUI components, prepend MUI.ComponentName to the component name. Example: MUI.Button, MUI.TextField.
Make sure not to repeat MUI.MUI.ComponentName. Example: MUI.MUI.Button, MUI.MUI.TextField.
If needed, use MUI icons, choose only from this list with exact same module prefix: ICONS.Home, ICONS.Add, ICONS.Delete, ICONS.Search, ICONS.Menu, ICONS.Settings, ICONS.Person, ICONS.Star, ICONS.Edit, ICONS.ArrowBack
Do not use styled components
Return only the JSX, written in a single line of text.
Do not include any other text or explanation.
Do not include any other function outside the component.

Technical requirements:
%s

UI Component requirements:
%s
- Add 4-10 additional fields based on the user target.

Target audience:
%s

Design guidelines:
use the following design guidelines as a base:
%s

%s`,
		techRequirements, uiRequirements, targetAudience, designGuidelines, randomizationPrompt)
}

// presetAt resolves a 1-based preset id, falling back to the first preset for
// out-of-range ids.
func presetAt(presets []promptPreset, id int) promptPreset {
	if id >= 1 && id <= len(presets) {
		return presets[id-1]
	}
	return presets[0]
}

// BuildComponent selects the persona and designer presets, assembles the
// prompts, and returns the cleaned completion together with the prompt that
// produced it.
func (g *Generative) BuildComponent(ctx context.Context, view model.GenerativeCreate) (model.GenerativeDetail, error) {
	g.logger.Debug("Generative service: building component",
		"persona_id", view.PersonaID,
		"designer_id", view.DesignerID)

	audience := presetAt(g.audiences, view.PersonaID)
	designer := presetAt(g.designers, view.DesignerID)

	systemPrompt := g.systemMessage(
		fmt.Sprintf("The target audience is: %s", audience.prompt),
		designer.prompt,
	)

	completion, err := g.completer.Complete(ctx, systemPrompt, designer.prompt)
	if err != nil {
		g.logger.Error("Generative service: completion failed",
			"error", err.Error())
		return model.GenerativeDetail{}, fmt.Errorf("failed to complete prompt: %w", err)
	}

	cleaned := strings.NewReplacer(`\'`, `'`, `\"`, `"`).Replace(completion)

	return model.GenerativeDetail{
		UserPreferences: view.UserPreferences,
		RawComponent:    cleaned,
		PersonaID:       view.PersonaID,
		DesignerID:      view.DesignerID,
		GeneratedPrompt: systemPrompt,
	}, nil
}
