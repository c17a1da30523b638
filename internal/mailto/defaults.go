package mailto

// DefaultRecipient receives every call-to-action email.
const DefaultRecipient = "tom.welsh@theaiaa.com"

// DefaultSubject is the fixed subject line.
const DefaultSubject = "🚀 Ready to 10x Your Development Team with AI"

// DefaultBody is the fixed message body.
const DefaultBody = `Hi Tom,

I just witnessed the future of software development in your presentation.

What I need to know:
• How quickly can we implement AI-driven development?
• What's the investment required?
• Can you help us get started?

I'm ready to transform our development process.

Best regards`

// SlideSubject mentions the call to action that was clicked.
const SlideSubject = `🚀 {{.CTA}}`

// SlideBody adds the slide the viewer was on to the fixed body.
const SlideBody = `Hi Tom,

I just witnessed the future of software development in your presentation.
Slide {{.Position}} of {{.Total}}, "{{.Title}}", is where you got me: {{.CTA}}.

What I need to know:
• How quickly can we implement AI-driven development?
• What's the investment required?
• Can you help us get started?

I'm ready to transform our development process.

Best regards`
