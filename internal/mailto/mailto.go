// Package mailto builds pre-filled email compose requests.
package mailto

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"text/template"

	"pitchdeck/internal/deck"
)

// Message is an email compose request.
type Message struct {
	To      string
	Subject string
	Body    string
}

// URL renders the message as a mailto: URL. Spaces in subject and body
// become %20, never '+'. Escaping is stricter than encodeURIComponent (it
// also escapes ' ! ( ) *) but decodes to the same text.
func (m Message) URL() string {
	var params []string
	if m.Subject != "" {
		params = append(params, "subject="+escape(m.Subject))
	}
	if m.Body != "" {
		params = append(params, "body="+escape(m.Body))
	}

	u := "mailto:" + m.To
	if len(params) > 0 {
		u += "?" + strings.Join(params, "&")
	}
	return u
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Data is what subject and body templates can reference.
type Data struct {
	Deck     string
	Title    string
	Subtitle string
	CTA      string
	Position int
	Total    int
}

// Composer turns the active slide into a Message.
type Composer struct {
	to      string
	subject *template.Template
	body    *template.Template
}

// NewComposer parses the subject and body templates. Plain text without
// template actions yields the same message for every slide.
func NewComposer(to, subject, body string) (*Composer, error) {
	if strings.TrimSpace(to) == "" {
		return nil, fmt.Errorf("recipient is required")
	}

	st, err := template.New("subject").Option("missingkey=error").Parse(subject)
	if err != nil {
		return nil, fmt.Errorf("parsing subject template: %w", err)
	}
	bt, err := template.New("body").Option("missingkey=error").Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing body template: %w", err)
	}

	return &Composer{to: to, subject: st, body: bt}, nil
}

// Compose builds the message for the slide at position index of d.
func (c *Composer) Compose(d *deck.Deck, index int) (Message, error) {
	slide := d.At(index)
	data := Data{
		Deck:     d.Title(),
		Title:    slide.Title,
		Subtitle: slide.Subtitle,
		CTA:      slide.CTA,
		Position: index + 1,
		Total:    d.Len(),
	}

	var subject, body bytes.Buffer
	if err := c.subject.Execute(&subject, data); err != nil {
		return Message{}, fmt.Errorf("rendering subject: %w", err)
	}
	if err := c.body.Execute(&body, data); err != nil {
		return Message{}, fmt.Errorf("rendering body: %w", err)
	}

	return Message{
		To:      c.to,
		Subject: strings.TrimSpace(subject.String()),
		Body:    strings.TrimSpace(body.String()),
	}, nil
}
