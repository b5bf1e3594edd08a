// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dialogue

import (
	"fmt"
	"strings"
)

// Prompt holds the answered questions and the prompt text built from them.
type Prompt struct {
	// Questions are kept in the order they were asked.
	Questions []Question

	// Text is the space-joined non-blank fragments of Questions.
	Text string
}

// Assemble asks each kind in order and builds the prompt text from the
// answers. Each question blocks on its own read.
func Assemble(t *Terminal, kinds []Kind) (*Prompt, error) {
	p := &Prompt{}
	for _, kind := range kinds {
		q, err := New(kind)
		if err != nil {
			return nil, err
		}
		if err := Ask(t, q); err != nil {
			return nil, fmt.Errorf("asking %s: %w", kind, err)
		}
		p.Questions = append(p.Questions, q)
	}
	p.Text = JoinFragments(p.Questions)
	return p, nil
}

// JoinFragments joins the non-blank fragments of qs with single spaces.
func JoinFragments(qs []Question) string {
	parts := make([]string, 0, len(qs))
	for _, q := range qs {
		if f := strings.TrimSpace(q.Fragment()); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

// Append adds suffix to the prompt text, separated by a single space.
func (p *Prompt) Append(suffix string) {
	suffix = strings.TrimSpace(suffix)
	switch {
	case suffix == "":
	case p.Text == "":
		p.Text = suffix
	default:
		p.Text += " " + suffix
	}
}

// Answer returns the answer of the first question of the given kind.
func (p *Prompt) Answer(kind Kind) (string, bool) {
	for _, q := range p.Questions {
		if q.Kind() == kind {
			return q.Answer(), true
		}
	}
	return "", false
}

// PostTitle returns the answer to the title question, or "" if none was asked.
func (p *Prompt) PostTitle() string {
	title, _ := p.Answer(KindTitle)
	return title
}
