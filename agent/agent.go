package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const prompt = "assist> "

// Agent is a chat between the shop owner and a facilitator that forwards
// inventory questions to the experts.
type Agent struct {
	w           io.Writer
	r           *bufio.Reader
	queued      []string
	Facilitator *Expert
	Experts     []*Expert
	// Render turns the markdown answers into terminal output. Nil prints them as is.
	Render func(markdown string) string
}

// New creates an Agent writing answers to w and reading questions from r.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		r:           bufio.NewReader(r),
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
	}
}

// Start opens the chat of every expert, then the facilitator's.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range append(a.Experts[:len(a.Experts):len(a.Experts)], a.Facilitator) {
		if err := e.Start(ctx, client); err != nil {
			return fmt.Errorf("cannot start %s: %w", e.Name, err)
		}
	}
	return nil
}

// greeting tells which experts are reachable and what they can look up.
func (a *Agent) greeting() string {
	var b strings.Builder
	b.WriteString("Welcome to inv assist. Type 'bye' to exit.\n")
	for _, e := range a.Experts {
		if fns := e.Functions(); len(fns) > 0 {
			fmt.Fprintf(&b, "%s can use %s.\n", e.Name, strings.Join(fns, ", "))
		}
	}
	return b.String()
}

// Run answers questions until 'bye' or the end of the input. The prompts
// are asked first, as if typed.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}
	a.queued = append(a.queued, prompts...)

	fmt.Fprint(a.w, a.greeting())
	for {
		question, err := a.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch strings.ToLower(question) {
		case "":
			continue
		case "bye", "exit":
			return nil
		}

		content, err := a.Facilitator.Ask(ctx, &genai.Part{Text: question})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, a.render(content))
	}
}

// next prints the prompt and returns the next question, queued or typed.
func (a *Agent) next() (string, error) {
	fmt.Fprint(a.w, prompt)
	for len(a.queued) > 0 {
		q := strings.TrimSpace(a.queued[0])
		a.queued = a.queued[1:]
		if q != "" {
			fmt.Fprintln(a.w, q)
			return q, nil
		}
	}
	line, err := a.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// render joins the text parts of an answer.
func (a *Agent) render(content *genai.Content) string {
	var texts []string
	for _, p := range content.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	answer := strings.Join(texts, "\n")
	if a.Render != nil {
		answer = a.Render(answer)
	}
	return answer
}
