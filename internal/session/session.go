// Package session collects the feature name, events, and context from the user.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/daydemir/eventato/internal/display"
	"github.com/daydemir/eventato/internal/types"
)

// ErrInputClosed is returned when input ends before a question is answered
var ErrInputClosed = errors.New("input closed before all questions were answered")

// Questions asked during collection
const (
	QuestionFeature = "What feature are you adding events for?"
	QuestionEvents  = "What events do you want to track? (comma-separated)"
	QuestionContext = "Any additional context about these events? (optional)"
)

// Prompter asks line-based questions on a terminal
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	theme *display.Theme
}

// NewPrompter creates a Prompter reading answers from in and writing questions to out
func NewPrompter(in io.Reader, out io.Writer, theme *display.Theme) *Prompter {
	if theme == nil {
		theme = display.NoColorTheme()
	}
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		theme: theme,
	}
}

// Ask prints question and returns the trimmed answer, or def when it is blank
func (p *Prompter) Ask(question, def string) (string, error) {
	line, err := p.ask(question, def)
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// AskRaw prints question and returns the answer with only the line ending
// removed. Surrounding whitespace is kept as typed.
func (p *Prompter) AskRaw(question string) (string, error) {
	line, err := p.ask(question, "")
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (p *Prompter) ask(question, def string) (string, error) {
	fmt.Fprintf(p.out, "%s %s ", p.theme.Question(display.SymbolQuestion), p.theme.Bold(question))
	if def != "" {
		fmt.Fprintf(p.out, "%s ", p.theme.Dim("("+def+")"))
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return line, nil
}

// AskValidated repeats question until validate accepts the answer.
// There is no retry limit; only closed input ends the loop early.
func (p *Prompter) AskValidated(question string, validate func(string) error) (string, error) {
	for {
		answer, err := p.Ask(question, "")
		if err != nil {
			return "", err
		}
		if verr := validate(answer); verr != nil {
			fmt.Fprintf(p.out, "%s %s\n", p.theme.Error(">>"), verr.Error())
			continue
		}
		return answer, nil
	}
}

// Collect runs CollectFeature, CollectEvents and CollectContext in order.
// The feature question is skipped when preset is non-blank.
func Collect(p *Prompter, preset string) (types.EventRequest, error) {
	feature := strings.TrimSpace(preset)
	if feature == "" {
		answer, err := p.AskValidated(QuestionFeature, types.ValidateFeatureName)
		if err != nil {
			return types.EventRequest{}, err
		}
		feature = answer
	}

	events, err := p.AskValidated(QuestionEvents, types.ValidateEventList)
	if err != nil {
		return types.EventRequest{}, err
	}

	context, err := p.AskRaw(QuestionContext)
	if err != nil {
		return types.EventRequest{}, err
	}

	return types.NewEventRequest(feature, events, context)
}
