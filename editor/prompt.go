package editor

// PromptResult tells the caller what to do after a prompt step.
type PromptResult uint8

const (
	PromptContinue PromptResult = iota
	PromptAccept
	PromptCancel
)

func (r PromptResult) String() string {
	switch r {
	case PromptAccept:
		return "accept"
	case PromptCancel:
		return "cancel"
	default:
		return "continue"
	}
}

type promptKind uint8

const (
	promptSearch promptKind = iota
	promptSaveAs
)

// Prompt is a one-line input edited in the message line.
type Prompt struct {
	kind  promptKind
	label string
	hint  string
	input []rune
}

// NewPrompt returns an empty prompt showing label before the input and hint
// after it.
func NewPrompt(label, hint string) *Prompt {
	return &Prompt{label: label, hint: hint}
}

func (p *Prompt) Input() string { return string(p.input) }

// Message is the text shown in the message line while the prompt is active.
func (p *Prompt) Message() string {
	return p.label + string(p.input) + p.hint
}

// Step applies one input to the prompt.
//
// Esc cancels. Enter accepts a non-empty input and is ignored otherwise.
// Backspace and delete drop the last rune; printable runes are appended.
func (p *Prompt) Step(ev Event) PromptResult {
	switch ev.Kind {
	case KeyEsc:
		return PromptCancel
	case KeyEnter:
		if len(p.input) > 0 {
			return PromptAccept
		}
	case KeyBackspace, KeyDelete:
		if n := len(p.input); n > 0 {
			p.input = p.input[:n-1]
		}
	case KeyRune:
		p.input = append(p.input, ev.Rune)
	}
	return PromptContinue
}

func (m *Model) openPrompt(kind promptKind, label, hint string) {
	p := NewPrompt(label, hint)
	p.kind = kind
	m.prompt = p
}

func (m *Model) handlePrompt(ev Event) {
	p := m.prompt
	res := p.Step(ev)

	if p.kind == promptSearch {
		m.searchStep(p.Input(), ev, res)
	}
	if res == PromptContinue {
		return
	}

	m.prompt = nil
	m.setStatus("")
	switch p.kind {
	case promptSearch:
		m.endSearch(res == PromptCancel)
	case promptSaveAs:
		if res == PromptCancel {
			m.setStatus("Save aborted")
			return
		}
		m.saveAs(p.Input())
	}
}
