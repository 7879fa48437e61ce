package main

import (
	"io"

	"github.com/SHREYA-10SINGH/VIRTUAL-CLASSROOM/cmd/vclass/ui"
)

// --- fakeRoster ---

// fakeRoster implements rosterStore with in-memory slices and an
// injectable save error.
type fakeRoster struct {
	classes  []string
	students []string
	saveErr  error
}

func (f *fakeRoster) AddClass(name string) (bool, error) {
	for _, c := range f.classes {
		if c == name {
			return false, nil
		}
	}
	f.classes = append(f.classes, name)
	return true, f.saveErr
}

func (f *fakeRoster) AddStudent(name string) (bool, error) {
	for _, s := range f.students {
		if s == name {
			return false, nil
		}
	}
	f.students = append(f.students, name)
	return true, f.saveErr
}

func (f *fakeRoster) Classes() []string  { return f.classes }
func (f *fakeRoster) Students() []string { return f.students }

// --- scriptTerminal ---

// scriptTerminal implements terminal with scripted answers. It records
// every call in order so tests can assert the whole session choreography.
type scriptTerminal struct {
	choices []int
	inputs  []string

	calls    []string
	labels   []string
	messages []string
	sections []string
	warnings []string
	grids    [][]ui.Card
}

func (s *scriptTerminal) RenderHero()   { s.calls = append(s.calls, "hero") }
func (s *scriptTerminal) RenderHeader() { s.calls = append(s.calls, "header") }
func (s *scriptTerminal) RenderFooter() { s.calls = append(s.calls, "footer") }

func (s *scriptTerminal) RenderCardGrid(cards []ui.Card) {
	s.calls = append(s.calls, "grid")
	s.grids = append(s.grids, cards)
}

func (s *scriptTerminal) PromptMenuChoice() (int, error) {
	s.calls = append(s.calls, "menu")
	if len(s.choices) == 0 {
		return 0, io.EOF
	}
	choice := s.choices[0]
	s.choices = s.choices[1:]
	return choice, nil
}

func (s *scriptTerminal) PromptNonEmptyLine(label string) (string, error) {
	s.calls = append(s.calls, "prompt")
	s.labels = append(s.labels, label)
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	input := s.inputs[0]
	s.inputs = s.inputs[1:]
	return input, nil
}

func (s *scriptTerminal) ShowMessage(msg string) {
	s.calls = append(s.calls, "message")
	s.messages = append(s.messages, msg)
}

func (s *scriptTerminal) ShowSection(title string) {
	s.calls = append(s.calls, "section")
	s.sections = append(s.sections, title)
}

func (s *scriptTerminal) ShowWarning(msg string) {
	s.calls = append(s.calls, "warning")
	s.warnings = append(s.warnings, msg)
}

func (s *scriptTerminal) Pause() error {
	s.calls = append(s.calls, "pause")
	return nil
}
