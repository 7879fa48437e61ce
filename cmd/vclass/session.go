package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SHREYA-10SINGH/VIRTUAL-CLASSROOM/cmd/vclass/ui"
)

// Menu choices, in the order the header lists them.
const (
	choiceAddClass = iota + 1
	choiceAddStudent
	choiceViewClasses
	choiceViewStudents
	choiceQuit
)

// Captions shown under every roster card.
const (
	classCaption   = "Manage and track your class activities."
	studentCaption = "Active participant in your classes."
)

// rosterStore is the storage capability the session needs.
type rosterStore interface {
	AddClass(name string) (bool, error)
	AddStudent(name string) (bool, error)
	Classes() []string
	Students() []string
}

// terminal is the rendering and prompting capability the session needs.
type terminal interface {
	RenderHero()
	RenderHeader()
	RenderFooter()
	RenderCardGrid(cards []ui.Card)
	PromptMenuChoice() (int, error)
	PromptNonEmptyLine(label string) (string, error)
	ShowMessage(msg string)
	ShowSection(title string)
	ShowWarning(msg string)
	Pause() error
}

var _ terminal = (*ui.Console)(nil)

// session drives one interactive run: hero, menu loop, footer.
type session struct {
	id    string
	store rosterStore
	term  terminal
	log   *zap.Logger
}

func newSession(store rosterStore, term terminal, log *zap.Logger) *session {
	if log == nil {
		log = zap.NewNop()
	}
	return &session{
		id:    uuid.NewString(),
		store: store,
		term:  term,
		log:   log,
	}
}

// Run loops over the menu until the user quits or input ends. Either way
// the closing footer is rendered and the session ends cleanly.
func (s *session) Run() error {
	s.log.Info("session started", zap.String("session_id", s.id))

	s.term.RenderHero()
	for {
		s.term.RenderHeader()
		choice, err := s.term.PromptMenuChoice()
		if err != nil {
			s.logInputEnd("menu prompt", err)
			break
		}
		s.log.Debug("menu choice", zap.String("session_id", s.id), zap.Int("choice", choice))
		if choice == choiceQuit {
			break
		}
		s.dispatch(choice)
	}
	s.term.RenderFooter()

	s.log.Info("session finished", zap.String("session_id", s.id))
	return nil
}

func (s *session) dispatch(choice int) {
	switch choice {
	case choiceAddClass:
		s.addClassFlow()
	case choiceAddStudent:
		s.addStudentFlow()
	case choiceViewClasses:
		s.viewClassesFlow()
	case choiceViewStudents:
		s.viewStudentsFlow()
	}
}

func (s *session) addClassFlow() {
	name, err := s.term.PromptNonEmptyLine("Enter new class name: ")
	if err != nil {
		s.logInputEnd("class name prompt", err)
		return
	}

	added, saveErr := s.store.AddClass(name)
	if added {
		s.term.ShowMessage(fmt.Sprintf("Class \"%s\" added successfully.", name))
	} else {
		s.term.ShowMessage(fmt.Sprintf("Class \"%s\" already exists.", name))
	}
	s.reportSaveError(saveErr)
	s.pause()
}

func (s *session) addStudentFlow() {
	name, err := s.term.PromptNonEmptyLine("Enter new student name: ")
	if err != nil {
		s.logInputEnd("student name prompt", err)
		return
	}

	added, saveErr := s.store.AddStudent(name)
	if added {
		s.term.ShowMessage(fmt.Sprintf("Student \"%s\" added successfully.", name))
	} else {
		s.term.ShowMessage(fmt.Sprintf("Student \"%s\" already exists.", name))
	}
	s.reportSaveError(saveErr)
	s.pause()
}

func (s *session) viewClassesFlow() {
	classes := s.store.Classes()
	if len(classes) == 0 {
		s.term.ShowMessage("No classes available.")
	} else {
		s.term.ShowSection("Classes")
		s.term.RenderCardGrid(rosterCards(classes, classCaption))
	}
	s.pause()
}

func (s *session) viewStudentsFlow() {
	students := s.store.Students()
	if len(students) == 0 {
		s.term.ShowMessage("No students enrolled.")
	} else {
		s.term.ShowSection("Students")
		s.term.RenderCardGrid(rosterCards(students, studentCaption))
	}
	s.pause()
}

// rosterCards turns roster names into cards, one per name, each carrying
// the same caption line.
func rosterCards(names []string, caption string) []ui.Card {
	cards := make([]ui.Card, 0, len(names))
	for _, name := range names {
		cards = append(cards, ui.Card{Title: name, Lines: []string{caption}})
	}
	return cards
}

// reportSaveError surfaces a failed roster write without aborting the
// session. The in-memory entry stays valid for the rest of the run.
func (s *session) reportSaveError(err error) {
	if err == nil {
		return
	}
	s.log.Warn("roster save failed", zap.String("session_id", s.id), zap.Error(err))
	s.term.ShowWarning(fmt.Sprintf("Warning: could not save roster: %v", err))
}

func (s *session) logInputEnd(where string, err error) {
	if errors.Is(err, io.EOF) {
		s.log.Info("input ended", zap.String("session_id", s.id), zap.String("at", where))
		return
	}
	s.log.Warn("input failed", zap.String("session_id", s.id), zap.String("at", where), zap.Error(err))
}

func (s *session) pause() {
	if err := s.term.Pause(); err != nil {
		s.logInputEnd("pause", err)
	}
}
