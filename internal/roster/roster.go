// Package roster owns the authoritative class and student name lists and
// keeps their plain-text mirrors on disk in sync.
//
// Each list lives in its own text file, one name per line. The store loads
// both files once on Open and rewrites both after every successful addition.
// A missing file simply means an empty list.
package roster

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Default file names, resolved against the process working directory.
const (
	DefaultClassesFile  = "classes.txt"
	DefaultStudentsFile = "students.txt"
)

// Store holds the deduplicated, insertion-ordered class and student name
// lists. It is not safe for concurrent use; the session loop is the only
// caller.
type Store struct {
	log *zap.Logger

	classesFile  string
	studentsFile string

	classes  []string
	students []string
}

// Open creates a Store backed by the two given text files and loads any
// existing entries from them. A file that cannot be opened yields an empty
// list rather than an error; only a read failure mid-file is reported.
func Open(classesFile, studentsFile string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Store{
		log:          log,
		classesFile:  classesFile,
		studentsFile: studentsFile,
	}

	var err error
	if s.classes, err = readNames(classesFile); err != nil {
		return nil, fmt.Errorf("load classes: %w", err)
	}
	if s.students, err = readNames(studentsFile); err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}

	log.Debug("roster loaded",
		zap.String("classes_file", classesFile),
		zap.String("students_file", studentsFile),
		zap.Int("classes", len(s.classes)),
		zap.Int("students", len(s.students)),
	)
	return s, nil
}

// AddClass appends a class name if it is not already present. It returns
// whether the name was added, plus a non-nil error when the name was added
// in memory but the rewrite of the backing files failed.
func (s *Store) AddClass(name string) (bool, error) {
	return s.add(&s.classes, "class", name)
}

// AddStudent appends a student name if it is not already present. Symmetric
// to AddClass.
func (s *Store) AddStudent(name string) (bool, error) {
	return s.add(&s.students, "student", name)
}

// Classes returns a copy of the class names in insertion order.
func (s *Store) Classes() []string {
	return append([]string(nil), s.classes...)
}

// Students returns a copy of the student names in insertion order.
func (s *Store) Students() []string {
	return append([]string(nil), s.students...)
}

func (s *Store) add(list *[]string, kind, name string) (bool, error) {
	// Callers prompt for trimmed, non-empty input; re-apply both checks so
	// the uniqueness and non-empty invariants hold no matter who calls.
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	if contains(*list, name) {
		s.log.Debug("duplicate name ignored",
			zap.String("kind", kind),
			zap.String("name", name),
		)
		return false, nil
	}

	*list = append(*list, name)

	if err := s.saveAll(); err != nil {
		// The in-memory addition stands; the caller decides how to report
		// the failed mirror write.
		s.log.Warn("roster save failed",
			zap.String("kind", kind),
			zap.String("name", name),
			zap.Error(err),
		)
		return true, err
	}

	s.log.Info("name added",
		zap.String("kind", kind),
		zap.String("name", name),
	)
	return true, nil
}

// saveAll rewrites both backing files from the in-memory lists.
func (s *Store) saveAll() error {
	if err := writeNames(s.classesFile, s.classes); err != nil {
		return fmt.Errorf("write %s: %w", s.classesFile, err)
	}
	if err := writeNames(s.studentsFile, s.students); err != nil {
		return fmt.Errorf("write %s: %w", s.studentsFile, err)
	}
	return nil
}

// readNames reads one name per line, trimming surrounding whitespace and
// skipping lines that are blank after trimming.
func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		// Missing or unreadable source: start from an empty list.
		return nil, nil
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return names, nil
}

// writeNames truncates the destination and writes one name per line, each
// terminated by a newline. An empty list produces an empty file.
func writeNames(path string, names []string) error {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func contains(names []string, target string) bool {
	for _, n := range names {
		if n == target {
			return true
		}
	}
	return false
}
