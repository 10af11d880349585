package fsa

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Read parses an automaton from its text form:
//
//	line 1: states size
//	line 2: alphabet size
//	line 3: space separated start states (may be empty)
//	line 4: space separated accept states (may be empty)
//	then one "from symbol to" transition per line
//
// Blank transition lines are skipped. Syntax errors wrap ErrSyntax and name
// the line. Out of range states and symbols are rejected by New.
func Read(r io.Reader) (*Automaton, error) {
	scanner := bufio.NewScanner(r)
	line := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		line++
		return strings.TrimSpace(scanner.Text()), true
	}

	readSize := func(what string) (int, error) {
		text, ok := next()
		if !ok {
			return 0, errors.Wrapf(ErrSyntax, "line %d: missing %s", line+1, what)
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return 0, errors.Wrapf(ErrSyntax, "line %d: %s %q is not an integer", line, what, text)
		}
		return n, nil
	}
	readStates := func(what string) ([]int, error) {
		text, ok := next()
		if !ok {
			return nil, nil
		}
		states, err := parseInts(text)
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "line %d: %s: %v", line, what, err)
		}
		return states, nil
	}

	statesSize, err := readSize("states size")
	if err != nil {
		return nil, err
	}
	alphabetSize, err := readSize("alphabet size")
	if err != nil {
		return nil, err
	}
	start, err := readStates("start states")
	if err != nil {
		return nil, err
	}
	accept, err := readStates("accept states")
	if err != nil {
		return nil, err
	}

	var transitions []Transition
	for {
		text, ok := next()
		if !ok {
			break
		}
		if text == "" {
			continue
		}
		fields, err := parseInts(text)
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "line %d: transition: %v", line, err)
		}
		if len(fields) != 3 {
			return nil, errors.Wrapf(ErrSyntax, "line %d: transition needs 3 fields, got %d", line, len(fields))
		}
		transitions = append(transitions, Transition{Source: fields[0], Symbol: fields[1], Dest: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read automaton")
	}

	return New(statesSize, alphabetSize,
		WithStartStates(start...),
		WithAcceptStates(accept...),
		WithTransitions(transitions...))
}

// ReadFile reads an automaton from the named file.
func ReadFile(path string) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	a, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return a, nil
}

func parseInts(text string) ([]int, error) {
	fields := strings.Fields(text)
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Newf("%q is not an integer", field)
		}
		values = append(values, v)
	}
	return values, nil
}

// Write normalizes the automaton if needed and writes its text form. States
// are listed in ascending order and transitions ordered by source, symbol and
// destination.
func (a *Automaton) Write(w io.Writer) error {
	if err := a.Normalize(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(a.statesSize))
	bw.WriteByte('\n')
	bw.WriteString(strconv.Itoa(a.alphabetSize))
	bw.WriteByte('\n')
	bw.WriteString(formatIDs(a.start))
	bw.WriteByte('\n')
	bw.WriteString(formatIDs(a.accept))
	bw.WriteByte('\n')
	for t := range a.Transitions() {
		bw.WriteString(strconv.Itoa(t.Source))
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(t.Symbol))
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(t.Dest))
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "write automaton")
}

// WriteFile writes the automaton to the named file, creating or truncating it.
func (a *Automaton) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		err = errors.CombineErrors(err, f.Close())
	}()
	return a.Write(f)
}

func formatIDs(s *StateSet) string {
	ids := s.GetArray()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}
