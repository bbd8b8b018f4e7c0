package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"employeeform/internal/domain/employee"
)

type scriptedPrompter struct {
	actions []string
	fills   []func(a *answers) bool
	picks   []int
}

func (s *scriptedPrompter) Action(bool, bool) (string, error) {
	if len(s.actions) == 0 {
		return actionQuit, nil
	}
	action := s.actions[0]
	s.actions = s.actions[1:]
	return action, nil
}

func (s *scriptedPrompter) Fill(a *answers, _ bool) (bool, error) {
	if len(s.fills) == 0 {
		return false, errors.New("unexpected fill")
	}
	fill := s.fills[0]
	s.fills = s.fills[1:]
	return fill(a), nil
}

func (s *scriptedPrompter) Pick(_ string, rows []employee.Row) (string, error) {
	if len(s.picks) == 0 {
		return "", errors.New("unexpected pick")
	}
	i := s.picks[0]
	s.picks = s.picks[1:]
	return rows[i].ID, nil
}

func jane(a *answers) bool {
	*a = answers{
		FirstName:       "Jane",
		MiddleName:      "Q",
		LastName:        "Public",
		Gender:          employee.GenderFemale,
		PhoneNumber:     "5550100",
		Contacts:        []string{employee.ContactEmail},
		MaritalStatus:   employee.MaritalSingle,
		ImmediateJoiner: employee.JoinerYes,
	}
	return true
}

func newTerminal(p prompter) (*terminal, *bytes.Buffer) {
	var ids int
	store := employee.NewStore()
	out := &bytes.Buffer{}
	return &terminal{
		form: employee.NewForm(store, func() string {
			ids++
			return fmt.Sprintf("emp-%d", ids)
		}),
		store:  store,
		prompt: p,
		out:    out,
	}, out
}

func TestTerminalAddEditDelete(t *testing.T) {
	var editedFrom string
	p := &scriptedPrompter{
		actions: []string{actionAdd, actionEdit, actionDelete},
		fills: []func(a *answers) bool{
			jane,
			func(a *answers) bool {
				editedFrom = a.FirstName
				a.LastName = "Doe"
				return true
			},
		},
		picks: []int{0, 0},
	}
	term, out := newTerminal(p)

	if err := term.run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	if editedFrom != "Jane" {
		t.Fatalf("edit must start from the stored record, got %q", editedFrom)
	}
	got := out.String()
	for _, want := range []string{
		employee.EmptyTableMessage,
		"Added Jane Public.",
		"Updated Jane Doe.",
		"Record deleted.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
	if term.store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", term.store.Len())
	}
}

func TestTerminalValidationKeepsDraft(t *testing.T) {
	p := &scriptedPrompter{
		actions: []string{actionAdd},
		fills: []func(a *answers) bool{
			func(a *answers) bool {
				a.FirstName = "Jane"
				return true
			},
		},
	}
	term, out := newTerminal(p)

	if err := term.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "The form was not submitted:") {
		t.Fatalf("expected validation issues, got:\n%s", out.String())
	}
	if term.store.Len() != 0 {
		t.Fatal("blocked submit must not add a record")
	}
	if term.form.Draft().FirstName != "Jane" {
		t.Fatal("blocked submit must keep the draft")
	}
}

func TestTerminalClearFromFill(t *testing.T) {
	p := &scriptedPrompter{
		actions: []string{actionAdd},
		fills: []func(a *answers) bool{
			func(a *answers) bool {
				a.FirstName = "Jane"
				return false
			},
		},
	}
	term, _ := newTerminal(p)

	if err := term.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if term.form.Draft().FirstName != "" || term.store.Len() != 0 {
		t.Fatal("clear must discard the answers")
	}
}

func TestApplyAnswersContacts(t *testing.T) {
	form := employee.NewForm(employee.NewStore(), nil)

	a := answers{Contacts: []string{employee.ContactPhone}, MaritalStatus: employee.MaritalSelect}
	if err := applyAnswers(form, a); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := form.Draft().ContactMethods; len(got) != 1 || got[0] != employee.ContactPhone {
		t.Fatalf("expected [phone], got %v", got)
	}

	a.Contacts = nil
	if err := applyAnswers(form, a); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := form.Draft().ContactMethods; len(got) != 0 {
		t.Fatalf("expected no contacts, got %v", got)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := renderTable(&buf, employee.BuildTable(nil)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(buf.String()) != employee.EmptyTableMessage {
		t.Fatalf("unexpected empty render %q", buf.String())
	}

	buf.Reset()
	rec := employee.Record{
		ID:              "emp-1",
		FirstName:       "Jane",
		MiddleName:      "Q",
		LastName:        "Public",
		Gender:          employee.GenderFemale,
		PhoneNumber:     "5550100",
		ContactMethods:  []string{employee.ContactEmail},
		MaritalStatus:   employee.MaritalSingle,
		ImmediateJoiner: employee.JoinerYes,
	}
	if err := renderTable(&buf, employee.BuildTable([]employee.Record{rec})); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "First Name") || !strings.Contains(lines[0], "Immediate Joiner") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); fields[0] != "1" || fields[1] != "Jane" || fields[len(fields)-1] != "Yes" {
		t.Fatalf("unexpected row %q", lines[1])
	}
}
