package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"employeeform/internal/domain/employee"
)

const (
	actionAdd    = "add"
	actionEdit   = "edit"
	actionDelete = "delete"
	actionClear  = "clear"
	actionQuit   = "quit"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Fill in employee records from the terminal",
	Long: `Runs the employee form in the terminal. Records live for the duration of
the run and the table is printed after every action.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := employee.NewStore()
		t := &terminal{
			form:   employee.NewForm(store, nil),
			store:  store,
			prompt: huhPrompter{},
			out:    cmd.OutOrStdout(),
		}
		return t.run()
	},
}

func init() {
	rootCmd.AddCommand(formCmd)
}

// answers mirrors the form fields as the terminal prompts collect them.
// Contacts holds at most one value.
type answers struct {
	FirstName       string
	MiddleName      string
	LastName        string
	Gender          string
	PhoneNumber     string
	Contacts        []string
	MaritalStatus   string
	ImmediateJoiner string
}

func answersFromDraft(d employee.Draft) answers {
	return answers{
		FirstName:       d.FirstName,
		MiddleName:      d.MiddleName,
		LastName:        d.LastName,
		Gender:          d.Gender,
		PhoneNumber:     d.PhoneNumber,
		Contacts:        append([]string(nil), d.ContactMethods...),
		MaritalStatus:   d.MaritalStatus,
		ImmediateJoiner: d.ImmediateJoiner,
	}
}

// applyAnswers copies the answers into the form draft field by field.
func applyAnswers(form *employee.Form, a answers) error {
	fields := []struct {
		name  string
		value string
	}{
		{employee.FieldFirstName, a.FirstName},
		{employee.FieldMiddleName, a.MiddleName},
		{employee.FieldLastName, a.LastName},
		{employee.FieldGender, a.Gender},
		{employee.FieldPhoneNumber, strings.TrimSpace(a.PhoneNumber)},
		{employee.FieldMaritalStatus, a.MaritalStatus},
		{employee.FieldImmediateJoiner, a.ImmediateJoiner},
	}
	for _, f := range fields {
		if err := form.SetField(f.name, f.value, true); err != nil {
			return err
		}
	}

	if len(a.Contacts) == 0 {
		return form.SetField(employee.FieldContactMethods, "", false)
	}
	for _, c := range a.Contacts {
		if err := form.SetField(employee.FieldContactMethods, c, true); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, table employee.Table) error {
	if table.Empty {
		_, err := fmt.Fprintln(w, table.EmptyMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\t"+strings.Join(table.Columns, "\t"))
	for i, row := range table.Rows {
		fmt.Fprintf(tw, "%d\t%s\n", i+1, strings.Join(row.Cells(), "\t"))
	}
	return tw.Flush()
}

type prompter interface {
	// Action asks what to do next.
	Action(editMode, hasRecords bool) (string, error)
	// Fill edits a in place. It reports false when the user chose to clear
	// the form instead of submitting it.
	Fill(a *answers, editMode bool) (bool, error)
	// Pick asks for one of rows and returns its record id.
	Pick(title string, rows []employee.Row) (string, error)
}

type terminal struct {
	form   *employee.Form
	store  employee.StoreAPI
	prompt prompter
	out    io.Writer
}

func (t *terminal) run() error {
	for {
		if err := renderTable(t.out, employee.BuildTable(t.store.List())); err != nil {
			return err
		}

		action, err := t.prompt.Action(t.form.EditMode(), t.store.Len() > 0)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch action {
		case actionQuit:
			return nil
		case actionAdd:
			err = t.fill()
		case actionEdit:
			err = t.edit()
		case actionDelete:
			err = t.delete()
		case actionClear:
			t.form.Clear()
			fmt.Fprintln(t.out, "Form cleared.")
		default:
			err = fmt.Errorf("unknown action %q", action)
		}
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
	}
}

func (t *terminal) fill() error {
	a := answersFromDraft(t.form.Draft())
	submit, err := t.prompt.Fill(&a, t.form.EditMode())
	if err != nil {
		return err
	}
	if !submit {
		t.form.Clear()
		fmt.Fprintln(t.out, "Form cleared.")
		return nil
	}
	if err := applyAnswers(t.form, a); err != nil {
		return err
	}

	result, err := t.form.Submit()
	if err != nil {
		var verr *employee.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(t.out, "The form was not submitted:")
			for _, issue := range verr.Issues {
				fmt.Fprintf(t.out, "  - %s %s\n", issue.Label, issue.Reason)
			}
			return nil
		}
		return err
	}

	switch {
	case result.Op == employee.OpCreate:
		fmt.Fprintf(t.out, "Added %s %s.\n", result.Record.FirstName, result.Record.LastName)
	case result.Applied:
		fmt.Fprintf(t.out, "Updated %s %s.\n", result.Record.FirstName, result.Record.LastName)
	default:
		fmt.Fprintln(t.out, "The record being edited no longer exists; nothing was updated.")
	}
	return nil
}

func (t *terminal) edit() error {
	table := employee.BuildTable(t.store.List())
	if table.Empty {
		fmt.Fprintln(t.out, table.EmptyMessage)
		return nil
	}
	id, err := t.prompt.Pick("Which record do you want to edit?", table.Rows)
	if err != nil {
		return err
	}
	if _, err := t.form.StartEditByID(id); err != nil {
		if errors.Is(err, employee.ErrRecordNotFound) {
			fmt.Fprintln(t.out, "That record no longer exists.")
			return nil
		}
		return err
	}
	return t.fill()
}

func (t *terminal) delete() error {
	table := employee.BuildTable(t.store.List())
	if table.Empty {
		fmt.Fprintln(t.out, table.EmptyMessage)
		return nil
	}
	id, err := t.prompt.Pick("Which record do you want to delete?", table.Rows)
	if err != nil {
		return err
	}
	if t.store.Delete(id) {
		fmt.Fprintln(t.out, "Record deleted.")
	}
	return nil
}

type huhPrompter struct{}

func (huhPrompter) Action(editMode, hasRecords bool) (string, error) {
	fillLabel := "Add an employee"
	if editMode {
		fillLabel = "Continue editing"
	}
	options := []huh.Option[string]{huh.NewOption(fillLabel, actionAdd)}
	if hasRecords {
		options = append(options,
			huh.NewOption("Edit a record", actionEdit),
			huh.NewOption("Delete a record", actionDelete),
		)
	}
	options = append(options,
		huh.NewOption("Clear the form", actionClear),
		huh.NewOption("Quit", actionQuit),
	)

	var action string
	err := huh.NewSelect[string]().
		Title("What would you like to do?").
		Options(options...).
		Value(&action).
		Run()
	return action, err
}

func (huhPrompter) Fill(a *answers, editMode bool) (bool, error) {
	submitLabel := "Submit"
	if editMode {
		submitLabel = "Update"
	}
	submit := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First Name").Value(&a.FirstName).Validate(required("First name")),
			huh.NewInput().Title("Middle Name").Value(&a.MiddleName).Validate(required("Middle name")),
			huh.NewInput().Title("Last Name").Value(&a.LastName).Validate(required("Last name")),
			huh.NewSelect[string]().
				Title("Gender").
				Options(choices(employee.Genders)...).
				Value(&a.Gender),
			huh.NewInput().Title("Phone Number").Value(&a.PhoneNumber).Validate(required("Phone number")),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Mode of Contact").
				Description("Pick at most one.").
				Options(choices(employee.ContactMethods)...).
				Limit(1).
				Value(&a.Contacts),
			huh.NewSelect[string]().
				Title("Immediate Joiner").
				Options(choices(employee.JoinerOptions)...).
				Value(&a.ImmediateJoiner),
			huh.NewSelect[string]().
				Title("Marital Status").
				Options(choices(append([]string{employee.MaritalSelect}, employee.MaritalStatuses...))...).
				Value(&a.MaritalStatus),
			huh.NewConfirm().
				Affirmative(submitLabel).
				Negative("Clear").
				Value(&submit),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return submit, nil
}

func (huhPrompter) Pick(title string, rows []employee.Row) (string, error) {
	options := make([]huh.Option[string], 0, len(rows))
	for i, row := range rows {
		label := fmt.Sprintf("%d. %s %s %s", i+1, row.FirstName, row.MiddleName, row.LastName)
		options = append(options, huh.NewOption(label, row.ID))
	}

	var id string
	err := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&id).
		Run()
	return id, err
}

func choices(values []string) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		out = append(out, huh.NewOption(employee.OptionLabel(v), v))
	}
	return out
}

func required(label string) func(string) error {
	return func(s string) error {
		if employee.Blank(s) {
			return errors.New(label + " is required")
		}
		return nil
	}
}
