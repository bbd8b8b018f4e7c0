package employee

import "strings"

const EmptyTableMessage = "Employee data is not available please fill the form"

var TableColumns = []string{
	"First Name",
	"Middle Name",
	"Last Name",
	"Gender",
	"Phone Number",
	"Contacts",
	"Marital Status",
	"Immediate Joiner",
}

type Row struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	MiddleName      string `json:"middleName"`
	LastName        string `json:"lastName"`
	Gender          string `json:"gender"`
	PhoneNumber     string `json:"phoneNumber"`
	Contacts        string `json:"contacts"`
	MaritalStatus   string `json:"maritalStatus"`
	ImmediateJoiner string `json:"immediateJoiner"`
}

// Cells returns the row values in TableColumns order.
func (r Row) Cells() []string {
	return []string{
		r.FirstName,
		r.MiddleName,
		r.LastName,
		r.Gender,
		r.PhoneNumber,
		r.Contacts,
		r.MaritalStatus,
		r.ImmediateJoiner,
	}
}

type Table struct {
	Columns      []string `json:"columns"`
	Rows         []Row    `json:"rows"`
	Empty        bool     `json:"empty"`
	EmptyMessage string   `json:"emptyMessage,omitempty"`
}

func BuildTable(records []Record) Table {
	table := Table{
		Columns: TableColumns,
		Rows:    make([]Row, 0, len(records)),
	}
	for _, rec := range records {
		table.Rows = append(table.Rows, Row{
			ID:              rec.ID,
			FirstName:       rec.FirstName,
			MiddleName:      rec.MiddleName,
			LastName:        rec.LastName,
			Gender:          rec.Gender,
			PhoneNumber:     rec.PhoneNumber,
			Contacts:        strings.Join(rec.ContactMethods, ", "),
			MaritalStatus:   rec.MaritalStatus,
			ImmediateJoiner: rec.ImmediateJoiner,
		})
	}
	if len(table.Rows) == 0 {
		table.Empty = true
		table.EmptyMessage = EmptyTableMessage
	}
	return table
}
