package employee

import (
	"strconv"
	"testing"
)

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return "emp-" + strconv.Itoa(n)
	}
}

func sampleRecord(id, first string) Record {
	return Record{
		ID:              id,
		FirstName:       first,
		MiddleName:      "M",
		LastName:        "Doe",
		Gender:          GenderFemale,
		PhoneNumber:     "5551234",
		ContactMethods:  []string{ContactEmail},
		MaritalStatus:   MaritalSingle,
		ImmediateJoiner: JoinerYes,
	}
}

func fillDraft(t *testing.T, f *Form, first string) {
	t.Helper()
	values := []struct {
		name  string
		value string
	}{
		{FieldFirstName, first},
		{FieldMiddleName, "M"},
		{FieldLastName, "Doe"},
		{FieldGender, GenderFemale},
		{FieldPhoneNumber, "5551234"},
		{FieldMaritalStatus, MaritalSingle},
		{FieldImmediateJoiner, JoinerYes},
	}
	for _, v := range values {
		if err := f.SetField(v.name, v.value, true); err != nil {
			t.Fatalf("set field: %v", err)
		}
	}
	if err := f.SetField(FieldContactMethods, ContactEmail, true); err != nil {
		t.Fatalf("set field: %v", err)
	}
}
