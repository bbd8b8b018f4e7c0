package employee

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOthers = "others"

	ContactEmail = "email"
	ContactPhone = "phone"

	MaritalSelect   = "select"
	MaritalMarried  = "married"
	MaritalSingle   = "single"
	MaritalDivorced = "divorced"
	MaritalWidowed  = "widowed"

	JoinerYes = "Yes"
	JoinerNo  = "No"
)

const (
	FieldFirstName       = "firstName"
	FieldMiddleName      = "middleName"
	FieldLastName        = "lastName"
	FieldGender          = "gender"
	FieldPhoneNumber     = "phoneNumber"
	FieldContactMethods  = "contactMethods"
	FieldMaritalStatus   = "maritalStatus"
	FieldImmediateJoiner = "immediateJoiner"
)

var (
	Genders         = []string{GenderMale, GenderFemale, GenderOthers}
	ContactMethods  = []string{ContactEmail, ContactPhone}
	MaritalStatuses = []string{MaritalMarried, MaritalSingle, MaritalDivorced, MaritalWidowed}
	JoinerOptions   = []string{JoinerYes, JoinerNo}
)

// Record is a committed employee entry held in a Store.
type Record struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"firstName"`
	MiddleName      string   `json:"middleName"`
	LastName        string   `json:"lastName"`
	Gender          string   `json:"gender"`
	PhoneNumber     string   `json:"phoneNumber"`
	ContactMethods  []string `json:"contactMethods"`
	MaritalStatus   string   `json:"maritalStatus"`
	ImmediateJoiner string   `json:"immediateJoiner"`
}

// Draft is the in-progress form record. The validate tags describe what a
// draft must satisfy before it can be submitted.
type Draft struct {
	ID              string   `json:"id,omitempty"`
	FirstName       string   `json:"firstName" validate:"notblank"`
	MiddleName      string   `json:"middleName" validate:"notblank"`
	LastName        string   `json:"lastName" validate:"notblank"`
	Gender          string   `json:"gender" validate:"required,oneof=male female others"`
	PhoneNumber     string   `json:"phoneNumber" validate:"required,number"`
	ContactMethods  []string `json:"contactMethods" validate:"max=1,dive,oneof=email phone"`
	MaritalStatus   string   `json:"maritalStatus" validate:"required,oneof=married single divorced widowed"`
	ImmediateJoiner string   `json:"immediateJoiner" validate:"required,oneof=Yes No"`
}

func EmptyDraft() Draft {
	return Draft{
		ContactMethods: []string{},
		MaritalStatus:  MaritalSelect,
	}
}

func (d Draft) Record(id string) Record {
	return Record{
		ID:              id,
		FirstName:       d.FirstName,
		MiddleName:      d.MiddleName,
		LastName:        d.LastName,
		Gender:          d.Gender,
		PhoneNumber:     d.PhoneNumber,
		ContactMethods:  cloneStrings(d.ContactMethods),
		MaritalStatus:   d.MaritalStatus,
		ImmediateJoiner: d.ImmediateJoiner,
	}
}

func DraftFromRecord(rec Record) Draft {
	return Draft{
		ID:              rec.ID,
		FirstName:       rec.FirstName,
		MiddleName:      rec.MiddleName,
		LastName:        rec.LastName,
		Gender:          rec.Gender,
		PhoneNumber:     rec.PhoneNumber,
		ContactMethods:  cloneStrings(rec.ContactMethods),
		MaritalStatus:   rec.MaritalStatus,
		ImmediateJoiner: rec.ImmediateJoiner,
	}
}

func (r Record) clone() Record {
	r.ContactMethods = cloneStrings(r.ContactMethods)
	return r
}

func (d Draft) clone() Draft {
	d.ContactMethods = cloneStrings(d.ContactMethods)
	return d
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
