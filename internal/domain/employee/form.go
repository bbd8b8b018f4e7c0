package employee

import (
	"sync"
)

const (
	OpCreate = "create"
	OpUpdate = "update"
)

// SubmitResult reports which store operation a successful submit ran.
// Applied is false only for an update whose id is no longer in the store.
type SubmitResult struct {
	Op      string `json:"op"`
	Applied bool   `json:"applied"`
	Record  Record `json:"record"`
}

// Form holds the draft record and the edit-mode flag for one session.
type Form struct {
	mu       sync.Mutex
	store    StoreAPI
	newID    IDGenerator
	draft    Draft
	editMode bool
}

func NewForm(store StoreAPI, newID IDGenerator) *Form {
	if newID == nil {
		newID = NewRecordID
	}
	return &Form{
		store: store,
		newID: newID,
		draft: EmptyDraft(),
	}
}

// SetField updates one draft field. The contact-method group is a checkbox
// group that only ever holds one value: checking a box replaces the set,
// unchecking clears it.
func (f *Form) SetField(name, value string, checked bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case FieldFirstName:
		f.draft.FirstName = value
	case FieldMiddleName:
		f.draft.MiddleName = value
	case FieldLastName:
		f.draft.LastName = value
	case FieldGender:
		f.draft.Gender = value
	case FieldPhoneNumber:
		f.draft.PhoneNumber = value
	case FieldContactMethods:
		if checked {
			f.draft.ContactMethods = []string{value}
		} else {
			f.draft.ContactMethods = []string{}
		}
	case FieldMaritalStatus:
		f.draft.MaritalStatus = value
	case FieldImmediateJoiner:
		f.draft.ImmediateJoiner = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Submit validates the draft and turns it into exactly one store operation:
// create when not editing, update of the draft's id otherwise. The draft is
// reset only when the submit goes through.
func (f *Form) Submit() (SubmitResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := ValidateDraft(f.draft); err != nil {
		return SubmitResult{}, err
	}

	var result SubmitResult
	if f.editMode {
		rec := f.draft.Record(f.draft.ID)
		result = SubmitResult{Op: OpUpdate, Applied: f.store.Update(rec), Record: rec}
	} else {
		rec := f.draft.Record(f.newID())
		if err := f.store.Create(rec); err != nil {
			return SubmitResult{}, err
		}
		result = SubmitResult{Op: OpCreate, Applied: true, Record: rec}
	}

	f.reset()
	return result, nil
}

// StartEdit loads rec into the draft and switches to edit mode.
func (f *Form) StartEdit(rec Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = DraftFromRecord(rec)
	f.editMode = true
}

// StartEditByID looks id up in the store before entering edit mode.
func (f *Form) StartEditByID(id string) (Record, error) {
	rec, ok := f.store.Get(id)
	if !ok {
		return Record{}, ErrRecordNotFound
	}
	f.StartEdit(rec)
	return rec, nil
}

// Clear discards the draft, including any edit in progress.
func (f *Form) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.clone()
}

func (f *Form) EditMode() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editMode
}

func (f *Form) reset() {
	f.draft = EmptyDraft()
	f.editMode = false
}
