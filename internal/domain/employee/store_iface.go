package employee

type StoreAPI interface {
	Create(rec Record) error
	Update(rec Record) bool
	Delete(id string) bool
	Get(id string) (Record, bool)
	List() []Record
	Len() int
}

// IDGenerator hands out record ids. Ids must never repeat for the life of
// the process.
type IDGenerator func() string
