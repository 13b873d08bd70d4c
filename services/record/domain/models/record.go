package models

// Record is a published, priced piece of content. Records are immutable once
// created; ID and Owner are assigned by the store, never by the caller.
type Record struct {
	ID          uint64
	Title       string
	Description string
	Content     string
	Owner       string // authenticated principal of the submitter
	Price       uint64 // stored as data only; units are not interpreted
}

// Draft holds the caller-supplied fields of a record before submission.
// Every field is opaque: empty strings and zero prices are valid.
type Draft struct {
	Title       string
	Description string
	Content     string
	Price       uint64
}

// NewRecord builds the Record for an allocated id and owner from a Draft.
func NewRecord(id uint64, d Draft, owner string) Record {
	return Record{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Content:     d.Content,
		Owner:       owner,
		Price:       d.Price,
	}
}
