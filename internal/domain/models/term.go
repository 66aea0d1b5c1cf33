// internal/domain/models/term.go
package models

// Term is an academic period (a semester). Term ids are human-chosen
// strings (e.g. "202401") and are the document _id in the terms
// collection.
//
// Order induces a total order over all terms. A nil Order means the
// term was entered without an explicit rank; the roster engine assigns
// it a rank from its sorted position instead.
type Term struct {
	ID    string `bson:"_id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Start string `bson:"start,omitempty" json:"start,omitempty"` // ISO date (yyyy-mm-dd)
	End   string `bson:"end,omitempty" json:"end,omitempty"`
	Order *int   `bson:"order,omitempty" json:"order,omitempty"`
}
