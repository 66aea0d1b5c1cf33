// internal/domain/models/department.go
package models

// Department is an organizational unit members are appointed into.
// Department ids are human-chosen strings and are the document _id.
// Branch is an optional grouping label (e.g. a campus); the distinct
// set of branches feeds the branch filter control.
type Department struct {
	ID     string `bson:"_id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Branch string `bson:"branch,omitempty" json:"branch,omitempty"`
}
