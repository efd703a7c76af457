package settings

import "time"

// Well-known setting keys.
const (
	KeyReportDeadline = "report_deadline"
)

// DeadlineLayout is the stored format of the report deadline value.
const DeadlineLayout = "2006-01-02"

// Setting is one key/value pair of platform configuration. Values are
// stored as strings; typed accessors live on the service.
type Setting struct {
	Key       string    `bson:"key" json:"key"`
	Value     string    `bson:"value" json:"value"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}
