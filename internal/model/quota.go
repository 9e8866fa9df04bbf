package model

import "fmt"

// QuotaField names one editable quota column of a repository.
type QuotaField string

const (
	FieldQuota    QuotaField = "quota"
	FieldIncoming QuotaField = "incoming_quota"
	FieldOutgoing QuotaField = "outgoing_quota"
)

// QuotaFields lists the editable fields in form order.
var QuotaFields = []QuotaField{FieldQuota, FieldIncoming, FieldOutgoing}

// Title is the human label shown next to the field.
func (f QuotaField) Title() string {
	switch f {
	case FieldQuota:
		return "Quota"
	case FieldIncoming:
		return "Incoming quota"
	case FieldOutgoing:
		return "Outgoing quota"
	default:
		return string(f)
	}
}

// QuotaForm holds a repository's quota limits in bytes. Zero means unlimited.
type QuotaForm struct {
	Repository    string
	Quota         int64
	IncomingQuota int64
	OutgoingQuota int64
}

// Get returns the byte count stored for field.
func (q QuotaForm) Get(field QuotaField) int64 {
	switch field {
	case FieldQuota:
		return q.Quota
	case FieldIncoming:
		return q.IncomingQuota
	case FieldOutgoing:
		return q.OutgoingQuota
	}
	return 0
}

// Set stores n for field.
func (q *QuotaForm) Set(field QuotaField, n int64) error {
	switch field {
	case FieldQuota:
		q.Quota = n
	case FieldIncoming:
		q.IncomingQuota = n
	case FieldOutgoing:
		q.OutgoingQuota = n
	default:
		return fmt.Errorf("unknown quota field %q", field)
	}
	return nil
}

// CLIOptions holds runtime options resolved from flags, env and config.
type CLIOptions struct {
	ShowValue bool   // Print the normalized value next to each label.
	Human     bool   // Parse inputs strictly as human sizes ("2GB").
	Verbose   bool   // Force debug logging.
	LogLevel  string // debug | info | warn | error
}
