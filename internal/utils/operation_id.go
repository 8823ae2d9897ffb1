package utils

import "github.com/google/uuid"

// OperationIDs hands out the op_id attached to every log entry of one CLI
// command. IDs are UUIDv7 so log lines sort by command start time.
type OperationIDs struct {
	newV7 func() (uuid.UUID, error)
}

func NewOperationIDs() *OperationIDs {
	return &OperationIDs{newV7: uuid.NewV7}
}

// Next returns a fresh operation ID. A random UUIDv4 is used if the clock
// sequence cannot produce a v7.
func (o *OperationIDs) Next() string {
	id, err := o.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
