package model

// InvoiceStatus is the lifecycle status of a committed invoice.
// Transitions are monotonic forward and driven exclusively by confirmed
// ledger transactions; local copies are advisory between refreshes.
type InvoiceStatus string

const (
	StatusStaked     InvoiceStatus = "staked"
	StatusInProgress InvoiceStatus = "in-progress"
	StatusCompleted  InvoiceStatus = "completed"
	StatusCancelled  InvoiceStatus = "cancelled"
	StatusUnknown    InvoiceStatus = "unknown"
)

// statusByCode is the fixed ordered mapping of ledger status codes.
var statusByCode = []InvoiceStatus{
	StatusStaked,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// StatusFromCode maps a raw ledger status code to an InvoiceStatus.
// Out-of-range codes map to StatusUnknown rather than failing the load.
func StatusFromCode(code uint8) InvoiceStatus {
	if int(code) < len(statusByCode) {
		return statusByCode[code]
	}
	return StatusUnknown
}

// Invoice is the read-through projection of a committed ledger record.
// The authoritative copy lives on the external ledger.
type Invoice struct {
	ID           uint64
	Title        string
	Description  string
	Amount       float64 // native chain units
	StakeAmount  float64 // native chain units
	Deadline     string  // canonical YYYY-MM-DD
	DeadlineUnix int64   // ledger-recorded epoch
	Status       InvoiceStatus
	Supplier     string // creator address, hex
}
