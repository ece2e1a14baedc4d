package escrow

import "math/big"

// escrowABI is the fixed method surface of the pre-deployed escrow contract.
// The contract itself is an opaque external dependency; only this interface
// is consumed.
const escrowABI = `[
	{"type":"function","name":"nextId","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"invoices","stateMutability":"view","inputs":[{"name":"","type":"uint256"}],"outputs":[
		{"name":"supplier","type":"address"},
		{"name":"title","type":"string"},
		{"name":"description","type":"string"},
		{"name":"amount","type":"uint256"},
		{"name":"supplierStake","type":"uint256"},
		{"name":"deadline","type":"uint256"},
		{"name":"status","type":"uint8"}
	]},
	{"type":"function","name":"createInvoice","stateMutability":"payable","inputs":[
		{"name":"title","type":"string"},
		{"name":"description","type":"string"},
		{"name":"amount","type":"uint256"},
		{"name":"deadline","type":"uint256"}
	],"outputs":[]},
	{"type":"function","name":"acceptInvoice","stateMutability":"payable","inputs":[{"name":"id","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"markCompleted","stateMutability":"nonpayable","inputs":[{"name":"id","type":"uint256"}],"outputs":[]},
	{"type":"event","name":"InvoiceCreated","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"deadline","type":"uint256","indexed":false}
	]}
]`

// invoiceCreatedEvent mirrors the InvoiceCreated event arguments.
type invoiceCreatedEvent struct {
	Id       *big.Int
	Deadline *big.Int
}
