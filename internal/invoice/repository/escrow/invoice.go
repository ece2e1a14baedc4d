package escrow

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"invoice-escrow/internal/invoice/repository"
	"invoice-escrow/internal/model"
	"invoice-escrow/pkg/deadline"
)

// rawInvoice is the invoices(id) tuple in base units.
type rawInvoice struct {
	Supplier      common.Address
	Title         string
	Description   string
	Amount        *big.Int
	SupplierStake *big.Int
	Deadline      *big.Int
	Status        uint8
}

// NextID reads the total count of issued invoice identifiers.
func (c *Client) NextID(ctx context.Context) (uint64, error) {
	var out []any
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "nextId"); err != nil {
		return 0, fmt.Errorf("escrow: nextId failed: %w", err)
	}
	return out[0].(*big.Int).Uint64(), nil
}

// GetInvoice reads one record. The second return value is false for
// empty/unissued slots, identified by the zero supplier sentinel.
func (c *Client) GetInvoice(ctx context.Context, id uint64) (model.Invoice, bool, error) {
	raw, err := c.getRaw(ctx, id)
	if err != nil {
		return model.Invoice{}, false, err
	}
	if raw.Supplier == (common.Address{}) {
		return model.Invoice{}, false, nil
	}
	return toModel(id, raw), true, nil
}

// CreateInvoice issues the creation transaction with the stake attached as
// value and decodes the InvoiceCreated confirmation event. The event's id
// and deadline are authoritative over the locally supplied values.
func (c *Client) CreateInvoice(ctx context.Context, opt repository.CreateInvoiceOptions) (repository.CreatedInvoice, error) {
	amountWei, err := ToWei(opt.Amount)
	if err != nil {
		return repository.CreatedInvoice{}, fmt.Errorf("escrow: invalid amount: %w", err)
	}
	stakeWei, err := ToWei(opt.Stake)
	if err != nil {
		return repository.CreatedInvoice{}, fmt.Errorf("escrow: invalid stake: %w", err)
	}

	receipt, err := c.transact(ctx, stakeWei, "createInvoice",
		opt.Title, opt.Description, amountWei, big.NewInt(opt.DeadlineUnix))
	if err != nil {
		return repository.CreatedInvoice{}, err
	}

	createdID := c.abi.Events["InvoiceCreated"].ID
	for _, lg := range receipt.Logs {
		if len(lg.Topics) == 0 || lg.Topics[0] != createdID {
			continue
		}
		var ev invoiceCreatedEvent
		if err := c.contract.UnpackLog(&ev, "InvoiceCreated", *lg); err != nil {
			continue
		}
		return repository.CreatedInvoice{
			ID:           ev.Id.Uint64(),
			DeadlineUnix: ev.Deadline.Int64(),
		}, nil
	}

	// Confirmed transaction without the expected event: funds may have
	// moved, so report the inconsistency instead of ignoring it.
	return repository.CreatedInvoice{}, repository.ErrEventNotFound
}

// AcceptInvoice issues the acceptance transaction. The attached value is
// stake+amount computed from the on-chain record's base units, avoiding any
// float round-trip.
func (c *Client) AcceptInvoice(ctx context.Context, id uint64) error {
	raw, err := c.getRaw(ctx, id)
	if err != nil {
		return err
	}

	value := new(big.Int).Add(raw.Amount, raw.SupplierStake)
	_, err = c.transact(ctx, value, "acceptInvoice", new(big.Int).SetUint64(id))
	return err
}

// MarkCompleted issues the completion transaction with no value.
func (c *Client) MarkCompleted(ctx context.Context, id uint64) error {
	_, err := c.transact(ctx, nil, "markCompleted", new(big.Int).SetUint64(id))
	return err
}

func (c *Client) getRaw(ctx context.Context, id uint64) (rawInvoice, error) {
	var out []any
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "invoices", new(big.Int).SetUint64(id)); err != nil {
		return rawInvoice{}, fmt.Errorf("escrow: invoices(%d) failed: %w", id, err)
	}

	return rawInvoice{
		Supplier:      out[0].(common.Address),
		Title:         out[1].(string),
		Description:   out[2].(string),
		Amount:        out[3].(*big.Int),
		SupplierStake: out[4].(*big.Int),
		Deadline:      out[5].(*big.Int),
		Status:        out[6].(uint8),
	}, nil
}

// toModel maps a raw base-unit record into the display projection.
func toModel(id uint64, raw rawInvoice) model.Invoice {
	dl := raw.Deadline.Int64()
	return model.Invoice{
		ID:           id,
		Title:        raw.Title,
		Description:  raw.Description,
		Amount:       FromWei(raw.Amount),
		StakeAmount:  FromWei(raw.SupplierStake),
		Deadline:     time.Unix(dl, 0).UTC().Format(deadline.DateFormat),
		DeadlineUnix: dl,
		Status:       model.StatusFromCode(raw.Status),
		Supplier:     raw.Supplier.Hex(),
	}
}
