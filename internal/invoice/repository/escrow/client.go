package escrow

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	pkgLog "invoice-escrow/pkg/log"
)

// Config holds the connection parameters for the escrow contract.
type Config struct {
	RPCURL          string
	ContractAddress string
	PrivateKey      string // hex, no 0x prefix
	ChainID         int64
}

// Validate checks the required fields.
func (c Config) Validate() error {
	if c.RPCURL == "" {
		return errors.New("escrow: rpc_url is required")
	}
	if !common.IsHexAddress(c.ContractAddress) {
		return fmt.Errorf("escrow: invalid contract address %q", c.ContractAddress)
	}
	if c.PrivateKey == "" {
		return errors.New("escrow: private_key is required")
	}
	if c.ChainID == 0 {
		return errors.New("escrow: chain_id is required")
	}
	return nil
}

// Client is the ledger repository backed by the escrow contract over
// JSON-RPC. It is constructed once at startup and injected; there is no
// ambient provider state.
type Client struct {
	l        pkgLog.Logger
	eth      *ethclient.Client
	contract *bind.BoundContract
	abi      abi.ABI
	opts     bind.TransactOpts

	// txMu serializes transaction dispatch so the single signing key never
	// reuses a pending nonce.
	txMu sync.Mutex
}

// New dials the RPC endpoint and binds the escrow contract.
func New(ctx context.Context, l pkgLog.Logger, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("escrow: failed to dial %s: %w", cfg.RPCURL, err)
	}

	parsed, err := abi.JSON(strings.NewReader(escrowABI))
	if err != nil {
		return nil, fmt.Errorf("escrow: failed to parse ABI: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("escrow: invalid private key: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(cfg.ChainID))
	if err != nil {
		return nil, fmt.Errorf("escrow: failed to build transactor: %w", err)
	}

	addr := common.HexToAddress(cfg.ContractAddress)
	contract := bind.NewBoundContract(addr, parsed, eth, eth, eth)

	return &Client{
		l:        l,
		eth:      eth,
		contract: contract,
		abi:      parsed,
		opts:     *opts,
	}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// ChainTime returns the latest block timestamp.
func (c *Client) ChainTime(ctx context.Context) (int64, error) {
	header, err := c.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("escrow: failed to read latest block: %w", err)
	}
	return int64(header.Time), nil
}

// transact dispatches one contract write with the given attached value and
// blocks until the transaction is mined, returning its receipt.
func (c *Client) transact(ctx context.Context, value *big.Int, method string, params ...any) (*types.Receipt, error) {
	c.txMu.Lock()
	opts := c.opts
	opts.Context = ctx
	opts.Value = value
	tx, err := c.contract.Transact(&opts, method, params...)
	c.txMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("escrow: %s failed: %w", method, err)
	}

	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return nil, fmt.Errorf("escrow: waiting for %s confirmation: %w", method, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("escrow: %s transaction %s reverted", method, tx.Hash())
	}

	c.l.Infof(ctx, "escrow: %s confirmed in block %d tx=%s", method, receipt.BlockNumber, tx.Hash())
	return receipt, nil
}
