package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"invoice-escrow/internal/invoice/repository"
	"invoice-escrow/internal/model"
	"invoice-escrow/pkg/deadline"
	"invoice-escrow/pkg/gcalendar"
	pkgLog "invoice-escrow/pkg/log"
	"invoice-escrow/pkg/openai"
)

const (
	// tokenSymbol is the chain's native unit, used in conversation copy.
	tokenSymbol = "FTN"

	// Draft sessions live in a bounded in-memory store; they are never
	// persisted and expire with inactivity.
	maxSessions = 1000
	sessionTTL  = 30 * time.Minute
)

// CalendarClient is the optional calendar integration surface.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	llm      openai.IOpenAI
	ledger   repository.LedgerRepository
	calendar CalendarClient // may be nil
	dl       *deadline.Parser

	sessions *expirable.LRU[string, *session]

	// Read-through projection of the ledger's invoice set. Never treated as
	// authoritative: any optimistic mutation marks it stale until the next
	// explicit refresh.
	cacheMu     sync.Mutex
	cached      []model.Invoice
	cacheLoaded bool
	cacheStale  bool

	// Per-invoice busy flags for the accept/complete actions.
	busyMu sync.Mutex
	busy   map[uint64]bool
}

// New creates a new invoice UseCase instance.
func New(
	l pkgLog.Logger,
	llm openai.IOpenAI,
	ledger repository.LedgerRepository,
	calendar CalendarClient,
	dl *deadline.Parser,
) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		ledger:   ledger,
		calendar: calendar,
		dl:       dl,
		sessions: expirable.NewLRU[string, *session](maxSessions, nil, sessionTTL),
		busy:     make(map[uint64]bool),
	}
}
