package registry

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/loketh/ledger/internal/adapter"
	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/logger"
	"github.com/loketh/ledger/internal/messaging"
	"github.com/loketh/ledger/internal/store"
)

// TokenRegistry maps currency names to fungible token contracts
//
//go:generate mockgen -source=token.go -destination=../mocks/token_registry.go -package=mocks -mock_names=TokenRegistry=MockTokenRegistry
type TokenRegistry interface {
	// Admin returns the only account allowed to register tokens
	Admin() domain.Account

	// RegisterToken maps name to address. Only the admin may register and both
	// the name and the address can be registered once.
	RegisterToken(ctx context.Context, caller domain.Account, name string, address domain.Account) (*domain.TokenEntry, error)

	// ResolveToken returns the address registered under name, or the zero address
	ResolveToken(ctx context.Context, name string) (domain.Account, error)

	// ResolveCurrency returns the native currency for the reserved name, the token
	// currency for a registered name and ErrInvalidCurrency otherwise
	ResolveCurrency(ctx context.Context, name string) (domain.Currency, error)

	// TokenCount returns the number of registered tokens
	TokenCount(ctx context.Context) (uint64, error)

	// TokenNameAt returns the index-th registered name, ErrInvalidTokenIndex past the end
	TokenNameAt(ctx context.Context, index uint64) (string, error)

	// Tokens returns every registered token in registration order
	Tokens(ctx context.Context) ([]domain.TokenEntry, error)
}

type tokenRegistry struct {
	admin     domain.Account
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewTokenRegistry creates a token registry administered by admin
func NewTokenRegistry(admin domain.Account, st store.Store, publisher messaging.Publisher, clock adapter.Clock) TokenRegistry {
	return &tokenRegistry{
		admin:     admin,
		store:     st,
		publisher: publisher,
		clock:     clock,
	}
}

func (r *tokenRegistry) Admin() domain.Account {
	return r.admin
}

func (r *tokenRegistry) RegisterToken(ctx context.Context, caller domain.Account, name string, address domain.Account) (*domain.TokenEntry, error) {
	if caller != r.admin {
		return nil, domain.ErrUnauthorized
	}
	if name == "" || name == domain.NATIVE_CURRENCY {
		return nil, domain.ErrInvalidName
	}
	if domain.IsZeroAccount(address) {
		return nil, domain.ErrInvalidAddress
	}

	entry := domain.TokenEntry{Name: name, Address: address, AddedBy: caller}
	if err := r.store.CreateToken(ctx, entry); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Token registered",
		zap.String("name", name),
		zap.String("address", address.Hex()),
		zap.String("added_by", caller.Hex()))

	messaging.Emit(ctx, r.publisher, domain.NewTokenAdded(r.clock.Now(), name, address, caller))

	return &entry, nil
}

func (r *tokenRegistry) ResolveToken(ctx context.Context, name string) (domain.Account, error) {
	entry, err := r.store.GetToken(ctx, name)
	if err != nil {
		return domain.ZeroAccount, err
	}
	if entry == nil {
		return domain.ZeroAccount, nil
	}
	return entry.Address, nil
}

func (r *tokenRegistry) ResolveCurrency(ctx context.Context, name string) (domain.Currency, error) {
	if name == domain.NATIVE_CURRENCY {
		return domain.NativeCurrency(), nil
	}

	address, err := r.ResolveToken(ctx, name)
	if err != nil {
		return domain.Currency{}, err
	}
	if domain.IsZeroAccount(address) {
		return domain.Currency{}, domain.ErrInvalidCurrency
	}
	return domain.TokenCurrency(name, address), nil
}

func (r *tokenRegistry) TokenCount(ctx context.Context) (uint64, error) {
	return r.store.TokenCount(ctx)
}

func (r *tokenRegistry) TokenNameAt(ctx context.Context, index uint64) (string, error) {
	return r.store.TokenNameAt(ctx, index)
}

func (r *tokenRegistry) Tokens(ctx context.Context) ([]domain.TokenEntry, error) {
	count, err := r.store.TokenCount(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.TokenEntry, 0, count)
	for i := range count {
		name, err := r.store.TokenNameAt(ctx, i)
		if err != nil {
			return nil, err
		}
		entry, err := r.store.GetToken(ctx, name)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return nil, fmt.Errorf("token %q listed but not found", name)
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}
