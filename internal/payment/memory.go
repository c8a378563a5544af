package payment

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/loketh/ledger/internal/domain"
)

// TransferHook runs inside an outbound transfer before it settles, like a
// receiving contract would. It may call back into the ledger.
type TransferHook func(ctx context.Context, recipient domain.Account, amount *big.Int) error

// MemoryToken is an in-process ERC-20 style token
type MemoryToken struct {
	mu         sync.Mutex
	custody    domain.Account
	balances   map[domain.Account]*big.Int
	allowances map[domain.Account]map[domain.Account]*big.Int

	// OnTransfer, when set, runs during Transfer before the balances move
	OnTransfer TransferHook
	// OnTransferFrom, when set, runs during TransferFrom before the balances move
	OnTransferFrom TransferHook
}

// NewMemoryToken creates a token whose Transfer and TransferFrom act as custody
func NewMemoryToken(custody domain.Account) *MemoryToken {
	return &MemoryToken{
		custody:    custody,
		balances:   make(map[domain.Account]*big.Int),
		allowances: make(map[domain.Account]map[domain.Account]*big.Int),
	}
}

func (t *MemoryToken) balance(a domain.Account) *big.Int {
	if b, ok := t.balances[a]; ok {
		return b
	}
	return new(big.Int)
}

// Mint credits amount to account
func (t *MemoryToken) Mint(account domain.Account, amount *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.balances[account] = new(big.Int).Add(t.balance(account), amount)
}

// Approve sets the allowance of spender over owner's tokens
func (t *MemoryToken) Approve(owner, spender domain.Account, amount *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.allowances[owner] == nil {
		t.allowances[owner] = make(map[domain.Account]*big.Int)
	}
	t.allowances[owner][spender] = domain.CloneAmount(amount)
}

func (t *MemoryToken) BalanceOf(ctx context.Context, account domain.Account) (*big.Int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return domain.CloneAmount(t.balance(account)), nil
}

func (t *MemoryToken) Allowance(ctx context.Context, owner, spender domain.Account) (*big.Int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return domain.CloneAmount(t.allowances[owner][spender]), nil
}

func (t *MemoryToken) TransferFrom(ctx context.Context, owner, recipient domain.Account, amount *big.Int) error {
	if t.OnTransferFrom != nil {
		if err := t.OnTransferFrom(ctx, owner, amount); err != nil {
			return err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	allowance := domain.CloneAmount(t.allowances[owner][t.custody])
	if allowance.Cmp(amount) < 0 {
		return domain.ErrInsufficientAllowance
	}
	if t.balance(owner).Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}

	if t.allowances[owner] == nil {
		t.allowances[owner] = make(map[domain.Account]*big.Int)
	}
	t.allowances[owner][t.custody] = allowance.Sub(allowance, amount)
	t.balances[owner] = new(big.Int).Sub(t.balance(owner), amount)
	t.balances[recipient] = new(big.Int).Add(t.balance(recipient), amount)
	return nil
}

func (t *MemoryToken) Transfer(ctx context.Context, recipient domain.Account, amount *big.Int) error {
	// the hook runs without the token lock so it can re-enter the ledger
	if t.OnTransfer != nil {
		if err := t.OnTransfer(ctx, recipient, amount); err != nil {
			return err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.balance(t.custody).Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}
	t.balances[t.custody] = new(big.Int).Sub(t.balance(t.custody), amount)
	t.balances[recipient] = new(big.Int).Add(t.balance(recipient), amount)
	return nil
}

// MemoryTokens is a TokenProvider over in-process tokens
type MemoryTokens struct {
	mu     sync.RWMutex
	tokens map[domain.Account]*MemoryToken
}

// NewMemoryTokens creates an empty token provider
func NewMemoryTokens() *MemoryTokens {
	return &MemoryTokens{tokens: make(map[domain.Account]*MemoryToken)}
}

// Add deploys token at address
func (p *MemoryTokens) Add(address domain.Account, token *MemoryToken) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tokens[address] = token
}

func (p *MemoryTokens) Token(address domain.Account) (Token, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	t, ok := p.tokens[address]
	if !ok {
		return nil, fmt.Errorf("no token deployed at %s", address.Hex())
	}
	return t, nil
}

type deposit struct {
	payer  domain.Account
	amount *big.Int
}

// MemoryBank keeps native deposits into custody and credits payouts to in-process balances
type MemoryBank struct {
	mu       sync.Mutex
	balances map[domain.Account]*big.Int
	deposits map[string]deposit
	next     uint64

	// OnTransfer, when set, runs during Transfer before the recipient is credited
	OnTransfer TransferHook
}

// NewMemoryBank creates an empty bank
func NewMemoryBank() *MemoryBank {
	return &MemoryBank{
		balances: make(map[domain.Account]*big.Int),
		deposits: make(map[string]deposit),
	}
}

// Deposit records a native payment from payer into custody and returns its reference
func (b *MemoryBank) Deposit(payer domain.Account, amount *big.Int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	ref := fmt.Sprintf("0x%064x", b.next)
	b.deposits[ref] = deposit{payer: payer, amount: domain.CloneAmount(amount)}
	return ref
}

// BalanceOf returns what has been paid out to account
func (b *MemoryBank) BalanceOf(account domain.Account) *big.Int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return domain.CloneAmount(b.balances[account])
}

func (b *MemoryBank) Collect(ctx context.Context, payer domain.Account, amount *big.Int, ref string) (string, error) {
	if ref == "" {
		return "", domain.ErrPaymentProofRequired
	}
	ref = strings.ToLower(ref)

	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.deposits[ref]
	if !ok || d.payer != payer || d.amount.Cmp(amount) != 0 {
		return "", domain.ErrInvalidPaymentProof
	}
	return ref, nil
}

func (b *MemoryBank) Transfer(ctx context.Context, recipient domain.Account, amount *big.Int) error {
	if b.OnTransfer != nil {
		if err := b.OnTransfer(ctx, recipient, amount); err != nil {
			return err
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[recipient] = new(big.Int).Add(domain.CloneAmount(b.balances[recipient]), amount)
	return nil
}

// MemoryTracker reports outcomes set by Settle. Unknown transfers stay pending.
type MemoryTracker struct {
	mu       sync.Mutex
	outcomes map[string]Outcome
}

// NewMemoryTracker creates a tracker with no settled transfers
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{outcomes: make(map[string]Outcome)}
}

// Settle records the outcome of txHash
func (m *MemoryTracker) Settle(txHash string, outcome Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[txHash] = outcome
}

func (m *MemoryTracker) Outcome(ctx context.Context, txHash string) (Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcomes[txHash], nil
}
