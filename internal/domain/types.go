package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Account identifies a caller, organizer, participant or token contract
type Account = common.Address

// ZeroAccount is the null account
var ZeroAccount = Account{}

// ParseAccount parses a hex encoded address, with or without the 0x prefix
func ParseAccount(s string) (Account, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return ZeroAccount, ErrInvalidAddress
	}
	return common.HexToAddress(s), nil
}

// IsZeroAccount checks if the account is the null address
func IsZeroAccount(a Account) bool {
	return a == ZeroAccount
}

// Currency is the settlement currency of an event, resolved once at creation.
// A zero Token means the native currency.
type Currency struct {
	Name  string  `json:"name"`
	Token Account `json:"token"`
}

// NativeCurrency returns the native currency
func NativeCurrency() Currency {
	return Currency{Name: NATIVE_CURRENCY}
}

// TokenCurrency returns a currency backed by a registered token contract
func TokenCurrency(name string, token Account) Currency {
	return Currency{Name: name, Token: token}
}

// IsNative reports whether payments in this currency move the native asset
func (c Currency) IsNative() bool {
	return IsZeroAccount(c.Token)
}

// Event is a sellable, time-bounded offering.
// Name, Organizer, StartTime, EndTime, Price, Quota and Currency never change after creation;
// SoldCount and Collected only change through purchases and withdrawals.
type Event struct {
	ID        uint64   `json:"id"`
	Name      string   `json:"name"`
	Organizer Account  `json:"organizer"`
	StartTime int64    `json:"start_time"`
	EndTime   int64    `json:"end_time"`
	Price     *big.Int `json:"price"`
	Quota     uint64   `json:"quota"`
	SoldCount uint64   `json:"sold_count"`
	Collected *big.Int `json:"collected"`
	Currency  Currency `json:"currency"`
}

// Clone returns a deep copy safe to hand out as a read-only snapshot
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	c.Price = CloneAmount(e.Price)
	c.Collected = CloneAmount(e.Collected)
	return &c
}

// Ended reports whether the event is over at the given unix time
func (e *Event) Ended(now int64) bool {
	return now >= e.EndTime
}

// SoldOut reports whether every ticket of the quota has been issued
func (e *Event) SoldOut() bool {
	return e.SoldCount >= e.Quota
}

// TokenEntry is a registered currency name mapped to a token contract
type TokenEntry struct {
	Name    string  `json:"name"`
	Address Account `json:"address"`
	AddedBy Account `json:"added_by"`
}

// Purchase is one successful ticket purchase. Sequence is globally increasing
// in commit order so the tickets-by-participant index can be rebuilt from it.
type Purchase struct {
	EventID     uint64  `json:"event_id"`
	Participant Account `json:"participant"`
	Sequence    uint64  `json:"sequence"`
}

// CloneAmount copies an amount, treating nil as zero
func CloneAmount(a *big.Int) *big.Int {
	if a == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a)
}

// ParseAmount parses a base-10 non-negative integer amount
func ParseAmount(s string) (*big.Int, bool) {
	if s == "" {
		return new(big.Int), true
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, false
	}
	return v, true
}
