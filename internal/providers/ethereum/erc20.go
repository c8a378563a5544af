package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/loketh/ledger/internal/adapter"
	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/payment"
)

const erc20ABIJSON = `[
{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"recipient","type":"address"},{"name":"amount","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"sender","type":"address"},{"name":"recipient","type":"address"},{"name":"amount","type":"uint256"}],"name":"transferFrom","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"value","type":"uint256"}],"name":"Transfer","type":"event"}
]`

var erc20ABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		panic(fmt.Sprintf("failed to parse ERC20 ABI: %v", err))
	}
	return parsed
}()

// erc20Token is an ERC-20 contract operated from the custody account
type erc20Token struct {
	address    common.Address
	client     adapter.EthClient
	transactor Transactor
}

// NewERC20Token returns the token at address. Transfers are sent by the transactor.
func NewERC20Token(address common.Address, client adapter.EthClient, transactor Transactor) payment.Token {
	return &erc20Token{address: address, client: client, transactor: transactor}
}

func (t *erc20Token) call(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	data, err := erc20ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := t.client.CallContract(ctx, ethereum.CallMsg{
		To:   &t.address,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}

	var value *big.Int
	if err := erc20ABI.UnpackIntoInterface(&value, method, result); err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}

	return value, nil
}

// BalanceOf fetches the token balance of account
func (t *erc20Token) BalanceOf(ctx context.Context, account domain.Account) (*big.Int, error) {
	return t.call(ctx, "balanceOf", account)
}

// Allowance fetches how much spender may pull from owner
func (t *erc20Token) Allowance(ctx context.Context, owner, spender domain.Account) (*big.Int, error) {
	return t.call(ctx, "allowance", owner, spender)
}

// TransferFrom pulls amount from owner to recipient. The allowance and balance
// are checked first so the caller gets a payment error instead of a revert.
func (t *erc20Token) TransferFrom(ctx context.Context, owner, recipient domain.Account, amount *big.Int) error {
	allowance, err := t.Allowance(ctx, owner, t.transactor.Address())
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) < 0 {
		return domain.ErrInsufficientAllowance
	}

	balance, err := t.BalanceOf(ctx, owner)
	if err != nil {
		return err
	}
	if balance.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}

	data, err := erc20ABI.Pack("transferFrom", owner, recipient, amount)
	if err != nil {
		return fmt.Errorf("failed to pack data: %w", err)
	}

	return t.send(ctx, data)
}

// Transfer sends amount from custody to recipient
func (t *erc20Token) Transfer(ctx context.Context, recipient domain.Account, amount *big.Int) error {
	data, err := erc20ABI.Pack("transfer", recipient, amount)
	if err != nil {
		return fmt.Errorf("failed to pack data: %w", err)
	}

	return t.send(ctx, data)
}

func (t *erc20Token) send(ctx context.Context, data []byte) error {
	receipt, err := t.transactor.Send(ctx, t.address, nil, data)
	if err != nil {
		return err
	}

	// tokens that return false instead of reverting emit no Transfer log
	if !hasTransferLog(receipt, t.address) {
		return fmt.Errorf("%w: no Transfer event in %s", ErrTransactionReverted, receipt.TxHash.Hex())
	}

	return nil
}

func hasTransferLog(receipt *types.Receipt, token common.Address) bool {
	transferID := erc20ABI.Events["Transfer"].ID
	for _, l := range receipt.Logs {
		if l != nil && l.Address == token && len(l.Topics) > 0 && l.Topics[0] == transferID {
			return true
		}
	}
	return false
}

type erc20Tokens struct {
	client     adapter.EthClient
	transactor Transactor
	tokens     sync.Map // common.Address -> payment.Token
}

// NewTokenProvider creates a provider of ERC-20 tokens operated by the transactor
func NewTokenProvider(client adapter.EthClient, transactor Transactor) payment.TokenProvider {
	return &erc20Tokens{client: client, transactor: transactor}
}

func (p *erc20Tokens) Token(address domain.Account) (payment.Token, error) {
	if domain.IsZeroAccount(address) {
		return nil, domain.ErrInvalidAddress
	}
	if t, ok := p.tokens.Load(address); ok {
		return t.(payment.Token), nil
	}
	t, _ := p.tokens.LoadOrStore(address, NewERC20Token(address, p.client, p.transactor))
	return t.(payment.Token), nil
}

type nativeBank struct {
	client     adapter.EthClient
	transactor Transactor
}

// NewNativeBank verifies native deposits into custody and pays out from it
func NewNativeBank(client adapter.EthClient, transactor Transactor) payment.NativeBank {
	return &nativeBank{client: client, transactor: transactor}
}

// Collect checks that the mined transaction ref paid exactly amount from payer to custody
func (n *nativeBank) Collect(ctx context.Context, payer domain.Account, amount *big.Int, ref string) (string, error) {
	if ref == "" {
		return "", domain.ErrPaymentProofRequired
	}
	raw, err := hexutil.Decode(ref)
	if err != nil || len(raw) != common.HashLength {
		return "", domain.ErrInvalidPaymentProof
	}
	hash := common.BytesToHash(raw)

	tx, isPending, err := n.client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return "", domain.ErrInvalidPaymentProof
		}
		return "", fmt.Errorf("failed to fetch payment transaction: %w", err)
	}
	if isPending {
		return "", fmt.Errorf("%w: %s not mined yet", domain.ErrInvalidPaymentProof, hash.Hex())
	}

	receipt, err := n.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return "", fmt.Errorf("failed to fetch payment receipt: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return "", fmt.Errorf("%w: %s reverted", domain.ErrInvalidPaymentProof, hash.Hex())
	}

	if tx.To() == nil || *tx.To() != n.transactor.Address() {
		return "", fmt.Errorf("%w: not sent to custody", domain.ErrInvalidPaymentProof)
	}
	if tx.Value().Cmp(amount) != 0 {
		return "", fmt.Errorf("%w: paid %s", domain.ErrInvalidPaymentProof, tx.Value())
	}
	sender, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil || sender != payer {
		return "", fmt.Errorf("%w: not sent by the buyer", domain.ErrInvalidPaymentProof)
	}

	return hash.Hex(), nil
}

func (n *nativeBank) Transfer(ctx context.Context, recipient domain.Account, amount *big.Int) error {
	_, err := n.transactor.Send(ctx, recipient, amount, nil)
	return err
}
