package registry_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/logger"
	"github.com/loketh/ledger/internal/mocks"
	"github.com/loketh/ledger/internal/registry"
	"github.com/loketh/ledger/internal/store"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

var (
	admin    = common.HexToAddress("0x0000000000000000000000000000000000000ad1")
	stranger = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	tokenUSD = common.HexToAddress("0x00000000000000000000000000000000000005d1")
	tokenDAI = common.HexToAddress("0x00000000000000000000000000000000000005d2")
	now      = time.Unix(1_700_000_000, 0)
)

type testRegistryMocks struct {
	ctrl      *gomock.Controller
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	store     store.Store
	registry  registry.TokenRegistry
}

func setupTestRegistry(t *testing.T) *testRegistryMocks {
	ctrl := gomock.NewController(t)

	tm := &testRegistryMocks{
		ctrl:      ctrl,
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		store:     store.NewMemoryStore(),
	}
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.registry = registry.NewTokenRegistry(admin, tm.store, tm.publisher, tm.clock)

	return tm
}

func TestTokenRegistry_RegisterToken(t *testing.T) {
	tm := setupTestRegistry(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	tm.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n *domain.Notification) error {
			assert.Equal(t, domain.NotificationTokenAdded, n.Type)
			assert.Equal(t, "USD", n.TokenName)
			assert.Equal(t, tokenUSD, *n.TokenAddress)
			assert.Equal(t, admin, *n.AddedBy)
			return nil
		})

	entry, err := tm.registry.RegisterToken(ctx, admin, "USD", tokenUSD)
	require.NoError(t, err)
	assert.Equal(t, domain.TokenEntry{Name: "USD", Address: tokenUSD, AddedBy: admin}, *entry)

	address, err := tm.registry.ResolveToken(ctx, "USD")
	require.NoError(t, err)
	assert.Equal(t, tokenUSD, address)

	count, err := tm.registry.TokenCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestTokenRegistry_RegisterTokenErrors(t *testing.T) {
	tests := []struct {
		name    string
		caller  domain.Account
		token   string
		address domain.Account
		err     error
	}{
		{"non admin", stranger, "DAI", tokenDAI, domain.ErrUnauthorized},
		{"unauthorized is checked first", stranger, "", domain.ZeroAccount, domain.ErrUnauthorized},
		{"empty name", admin, "", tokenDAI, domain.ErrInvalidName},
		{"reserved name", admin, domain.NATIVE_CURRENCY, tokenDAI, domain.ErrInvalidName},
		{"name is checked before address", admin, domain.NATIVE_CURRENCY, domain.ZeroAccount, domain.ErrInvalidName},
		{"zero address", admin, "DAI", domain.ZeroAccount, domain.ErrInvalidAddress},
		{"name taken", admin, "USD", tokenDAI, domain.ErrAlreadyRegistered},
		{"address taken", admin, "USDC", tokenUSD, domain.ErrAddressInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestRegistry(t)
			defer tm.ctrl.Finish()
			ctx := context.Background()

			// Exactly one notification, for the seed token
			tm.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			_, err := tm.registry.RegisterToken(ctx, admin, "USD", tokenUSD)
			require.NoError(t, err)

			_, err = tm.registry.RegisterToken(ctx, tt.caller, tt.token, tt.address)
			assert.ErrorIs(t, err, tt.err)

			count, err := tm.registry.TokenCount(ctx)
			require.NoError(t, err)
			assert.Equal(t, uint64(1), count)
		})
	}
}

func TestTokenRegistry_PublishFailureKeepsRegistration(t *testing.T) {
	tm := setupTestRegistry(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	tm.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	_, err := tm.registry.RegisterToken(ctx, admin, "USD", tokenUSD)
	require.NoError(t, err)

	address, err := tm.registry.ResolveToken(ctx, "USD")
	require.NoError(t, err)
	assert.Equal(t, tokenUSD, address)
}

func TestTokenRegistry_ResolveCurrency(t *testing.T) {
	tm := setupTestRegistry(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	tm.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	_, err := tm.registry.RegisterToken(ctx, admin, "USD", tokenUSD)
	require.NoError(t, err)

	currency, err := tm.registry.ResolveCurrency(ctx, domain.NATIVE_CURRENCY)
	require.NoError(t, err)
	assert.True(t, currency.IsNative())

	currency, err = tm.registry.ResolveCurrency(ctx, "USD")
	require.NoError(t, err)
	assert.Equal(t, domain.TokenCurrency("USD", tokenUSD), currency)

	_, err = tm.registry.ResolveCurrency(ctx, "EUR")
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)

	_, err = tm.registry.ResolveCurrency(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)

	address, err := tm.registry.ResolveToken(ctx, "EUR")
	require.NoError(t, err)
	assert.True(t, domain.IsZeroAccount(address))

	// the native currency is never a registered token
	address, err = tm.registry.ResolveToken(ctx, domain.NATIVE_CURRENCY)
	require.NoError(t, err)
	assert.True(t, domain.IsZeroAccount(address))
}

func TestTokenRegistry_Enumeration(t *testing.T) {
	tm := setupTestRegistry(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	tm.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	_, err := tm.registry.RegisterToken(ctx, admin, "USD", tokenUSD)
	require.NoError(t, err)
	_, err = tm.registry.RegisterToken(ctx, admin, "DAI", tokenDAI)
	require.NoError(t, err)

	name, err := tm.registry.TokenNameAt(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "DAI", name)

	_, err = tm.registry.TokenNameAt(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidTokenIndex)

	tokens, err := tm.registry.Tokens(ctx)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "USD", tokens[0].Name)
	assert.Equal(t, "DAI", tokens[1].Name)
	assert.Equal(t, admin, tm.registry.Admin())
}
