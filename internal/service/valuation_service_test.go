package service

import (
	"context"
	"errors"
	"testing"

	"solana-money-mover/internal/core/domain"
	"solana-money-mover/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValue_NativeRemainderAfterFeeReserve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockPriceOracle(ctrl)
	oracle.EXPECT().GetPrice(gomock.Any(), domain.NativeAssetID).Return(100.0, nil)

	f := NewValuationFilter(oracle, 5.0, 0.001, newTestLogger())

	v, err := f.Value(context.Background(), &domain.ScanResult{
		OwnerAddress:  testOwner,
		NativeBalance: 1.0,
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.999, v.NativeTransferAmount, 1e-9)
	assert.InDelta(t, 99.9, v.NativeUSDValue, 1e-9)
	assert.InDelta(t, 99.9, v.TotalValueUSD, 1e-9)
	assert.Empty(t, v.Transferable)
}

func TestValue_NativeBelowFeeReserve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockPriceOracle(ctrl)
	// No GetPrice call: nothing to transfer natively.

	f := NewValuationFilter(oracle, 5.0, 0.001, newTestLogger())

	v, err := f.Value(context.Background(), &domain.ScanResult{
		OwnerAddress:  testOwner,
		NativeBalance: 0.0005,
	})

	require.NoError(t, err)
	assert.Zero(t, v.NativeTransferAmount)
	assert.Zero(t, v.TotalValueUSD)
}

func TestValue_TokenThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockPriceOracle(ctrl)
	oracle.EXPECT().GetPrices(gomock.Any(), []string{"MintBig", "MintSmall"}).Return(map[string]float64{
		"MintBig":   1.0,
		"MintSmall": 1.0,
	}, nil)

	f := NewValuationFilter(oracle, 5.0, 0.001, newTestLogger())

	v, err := f.Value(context.Background(), &domain.ScanResult{
		OwnerAddress: testOwner,
		Holdings: []domain.Holding{
			{Mint: "MintBig", RawAmount: 10_000_000, Decimals: 6},  // $10
			{Mint: "MintSmall", RawAmount: 3_000_000, Decimals: 6}, // $3, under threshold
		},
	})

	require.NoError(t, err)
	require.Len(t, v.Transferable, 1)
	assert.Equal(t, "MintBig", v.Transferable[0].Mint)
	assert.InDelta(t, 10.0, v.Transferable[0].USDValue, 1e-9)
	assert.InDelta(t, 10.0, v.TotalValueUSD, 1e-9)
}

func TestValue_ExactThresholdExcluded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockPriceOracle(ctrl)
	oracle.EXPECT().GetPrices(gomock.Any(), gomock.Any()).Return(map[string]float64{"MintEdge": 5.0}, nil)

	f := NewValuationFilter(oracle, 5.0, 0.001, newTestLogger())

	v, err := f.Value(context.Background(), &domain.ScanResult{
		OwnerAddress: testOwner,
		Holdings: []domain.Holding{
			{Mint: "MintEdge", RawAmount: 1_000_000, Decimals: 6}, // exactly $5
		},
	})

	require.NoError(t, err)
	assert.Empty(t, v.Transferable)
}

func TestValue_MissingTokenPriceExcluded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockPriceOracle(ctrl)
	oracle.EXPECT().GetPrices(gomock.Any(), gomock.Any()).Return(map[string]float64{
		"MintPriced": 2.0,
	}, nil)

	f := NewValuationFilter(oracle, 5.0, 0.001, newTestLogger())

	v, err := f.Value(context.Background(), &domain.ScanResult{
		OwnerAddress: testOwner,
		Holdings: []domain.Holding{
			{Mint: "MintPriced", RawAmount: 10_000_000, Decimals: 6},
			{Mint: "MintUnpriced", RawAmount: 999_000_000, Decimals: 6},
		},
	})

	require.NoError(t, err)
	require.Len(t, v.Transferable, 1)
	assert.Equal(t, "MintPriced", v.Transferable[0].Mint)
	assert.InDelta(t, 20.0, v.TotalValueUSD, 1e-9)
}

func TestValue_OracleFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockPriceOracle(ctrl)
	oracle.EXPECT().GetPrice(gomock.Any(), domain.NativeAssetID).Return(0.0, errors.New("price api down"))
	oracle.EXPECT().GetPrices(gomock.Any(), gomock.Any()).Return(nil, errors.New("price api down"))

	f := NewValuationFilter(oracle, 5.0, 0.001, newTestLogger())

	v, err := f.Value(context.Background(), &domain.ScanResult{
		OwnerAddress:  testOwner,
		NativeBalance: 1.0,
		Holdings: []domain.Holding{
			{Mint: "MintAAA", RawAmount: 10_000_000, Decimals: 6},
		},
	})

	require.NoError(t, err)
	// Native still moves (amount is known without a price) but contributes
	// no USD value; unpriced tokens are excluded entirely.
	assert.InDelta(t, 0.999, v.NativeTransferAmount, 1e-9)
	assert.Zero(t, v.NativeUSDValue)
	assert.Empty(t, v.Transferable)
	assert.Zero(t, v.TotalValueUSD)
}

func TestValue_DuplicateMintsPricedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockPriceOracle(ctrl)
	oracle.EXPECT().GetPrices(gomock.Any(), []string{"MintAAA"}).Return(map[string]float64{"MintAAA": 1.0}, nil)

	f := NewValuationFilter(oracle, 5.0, 0.001, newTestLogger())

	v, err := f.Value(context.Background(), &domain.ScanResult{
		OwnerAddress: testOwner,
		Holdings: []domain.Holding{
			{Mint: "MintAAA", RawAmount: 10_000_000, Decimals: 6},
			{Mint: "MintAAA", RawAmount: 20_000_000, Decimals: 6},
		},
	})

	require.NoError(t, err)
	assert.Len(t, v.Transferable, 2)
	assert.InDelta(t, 30.0, v.TotalValueUSD, 1e-9)
}
