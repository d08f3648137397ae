package item

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created *Item
	byID    map[string]*Item
}

func (f *fakeRepo) Create(_ context.Context, it *Item) error {
	it.ID = "item-1"
	f.created = it
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Item, error) {
	if it, ok := f.byID[id]; ok {
		return it, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*Item, int, error) {
	return nil, 0, nil
}

func (f *fakeRepo) Update(_ context.Context, it *Item) error {
	f.byID[it.ID] = it
	return nil
}

func (f *fakeRepo) UpdateImageURL(_ context.Context, _ string, _ *string) error { return nil }
func (f *fakeRepo) Delete(_ context.Context, _ string) error                    { return nil }

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name:    "blank name",
			req:     CreateRequest{Name: "  ", PricePerDay: decimal.NewFromInt(10), StockQuantity: 1},
			wantErr: ErrEmptyName,
		},
		{
			name:    "negative price",
			req:     CreateRequest{Name: "Tent", PricePerDay: decimal.NewFromInt(-1), StockQuantity: 1},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "zero stock",
			req:     CreateRequest{Name: "Tent", PricePerDay: decimal.NewFromInt(10), StockQuantity: 0},
			wantErr: ErrInvalidStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeRepo{}, nil, nil)
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateTrimsName(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil, nil)

	it, err := svc.Create(context.Background(), CreateRequest{
		Name:          "  Tent  ",
		PricePerDay:   decimal.NewFromInt(50),
		Available:     true,
		StockQuantity: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Tent", it.Name)
	assert.Equal(t, 3, it.StockQuantity)
	require.NotNil(t, repo.created)
}

func TestUpdateValidation(t *testing.T) {
	existing := &Item{
		ID:            "item-1",
		Name:          "Tent",
		PricePerDay:   decimal.NewFromInt(50),
		StockQuantity: 3,
	}
	repo := &fakeRepo{byID: map[string]*Item{"item-1": existing}}
	svc := NewService(repo, nil, nil)

	blank := "  "
	_, err := svc.Update(context.Background(), "item-1", UpdateRequest{Name: &blank})
	assert.ErrorIs(t, err, ErrEmptyName)

	negative := decimal.NewFromInt(-5)
	_, err = svc.Update(context.Background(), "item-1", UpdateRequest{PricePerDay: &negative})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.Update(context.Background(), "missing", UpdateRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}
