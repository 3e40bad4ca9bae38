package service

import (
	"Inventory/internal/model"
	"Inventory/internal/repo"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Моки для ItemRepository и StatsRepository
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, it *model.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.Item, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockStatsRepo struct{ mock.Mock }

func (m *mockStatsRepo) Summary(ctx context.Context) (model.InventorySummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.InventorySummary), args.Error(1)
}
func (m *mockStatsRepo) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ repo.StatsRepository = (*mockStatsRepo)(nil)

func newTestService() (*ItemService, *mockItemRepo, *mockStatsRepo) {
	ir := new(mockItemRepo)
	sr := new(mockStatsRepo)
	return NewItemService(ir, sr, zap.NewNop().Sugar()), ir, sr
}

func TestParseItemForm(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in, err := ParseItemForm(ItemForm{Name: " Test Item ", Description: "A test item", Price: "19.99", Quantity: "5"})
		require.NoError(t, err)
		assert.Equal(t, ItemInput{Name: "Test Item", Description: "A test item", Price: 19.99, Quantity: 5}, in)
	})

	t.Run("description is kept verbatim", func(t *testing.T) {
		in, err := ParseItemForm(ItemForm{Name: "x", Description: "  indented note\n", Price: "1"})
		require.NoError(t, err)
		assert.Equal(t, "  indented note\n", in.Description)
	})

	t.Run("empty quantity defaults to zero", func(t *testing.T) {
		in, err := ParseItemForm(ItemForm{Name: "x", Price: "1"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), in.Quantity)
	})

	bad := []struct {
		name  string
		form  ItemForm
		field string
	}{
		{"missing price", ItemForm{Name: "x", Quantity: "1"}, "price"},
		{"malformed price", ItemForm{Name: "x", Price: "abc"}, "price"},
		{"nan price", ItemForm{Name: "x", Price: "NaN"}, "price"},
		{"inf price", ItemForm{Name: "x", Price: "+Inf"}, "price"},
		{"malformed quantity", ItemForm{Name: "x", Price: "1", Quantity: "many"}, "quantity"},
		{"fractional quantity", ItemForm{Name: "x", Price: "1", Quantity: "2.5"}, "quantity"},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseItemForm(tc.form)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConstraintViolation)
			var cv *ConstraintViolation
			require.True(t, errors.As(err, &cv))
			assert.Equal(t, tc.field, cv.Field)
		})
	}

	t.Run("message carries parse failure", func(t *testing.T) {
		_, err := ParseItemForm(ItemForm{Name: "x", Price: "abc"})
		assert.EqualError(t, err, `price: invalid number "abc": invalid syntax`)
	})
}

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		svc, ir, _ := newTestService()
		ir.On("Create", mock.Anything, mock.MatchedBy(func(it *model.Item) bool {
			return it.Name == "Test Item" && it.Price == 19.99 && it.Quantity == 5
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Item).ID = 7
		}).Return(nil).Once()

		it, err := svc.Create(ctx, ItemInput{Name: "Test Item", Description: "A test item", Price: 19.99, Quantity: 5})
		require.NoError(t, err)
		assert.Equal(t, int64(7), it.ID)
		ir.AssertExpectations(t)
	})

	t.Run("duplicate name is a constraint violation", func(t *testing.T) {
		svc, ir, _ := newTestService()
		ir.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicateName).Once()

		it, err := svc.Create(ctx, ItemInput{Name: "dup", Price: 1})
		assert.Nil(t, it)
		assert.ErrorIs(t, err, ErrConstraintViolation)
		ir.AssertExpectations(t)
	})

	t.Run("validation happens before the repository", func(t *testing.T) {
		svc, ir, _ := newTestService()

		_, err := svc.Create(ctx, ItemInput{Name: "", Price: 1})
		assert.ErrorIs(t, err, ErrConstraintViolation)

		_, err = svc.Create(ctx, ItemInput{Name: strings.Repeat("n", MaxNameLength+1), Price: 1})
		assert.ErrorIs(t, err, ErrConstraintViolation)

		_, err = svc.Create(ctx, ItemInput{Name: "ok", Description: strings.Repeat("d", MaxDescriptionLength+1), Price: 1})
		assert.ErrorIs(t, err, ErrConstraintViolation)

		// длина считается в символах, не в байтах
		ir.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		_, err = svc.Create(ctx, ItemInput{Name: strings.Repeat("я", MaxNameLength), Price: 1})
		assert.NoError(t, err)

		ir.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("storage failure is wrapped, not classified", func(t *testing.T) {
		svc, ir, _ := newTestService()
		dbErr := errors.New("disk I/O error")
		ir.On("Create", mock.Anything, mock.Anything).Return(dbErr).Once()

		_, err := svc.Create(ctx, ItemInput{Name: "x", Price: 1})
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrConstraintViolation)
		assert.NotErrorIs(t, err, ErrItemNotFound)
	})
}

func TestItemService_GetListDelete(t *testing.T) {
	ctx := context.Background()
	svc, ir, _ := newTestService()

	ir.On("GetByID", mock.Anything, int64(1)).Return(&model.Item{ID: 1, Name: "a"}, nil).Once()
	ir.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound).Once()
	ir.On("ListAll", mock.Anything).Return([]model.Item{}, nil).Once()
	ir.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
	ir.On("Delete", mock.Anything, int64(2)).Return(gorm.ErrRecordNotFound).Once()

	it, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", it.Name)

	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrItemNotFound)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 2), ErrItemNotFound)

	ir.AssertExpectations(t)
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()
	svc, ir, _ := newTestService()

	want := map[string]any{
		"name":        "Updated Name",
		"description": "",
		"price":       20.0,
		"quantity":    int64(8),
	}
	ir.On("Update", mock.Anything, int64(3), want).
		Return(&model.Item{ID: 3, Name: "Updated Name", Price: 20, Quantity: 8}, nil).Once()
	ir.On("Update", mock.Anything, int64(4), mock.Anything).Return(nil, gorm.ErrRecordNotFound).Once()
	ir.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil, repo.ErrDuplicateName).Once()

	it, err := svc.Update(ctx, 3, ItemInput{Name: "Updated Name", Price: 20, Quantity: 8})
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", it.Name)

	_, err = svc.Update(ctx, 4, ItemInput{Name: "x", Price: 1})
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.Update(ctx, 5, ItemInput{Name: "x", Price: 1})
	assert.ErrorIs(t, err, ErrConstraintViolation)

	ir.AssertExpectations(t)
}

func TestItemService_SummaryAndPing(t *testing.T) {
	ctx := context.Background()
	svc, _, sr := newTestService()

	sr.On("Summary", mock.Anything).Return(model.InventorySummary{ItemCount: 2, TotalQuantity: 3, TotalValue: 4.5}, nil).Once()
	sr.On("Summary", mock.Anything).Return(model.InventorySummary{}, errors.New("boom")).Once()
	sr.On("Ping", mock.Anything).Return(nil).Once()

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.ItemCount)

	_, err = svc.Summary(ctx)
	assert.Error(t, err)

	assert.NoError(t, svc.Ping(ctx))
	sr.AssertExpectations(t)
}
