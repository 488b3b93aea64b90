package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Samirun-Shuvo/inventory-ewmgl/models"
	"github.com/Samirun-Shuvo/inventory-ewmgl/store"
)

func seedAvailableProduct(t *testing.T, m *Memory) models.Product {
	t.Helper()
	p := models.Product{
		ProductType: "Laptop",
		Brand:       "Dell",
		ServiceTag:  "SVC-100",
		Status:      models.ProductStatusAvailable,
	}
	id, err := m.Products().Insert(context.Background(), p)
	require.NoError(t, err)
	p.ID = id
	return p
}

func TestAssignConcurrentSingleWinner(t *testing.T) {
	m := New()
	ctx := context.Background()
	p := seedAvailableProduct(t, m)

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = m.Assignments().Assign(ctx, models.Assignment{
				EmployeeID: primitive.NewObjectID(),
				ProductID:  p.ID,
				Status:     models.AssignmentStatusActive,
			})
		}(i)
	}
	wg.Wait()

	var won, conflicted int
	for _, err := range errs {
		switch err {
		case nil:
			won++
		case store.ErrConflict, store.ErrUnavailable:
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, won, "exactly one concurrent assign may succeed")
	assert.Equal(t, attempts-1, conflicted)

	count, err := m.Assignments().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	got, err := m.Products().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusAssigned, got.Status)
}

func TestAssignGuards(t *testing.T) {
	m := New()
	ctx := context.Background()

	_, err := m.Assignments().Assign(ctx, models.Assignment{ProductID: primitive.NewObjectID()})
	assert.Equal(t, store.ErrNotFound, err)

	p := seedAvailableProduct(t, m)
	upd := models.ProductStatusDamaged
	require.NoError(t, m.Products().Update(ctx, p.ID, store.ProductUpdate{Status: &upd}))

	_, err = m.Assignments().Assign(ctx, models.Assignment{ProductID: p.ID})
	assert.Equal(t, store.ErrUnavailable, err)
}

func TestReleaseRestoresProduct(t *testing.T) {
	m := New()
	ctx := context.Background()
	p := seedAvailableProduct(t, m)

	id, err := m.Assignments().Assign(ctx, models.Assignment{ProductID: p.ID, Status: models.AssignmentStatusActive})
	require.NoError(t, err)

	require.NoError(t, m.Assignments().Release(ctx, id))

	got, err := m.Products().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProductStatusAvailable, got.Status)

	assert.Equal(t, store.ErrNotFound, m.Assignments().Release(ctx, id))
}

func TestReleaseToleratesDeletedProduct(t *testing.T) {
	m := New()
	ctx := context.Background()
	p := seedAvailableProduct(t, m)

	id, err := m.Assignments().Assign(ctx, models.Assignment{ProductID: p.ID, Status: models.AssignmentStatusActive})
	require.NoError(t, err)

	require.NoError(t, m.Products().Delete(ctx, p.ID))
	assert.NoError(t, m.Assignments().Release(ctx, id))

	count, err := m.Assignments().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestProductUpdateDoesNotResetAbsentFields(t *testing.T) {
	m := New()
	ctx := context.Background()
	p := seedAvailableProduct(t, m)

	ram := "32GB"
	require.NoError(t, m.Products().Update(ctx, p.ID, store.ProductUpdate{RAM: &ram}))

	got, err := m.Products().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "32GB", got.RAM)
	assert.Equal(t, "Dell", got.Brand)
	assert.Equal(t, "SVC-100", got.ServiceTag)
}
