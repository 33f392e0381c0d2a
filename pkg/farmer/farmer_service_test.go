package farmer_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parth-agrotech/domain"
	"parth-agrotech/entities"
	"parth-agrotech/internal/testutil"
	"parth-agrotech/pkg/farmer"
)

type recordingNotifier struct {
	farmers []*entities.Farmer
}

func (n *recordingNotifier) NotifyContactInquiry(*entities.ContactInquiry) {}

func (n *recordingNotifier) Wait() {}

func (n *recordingNotifier) NotifyFarmerRegistration(f *entities.Farmer) {
	n.farmers = append(n.farmers, f)
}

func newService(t *testing.T) (farmer.FarmerService, *recordingNotifier) {
	db := testutil.NewTestDB(t)
	notifier := &recordingNotifier{}
	return farmer.NewFarmerService(farmer.NewFarmerRepository(db), notifier), notifier
}

func registerRequest() domain.CreateFarmerRequest {
	return domain.CreateFarmerRequest{
		Name:          "Ramesh Patel",
		Phone:         "9876543210",
		Village:       "Kheda",
		District:      "Anand",
		FarmSize:      5.5,
		PotatoVariety: "Kufri Pukhraj",
	}
}

func ptr[T any](v T) *T { return &v }

func TestRegisterFarmerAssignsDefaults(t *testing.T) {
	ctx := context.Background()
	svc, notifier := newService(t)

	f, err := svc.RegisterFarmer(ctx, registerRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, f.ID)
	assert.Equal(t, entities.FarmerStatusPending, f.Status)
	assert.False(t, f.CreatedAt.IsZero())
	require.Len(t, notifier.farmers, 1)
	assert.Equal(t, f.ID, notifier.farmers[0].ID)

	got, err := svc.GetFarmerByID(ctx, f.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Patel", got.Name)
	assert.Equal(t, 5.5, got.FarmSize)
}

func TestGetFarmerNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.GetFarmerByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFarmerNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetFarmerByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrFarmerNotFound)
}

func TestUpdateFarmerPatchesOnlyGivenFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	f, err := svc.RegisterFarmer(ctx, registerRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateFarmer(ctx, f.ID.String(), domain.UpdateFarmerRequest{
		Village:  ptr("Nadiad"),
		FarmSize: ptr(7.25),
	})
	require.NoError(t, err)
	assert.Equal(t, "Nadiad", updated.Village)
	assert.Equal(t, 7.25, updated.FarmSize)
	assert.Equal(t, "Ramesh Patel", updated.Name)
	assert.Equal(t, entities.FarmerStatusPending, updated.Status)

	same, err := svc.UpdateFarmer(ctx, f.ID.String(), domain.UpdateFarmerRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Nadiad", same.Village)

	_, err = svc.UpdateFarmer(ctx, uuid.NewString(), domain.UpdateFarmerRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrFarmerNotFound)
}

func TestUpdateFarmerStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	f, err := svc.RegisterFarmer(ctx, registerRequest())
	require.NoError(t, err)

	approved, err := svc.UpdateFarmerStatus(ctx, f.ID.String(), entities.FarmerStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entities.FarmerStatusApproved, approved.Status)

	again, err := svc.UpdateFarmerStatus(ctx, f.ID.String(), entities.FarmerStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, approved.UpdatedAt, again.UpdatedAt)

	_, err = svc.UpdateFarmerStatus(ctx, f.ID.String(), "")
	assert.ErrorIs(t, err, domain.ErrFarmerStatusMissing)

	_, err = svc.UpdateFarmerStatus(ctx, uuid.NewString(), entities.FarmerStatusRejected)
	assert.ErrorIs(t, err, domain.ErrFarmerNotFound)
}

func TestDeleteFarmer(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	svc := farmer.NewFarmerService(farmer.NewFarmerRepository(db), &recordingNotifier{})

	free := testutil.CreateFarmer(t, db, "Suresh")
	require.NoError(t, svc.DeleteFarmer(ctx, free.ID.String()))
	assert.ErrorIs(t, svc.DeleteFarmer(ctx, free.ID.String()), domain.ErrFarmerNotFound)

	owner := testutil.CreateFarmer(t, db, "Mahesh")
	storage := testutil.CreateColdStorage(t, db, "Deesa Cold Store", 1000)
	require.NoError(t, db.Create(&entities.InventoryLot{
		FarmerID:  owner.ID,
		StorageID: storage.ID,
		Quantity:  10,
		Variety:   "Kufri Jyoti",
		Grade:     entities.LotGradeA,
		EntryDate: "2024-02-01",
	}).Error)

	err := svc.DeleteFarmer(ctx, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrFarmerHasInventory)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.GetFarmerByID(ctx, owner.ID.String())
	assert.NoError(t, err)
}
