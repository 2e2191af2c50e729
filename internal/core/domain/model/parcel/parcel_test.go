package parcel_test

import (
	"testing"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func stringPtr(v string) *string { return &v }

func TestNewParcel(t *testing.T) {
	t.Run("valid parcel starts at the beginning of the pipeline", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()

		p, err := parcel.NewParcel(id, orderID, "TRK-001")
		require.NoError(t, err)

		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.Equal(t, status.PurchasedFromSeller, p.Status())
		assert.Equal(t, "TRK-001", p.TrackingNumber())
		assert.Equal(t, int64(0), p.Version())
		require.NoError(t, p.Validate())
	})

	t.Run("empty tracking number is rejected", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero ids are rejected", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.UUID{}, kernel.NewUUID(), "TRK-001")
		require.Error(t, err)

		_, err = parcel.NewParcel(kernel.NewUUID(), kernel.UUID{}, "TRK-001")
		require.Error(t, err)
	})

	t.Run("zero value parcel fails validation", func(t *testing.T) {
		var p parcel.Parcel
		assert.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestRestoreParcel(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()

	p, err := parcel.RestoreParcel(
		id, orderID,
		status.ArrivedHub,
		"TRK-002",
		floatPtr(2.4), floatPtr(120),
		[]string{"https://img/1.jpg"},
		"WH-7",
		3,
	)
	require.NoError(t, err)

	assert.Equal(t, status.ArrivedHub, p.Status())
	assert.Equal(t, 2.4, *p.Weight())
	assert.Equal(t, float64(120), *p.DeclaredValue())
	assert.Equal(t, []string{"https://img/1.jpg"}, p.PhotoURLs())
	assert.Equal(t, "WH-7", p.InternalTrackingCode())
	assert.Equal(t, int64(3), p.Version())

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, restoreErr := parcel.RestoreParcel(
			id, orderID, status.Unknown, "TRK-002", nil, nil, nil, "", 0)
		assert.ErrorIs(t, restoreErr, errs.ErrValueIsInvalid)
	})
}

func TestParcelChangeStatus(t *testing.T) {
	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "TRK-003")
	require.NoError(t, err)

	require.NoError(t, p.ChangeStatus(status.ReceivedAtOrigin))
	assert.Equal(t, status.ReceivedAtOrigin, p.Status())

	assert.ErrorIs(t, p.ChangeStatus(status.Unknown), errs.ErrValueIsInvalid)
	assert.Equal(t, status.ReceivedAtOrigin, p.Status())
}

func TestParcelFlagIssue(t *testing.T) {
	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "TRK-004")
	require.NoError(t, err)
	require.NoError(t, p.ChangeStatus(status.OutForDelivery))

	p.FlagIssue()
	assert.Equal(t, status.IssueReported, p.Status())
}

func TestParcelApplyPatch(t *testing.T) {
	p, err := parcel.RestoreParcel(
		kernel.NewUUID(), kernel.NewUUID(),
		status.QCChecked, "TRK-005",
		floatPtr(1.0), nil, nil, "", 0,
	)
	require.NoError(t, err)

	t.Run("empty patch changes nothing", func(t *testing.T) {
		p.ApplyPatch(parcel.Patch{})
		assert.Equal(t, 1.0, *p.Weight())
		assert.Nil(t, p.DeclaredValue())
	})

	t.Run("set fields replace current values", func(t *testing.T) {
		p.ApplyPatch(parcel.Patch{
			Weight:               floatPtr(1.5),
			DeclaredValue:        floatPtr(80),
			PhotoURLs:            []string{"https://img/qc.jpg"},
			InternalTrackingCode: stringPtr("WH-12"),
		})

		assert.Equal(t, 1.5, *p.Weight())
		assert.Equal(t, float64(80), *p.DeclaredValue())
		assert.Equal(t, []string{"https://img/qc.jpg"}, p.PhotoURLs())
		assert.Equal(t, "WH-12", p.InternalTrackingCode())
	})
}

func TestPatchIsEmpty(t *testing.T) {
	assert.True(t, parcel.Patch{}.IsEmpty())
	assert.False(t, parcel.Patch{Weight: floatPtr(1)}.IsEmpty())
}

func TestSnapshotRoundTrip(t *testing.T) {
	p, err := parcel.RestoreParcel(
		kernel.NewUUID(), kernel.NewUUID(),
		status.Repacking, "TRK-006",
		floatPtr(3.2), floatPtr(45),
		[]string{"https://img/a.jpg", "https://img/b.jpg"},
		"WH-3",
		1,
	)
	require.NoError(t, err)

	snap := p.Snapshot()
	assert.True(t, snap.ID().IsEqual(p.ID()))
	assert.Equal(t, p.Status(), snap.Status())
	assert.Equal(t, p.TrackingNumber(), snap.TrackingNumber())
	assert.Equal(t, p.PhotoURLs(), snap.PhotoURLs())

	t.Run("materializing from snapshot restores the record at version zero", func(t *testing.T) {
		restored, fromErr := parcel.FromSnapshot(p.OrderID(), snap)
		require.NoError(t, fromErr)

		assert.True(t, restored.IsEqual(p))
		assert.True(t, restored.OrderID().IsEqual(p.OrderID()))
		assert.Equal(t, p.Status(), restored.Status())
		assert.Equal(t, int64(0), restored.Version())
	})
}

func TestRestoreSnapshotValidation(t *testing.T) {
	_, err := parcel.RestoreSnapshot(kernel.UUID{}, status.QCChecked, "TRK", nil, nil, nil, "")
	require.Error(t, err)

	_, err = parcel.RestoreSnapshot(kernel.NewUUID(), status.Unknown, "TRK", nil, nil, nil, "")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
