package medication_test

import (
	"testing"

	"drones/internal/core/domain/model/kernel"
	"drones/internal/core/domain/model/medication"
	"drones/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weight(t *testing.T, grams int) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(grams)
	require.NoError(t, err)
	return w
}

func TestNewItem(t *testing.T) {
	tests := []struct {
		name        string
		itemName    string
		code        string
		image       []byte
		contentType string
		wantErr     error
	}{
		{name: "valid without image", itemName: "Aspirin_500-mg", code: "ASP_500-A"},
		{name: "valid with image", itemName: "Ibuprofen", code: "IBU1", image: []byte{0x89, 0x50}, contentType: "image/png"},
		{name: "empty name", itemName: "", code: "ASP", wantErr: errs.ErrValueIsRequired},
		{name: "name with space", itemName: "Aspirin 500", code: "ASP", wantErr: errs.ErrValueIsInvalid},
		{name: "name with dot", itemName: "Aspirin.500", code: "ASP", wantErr: errs.ErrValueIsInvalid},
		{name: "empty code", itemName: "Aspirin", code: "", wantErr: errs.ErrValueIsRequired},
		{name: "lower case code", itemName: "Aspirin", code: "asp", wantErr: errs.ErrValueIsInvalid},
		{name: "image without content type", itemName: "Aspirin", code: "ASP", image: []byte{1}, wantErr: errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := medication.NewItem(tt.itemName, tt.code, weight(t, 50), tt.image, tt.contentType)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, item)
				return
			}
			require.NoError(t, err)
			require.NoError(t, item.Validate())
			assert.Equal(t, tt.itemName, item.Name())
			assert.Equal(t, tt.code, item.Code())
			assert.Equal(t, 50, item.Weight().Grams())
			assert.Equal(t, tt.image, item.Image())
			assert.Equal(t, tt.contentType, item.ImageContentType())
			assert.Nil(t, item.DroneID())
		})
	}
}

func TestNewItem_InvalidWeight(t *testing.T) {
	_, err := medication.NewItem("Aspirin", "ASP", kernel.Weight{}, nil, "")
	require.ErrorIs(t, err, kernel.ErrWeightIsNotConstructed)
}

func TestItem_AttachTo(t *testing.T) {
	item, err := medication.NewItem("Aspirin", "ASP", weight(t, 50), nil, "")
	require.NoError(t, err)

	require.NoError(t, item.AttachTo(3))
	require.NoError(t, item.AttachTo(3))
	require.NotNil(t, item.DroneID())
	assert.Equal(t, int64(3), *item.DroneID())

	require.ErrorIs(t, item.AttachTo(4), medication.ErrItemIsOnAnotherDrone)
	require.ErrorIs(t, item.AttachTo(0), errs.ErrValueIsInvalid)
	assert.Equal(t, int64(3), *item.DroneID())
}

func TestItem_AssignID(t *testing.T) {
	item, err := medication.NewItem("Aspirin", "ASP", weight(t, 50), nil, "")
	require.NoError(t, err)

	require.NoError(t, item.AssignID(9))
	assert.Equal(t, int64(9), item.ID())
	require.ErrorIs(t, item.AssignID(10), medication.ErrIDIsAlreadyAssigned)
}

func TestItem_UpdateDetails(t *testing.T) {
	droneID := int64(5)
	item, err := medication.RestoreItem(1, "Aspirin", "ASP", weight(t, 50), nil, "", &droneID)
	require.NoError(t, err)

	t.Run("valid update replaces fields and keeps the drone", func(t *testing.T) {
		err := item.UpdateDetails("Paracetamol", "PAR", weight(t, 80), []byte{1, 2}, "image/jpeg")

		require.NoError(t, err)
		assert.Equal(t, "Paracetamol", item.Name())
		assert.Equal(t, "PAR", item.Code())
		assert.Equal(t, 80, item.Weight().Grams())
		assert.Equal(t, []byte{1, 2}, item.Image())
		assert.Equal(t, int64(5), *item.DroneID())
		assert.Equal(t, int64(1), item.ID())
	})

	t.Run("invalid update leaves the item unchanged", func(t *testing.T) {
		err := item.UpdateDetails("Bad Name", "bad", weight(t, 10), nil, "")

		require.Error(t, err)
		assert.Equal(t, "Paracetamol", item.Name())
		assert.Equal(t, "PAR", item.Code())
		assert.Equal(t, 80, item.Weight().Grams())
	})
}

func TestItem_ImageIsCopied(t *testing.T) {
	img := []byte{1, 2, 3}
	item, err := medication.NewItem("Aspirin", "ASP", weight(t, 50), img, "image/png")
	require.NoError(t, err)

	img[0] = 9
	got := item.Image()
	got[1] = 9

	assert.Equal(t, []byte{1, 2, 3}, item.Image())
}

func TestItem_ZeroValue(t *testing.T) {
	var item medication.Item
	require.ErrorIs(t, item.Validate(), medication.ErrItemIsNotConstructed)
}
