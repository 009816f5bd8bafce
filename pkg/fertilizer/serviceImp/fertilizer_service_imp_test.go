package serviceImp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cropadvisor/pkg/fertilizer/advisory"
	"cropadvisor/pkg/fertilizer/reference"
	"cropadvisor/pkg/fertilizer/service"
)

func newService(t *testing.T) service.FertilizerService {
	t.Helper()
	tbl, err := reference.ReadCSV(strings.NewReader("Crop,N,P,K\nrice,80,40,40\ngrapes,20,125,200\nflat,50,50,50\n"))
	require.NoError(t, err)
	return NewFertilizerService(tbl, zap.NewNop())
}

func TestAdvise_Keys(t *testing.T) {
	svc := newService(t)
	tests := []struct {
		name    string
		n, p, k int
		crop    string
		want    advisory.Key
	}{
		{"nitrogen deficit", 10, 40, 40, "rice", advisory.NLow},
		{"nitrogen surplus", 150, 40, 40, "rice", advisory.NHigh},
		{"phosphorus deficit", 80, 0, 40, "rice", advisory.PLow},
		{"phosphorus surplus", 80, 100, 40, "rice", advisory.PHigh},
		{"potassium deficit", 20, 125, 20, "grapes", advisory.KLow},
		{"potassium surplus", 80, 40, 120, "rice", advisory.KHigh},
		{"exact match falls to N low", 80, 40, 40, "rice", advisory.NLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv, err := svc.Advise(context.Background(), tt.n, tt.p, tt.k, tt.crop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, adv.Key)
			want, _ := advisory.Lookup(tt.want)
			assert.Equal(t, want, adv.Text)
		})
	}
}

func TestAdvise_Deviations(t *testing.T) {
	adv, err := newService(t).Advise(context.Background(), 10, 40, 40, "rice")
	require.NoError(t, err)

	assert.Equal(t, service.Deviation{N: 70, P: 0, K: 0}, adv.Deviation)
	assert.Equal(t, "N", adv.Nutrient)
	assert.False(t, adv.High)
	assert.Equal(t, "rice", adv.Crop)
}

func TestAdvise_TiesFavourNThenPThenK(t *testing.T) {
	svc := newService(t)

	// |dn| = |dp| = |dk| = 10 with mixed signs
	adv, err := svc.Advise(context.Background(), 60, 40, 60, "flat")
	require.NoError(t, err)
	assert.Equal(t, advisory.NHigh, adv.Key)

	// |dp| = |dk| = 30 > |dn|
	adv, err = svc.Advise(context.Background(), 50, 20, 80, "flat")
	require.NoError(t, err)
	assert.Equal(t, advisory.PLow, adv.Key)
}

func TestAdvise_UnknownCrop(t *testing.T) {
	for _, crop := range []string{"tobacco", "", "ric"} {
		adv, err := newService(t).Advise(context.Background(), 10, 10, 10, crop)
		assert.ErrorIs(t, err, service.ErrUnknownCrop)
		assert.Nil(t, adv)
	}
}

func TestAdvise_CropNameIgnoresCase(t *testing.T) {
	adv, err := newService(t).Advise(context.Background(), 10, 40, 40, "  RICE ")
	require.NoError(t, err)
	assert.Equal(t, "rice", adv.Crop)
}

func TestAdvise_Deterministic(t *testing.T) {
	svc := newService(t)
	first, err := svc.Advise(context.Background(), 33, 71, 5, "grapes")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := svc.Advise(context.Background(), 33, 71, 5, "grapes")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCrops(t *testing.T) {
	assert.Equal(t, []string{"flat", "grapes", "rice"}, newService(t).Crops())
}
