package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pyhub-apps/plotrecon-golang/pkg/plotset"
)

func TestTotals(t *testing.T) {
	tests := []struct {
		name        string
		areaA       float64
		areaB       float64
		wantDelta   float64
		wantPercent float64
		wantPending bool
	}{
		{"five percent short", 100.0, 95.0, 5.0, 5.0, true},
		{"equal areas", 100.0, 100.0, 0.0, 0.0, false},
		{"final larger than original", 95.0, 100.0, 5.0, 5.2631578947, true},
		{"within tolerance", 100.0, 100.005, 0.005, 0.005, false},
		{"empty original population", 0.0, 50.0, 50.0, 0.0, true},
		{"both empty", 0.0, 0.0, 0.0, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Totals(tt.areaA, tt.areaB)
			assert.Equal(t, tt.areaA, got.AreaA)
			assert.Equal(t, tt.areaB, got.AreaB)
			assert.InDelta(t, tt.wantDelta, got.AbsoluteDelta, 1e-9)
			assert.InDelta(t, tt.wantPercent, got.RelativeDeltaPercent, 1e-9)
			assert.Equal(t, tt.wantPending, got.Pending)
		})
	}
}

func TestReconcilePlotSets(t *testing.T) {
	a := plotset.PlotSet{TotalArea: 100.0}
	b := plotset.PlotSet{TotalArea: 95.0}

	got := Reconcile(a, b)

	assert.InDelta(t, 5.0, got.AbsoluteDelta, 1e-9)
	assert.InDelta(t, 5.0, got.RelativeDeltaPercent, 1e-9)
	assert.True(t, got.Pending)
}
