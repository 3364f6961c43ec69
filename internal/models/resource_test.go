package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyResourceStatus(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		threshold float64
		want      ResourceStatus
	}{
		{"zero quantity", 0, 30, ResourceStatusCritical},
		{"exactly half threshold", 15, 30, ResourceStatusCritical},
		{"just above half threshold", 15.1, 30, ResourceStatusLow},
		{"exactly threshold", 30, 30, ResourceStatusLow},
		{"just above threshold", 30.1, 30, ResourceStatusGood},
		{"far above threshold", 300, 30, ResourceStatusGood},
		{"zero threshold zero quantity", 0, 0, ResourceStatusCritical},
		{"zero threshold positive quantity", 1, 0, ResourceStatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyResourceStatus(tt.quantity, tt.threshold))
		})
	}
}

// The three tiers partition the quantity axis: exactly one tier matches any
// (quantity, threshold) pair.
func TestClassifyResourceStatus_Partition(t *testing.T) {
	const threshold = 40.0
	for q := 0.0; q <= 100; q += 0.5 {
		got := ClassifyResourceStatus(q, threshold)
		switch {
		case q <= threshold*0.5:
			require.Equal(t, ResourceStatusCritical, got, "quantity %v", q)
		case q <= threshold:
			require.Equal(t, ResourceStatusLow, got, "quantity %v", q)
		default:
			require.Equal(t, ResourceStatusGood, got, "quantity %v", q)
		}
	}
}

func TestReclassify(t *testing.T) {
	item := ResourceItem{Quantity: 20, Threshold: 30, Status: ResourceStatusGood}
	item.Reclassify()
	require.Equal(t, ResourceStatusLow, item.Status)

	item.Quantity = 10
	item.Reclassify()
	require.Equal(t, ResourceStatusCritical, item.Status)

	item.Quantity = 40
	item.Reclassify()
	require.Equal(t, ResourceStatusGood, item.Status)
}
