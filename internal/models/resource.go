package models

type ResourceStatus string

const (
	ResourceStatusGood     ResourceStatus = "Good"
	ResourceStatusLow      ResourceStatus = "Low"
	ResourceStatusCritical ResourceStatus = "Critical"
)

// ResourceItem is an inventory entry embedded in a workspace. The id is
// unique within the owning workspace only. Status is derived from quantity
// and threshold and is never accepted from input.
type ResourceItem struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Quantity  float64        `json:"quantity"`
	Unit      string         `json:"unit"`
	Threshold float64        `json:"threshold"`
	Status    ResourceStatus `json:"status"`
}

// ClassifyResourceStatus maps a quantity/threshold pair to a health tier:
// Critical when quantity is at or below half the threshold, Low when at or
// below the threshold, Good above it. Callers validate non-negativity.
func ClassifyResourceStatus(quantity, threshold float64) ResourceStatus {
	switch {
	case quantity <= threshold*0.5:
		return ResourceStatusCritical
	case quantity <= threshold:
		return ResourceStatusLow
	default:
		return ResourceStatusGood
	}
}

// Reclassify recomputes the derived status after a quantity or threshold
// change.
func (r *ResourceItem) Reclassify() {
	r.Status = ClassifyResourceStatus(r.Quantity, r.Threshold)
}
