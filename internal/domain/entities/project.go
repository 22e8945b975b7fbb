package entities

// ProjectCategory distinguishes the two engagement types billed by this tool.
//
// Domain notes:
//   - recurring ("farm") projects bill the aggregated labor/outsourcing cost.
//   - fixed_bid ("prime") projects bill per assigned member (unit price x utilization).

type ProjectCategory string

const (
	ProjectCategoryRecurring ProjectCategory = "recurring"
	ProjectCategoryFixedBid  ProjectCategory = "fixed_bid"
)

func (c ProjectCategory) Valid() bool {
	return c == ProjectCategoryRecurring || c == ProjectCategoryFixedBid
}

// Project is a read-only catalog record fed into billing composition.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Monetary representation:
//   - BaselineAmount is an integer in the smallest currency unit.

type Project struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       ProjectCategory `json:"category"`
	Client         string          `json:"client"`
	BaselineAmount int64           `json:"baseline_amount"`
	Status         string          `json:"status"`
}
