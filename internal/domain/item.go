package domain

type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "AVAILABLE"
	ItemStatusRented    ItemStatus = "RENTED"
	ItemStatusRetired   ItemStatus = "RETIRED"
)

type ItemCondition string

const (
	ItemConditionExcellent ItemCondition = "EXCELLENT"
	ItemConditionGood      ItemCondition = "GOOD"
	ItemConditionWorn      ItemCondition = "WORN"
	ItemConditionDamaged   ItemCondition = "DAMAGED/NEEDS_REPAIR"
)

type Item struct {
	ID          int32         `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Condition   ItemCondition `json:"condition"`
	Campus      string        `json:"campus"`
	// TagID is the id printed on the physical tag attached to the item,
	// matched during pickup verification.
	TagID     string     `json:"tag_id"`
	Status    ItemStatus `json:"status"`
	CreatedOn string     `json:"created_on"`
	UpdatedOn string     `json:"updated_on"`
}
