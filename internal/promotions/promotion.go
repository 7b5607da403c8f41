package promotions

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED_AMOUNT"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ProductRef links a promotion to a catalog product. Only ID is guaranteed;
// name/price/category are filled in by the catalog join (see Store.EnrichProducts).
type ProductRef struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Category string  `json:"category,omitempty"`
}

type Promotion struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	DiscountType       DiscountType   `json:"discountType"`
	DiscountValue      float64        `json:"discountValue"`
	StartDate          time.Time      `json:"startDate"`
	EndDate            time.Time      `json:"endDate"`
	IsActive           bool           `json:"isActive"`
	ApprovalStatus     ApprovalStatus `json:"approvalStatus"`
	ApprovalComment    string         `json:"approvalComment,omitempty"`
	ApprovedBy         *string        `json:"approvedBy,omitempty"`
	ApprovedAt         *time.Time     `json:"approvedAt,omitempty"`
	MinPurchaseAmount  float64        `json:"minPurchaseAmount"`
	MaxDiscountAmount  float64        `json:"maxDiscountAmount"`
	UsageLimit         int            `json:"usageLimit"`
	UsageCount         int            `json:"usageCount"`
	ApplicableProducts []ProductRef   `json:"applicableProducts"`
	CreatedAt          time.Time      `json:"createdAt"`
}

// Input carries the mutable fields for Create/Update. Dates arrive as strings
// (ISO date or RFC3339) and are parsed by the validation gate.
type Input struct {
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	DiscountType      DiscountType `json:"discountType"`
	DiscountValue     float64      `json:"discountValue"`
	StartDate         string       `json:"startDate"`
	EndDate           string       `json:"endDate"`
	MinPurchaseAmount float64      `json:"minPurchaseAmount"`
	MaxDiscountAmount float64      `json:"maxDiscountAmount"`
	UsageLimit        int          `json:"usageLimit"`
	ProductIDs        []string     `json:"applicableProducts"`
}

// Actor identifies who performed an approval transition.
type Actor struct {
	ID    string
	Email string
}

func (p *Promotion) clone() *Promotion {
	cp := *p
	if p.ApprovedBy != nil {
		v := *p.ApprovedBy
		cp.ApprovedBy = &v
	}
	if p.ApprovedAt != nil {
		v := *p.ApprovedAt
		cp.ApprovedAt = &v
	}
	cp.ApplicableProducts = append([]ProductRef(nil), p.ApplicableProducts...)
	return &cp
}
