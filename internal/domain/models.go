package domain

type Category struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt"`
}

type Product struct {
	ID          string  `db:"id" json:"id"`
	CategoryID  string  `db:"category_id" json:"categoryId"`
	SKU         string  `db:"sku" json:"sku"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Active      bool    `db:"active" json:"active"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
	UpdatedAt   string  `db:"updated_at" json:"updatedAt"`
}

type Customer struct {
	ID            string `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Email         string `db:"email" json:"email"`
	Phone         string `db:"phone" json:"phone"`
	LoyaltyPoints int    `db:"loyalty_points" json:"loyaltyPoints"`
	CreatedAt     string `db:"created_at" json:"createdAt"`
	UpdatedAt     string `db:"updated_at" json:"updatedAt"`
}

// RegisterSession is one cash-drawer shift: opened with a float, closed with a
// counted amount reconciled against the expected balance.
type RegisterSession struct {
	ID            string  `db:"id" json:"id"`
	RegisterCode  string  `db:"register_code" json:"registerCode"`
	CashierID     string  `db:"cashier_id" json:"cashierId"`
	OpeningFloat  float64 `db:"opening_float" json:"openingFloat"`
	ClosingAmount float64 `db:"closing_amount" json:"closingAmount"`
	Difference    float64 `db:"difference" json:"difference"`
	Status        string  `db:"status" json:"status"` // OPEN | CLOSED
	OpenedAt      string  `db:"opened_at" json:"openedAt"`
	ClosedAt      string  `db:"closed_at" json:"closedAt"`
}

type CashMovement struct {
	ID        string  `db:"id" json:"id"`
	SessionID string  `db:"session_id" json:"sessionId"`
	Kind      string  `db:"kind" json:"kind"` // SALE | PAYOUT | DEPOSIT
	Amount    float64 `db:"amount" json:"amount"`
	Note      string  `db:"note" json:"note"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
}
