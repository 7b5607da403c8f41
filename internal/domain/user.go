package domain

type User struct {
	ID       string `db:"id" json:"id"`
	TenantID string `db:"tenant_id" json:"tenantId"`
	Email    string `db:"email" json:"email"`
	Name     string `db:"name" json:"name"`
	Hash     string `db:"password_hash" json:"-"`
	Role     string `db:"role" json:"role"` // USER | ADMIN | SUPERADMIN
}

type Tenant struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Plan      string `db:"plan" json:"plan"`     // STARTER | STANDARD | PREMIUM
	Status    string `db:"status" json:"status"` // ACTIVE | SUSPENDED
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt"`
}
