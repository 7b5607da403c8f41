package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (tenant/categories/products/customers)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure users exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Tenants
CREATE TABLE IF NOT EXISTS tenants(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  plan TEXT NOT NULL DEFAULT 'STARTER' CHECK (plan IN ('STARTER','STANDARD','PREMIUM')),
  status TEXT NOT NULL DEFAULT 'ACTIVE' CHECK (status IN ('ACTIVE','SUSPENDED')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_tenants_name_nocase ON tenants(LOWER(name));

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  sku TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price >= 0),
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));

-- Customers
CREATE TABLE IF NOT EXISTS customers(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  phone TEXT,
  loyalty_points INTEGER NOT NULL DEFAULT 0 CHECK (loyalty_points >= 0),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email ON customers(LOWER(email));

-- Register sessions & cash movements
CREATE TABLE IF NOT EXISTS register_sessions(
  id TEXT PRIMARY KEY,
  register_code TEXT NOT NULL,
  cashier_id TEXT NOT NULL REFERENCES users(id),
  opening_float NUMERIC NOT NULL DEFAULT 0,
  closing_amount NUMERIC NOT NULL DEFAULT 0,
  difference NUMERIC NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'OPEN' CHECK (status IN ('OPEN','CLOSED')),
  opened_at TEXT DEFAULT CURRENT_TIMESTAMP,
  closed_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_register_sessions_status ON register_sessions(register_code, status);

CREATE TABLE IF NOT EXISTS cash_movements(
  id TEXT PRIMARY KEY,
  session_id TEXT NOT NULL REFERENCES register_sessions(id) ON DELETE CASCADE,
  kind TEXT NOT NULL CHECK (kind IN ('SALE','PAYOUT','DEPOSIT')),
  amount NUMERIC NOT NULL,
  note TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_cash_movements_session ON cash_movements(session_id);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  tenant_id TEXT NOT NULL REFERENCES tenants(id),
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN','SUPERADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM tenants`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo tenant/categories/products/customers")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO tenants(id,name,plan) VALUES
	  ('t-cafesol','Cafe Sol','STANDARD'),
	  ('t-kiosko','Kiosko Norte','STARTER')`)

	tx.MustExec(`INSERT INTO categories(id,name) VALUES
	  ('beverages','Beverages'),
	  ('bakery','Bakery'),
	  ('snacks','Snacks')`)

	tx.MustExec(`INSERT INTO products(id,category_id,sku,name,description,price) VALUES
	  ('espresso-001','beverages','BEV-ESP-01','Espresso','Double shot espresso',2.50),
	  ('latte-001','beverages','BEV-LAT-01','Latte','Espresso with steamed milk',3.80),
	  ('croissant-001','bakery','BAK-CRO-01','Butter Croissant','Baked daily',2.20),
	  ('chips-001','snacks','SNK-CHP-01','Sea Salt Chips','40g bag',1.50)`)

	tx.MustExec(`INSERT INTO customers(id,name,email,phone,loyalty_points) VALUES
	  ('c-maria','Maria Lopez','maria@example.test','+1-555-0101',120),
	  ('c-jonas','Jonas Berg','jonas@example.test','+1-555-0102',0)`)

	return tx.Commit()
}

// seedUsers ensures a cashier, a store admin and a platform superadmin exist
// (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Tenant, Email, Name, Role, Hash string
	}
	mk := func(id, tenant, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Tenant: tenant, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-carla", "t-cafesol", "carla@tillpoint.test", "Carla", "USER", "Passw0rd!"),
		mk("u-diego", "t-cafesol", "diego@tillpoint.test", "Diego", "USER", "Passw0rd!"),
		mk("u-admin", "t-cafesol", "admin@tillpoint.test", "Admin", "ADMIN", "Passw0rd!"),
		mk("u-root", "t-cafesol", "root@tillpoint.test", "Root", "SUPERADMIN", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,tenant_id,email,name,password_hash,role)
			VALUES(?,?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Tenant, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
