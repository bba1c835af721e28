package remote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ariefcatur/smartpos/internal/pos"
)

// DB dipenuhi oleh *pgxpool.Pool (dan pgxmock di test).
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Postgres: backend PostgreSQL langsung. Berbeda dengan PostgREST, efek
// samping order dijalankan dalam satu transaksi.
type Postgres struct{ DB DB }

func (p *Postgres) Name() string { return "postgres" }

func (p *Postgres) List(ctx context.Context, c pos.Collection, dst any) error {
	switch out := dst.(type) {
	case *[]pos.Product:
		rows, err := p.DB.Query(ctx, `SELECT id, name, category, price, stock, image_url FROM products ORDER BY name`)
		if err != nil {
			return err
		}
		res, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (pos.Product, error) {
			var x pos.Product
			err := r.Scan(&x.ID, &x.Name, &x.Category, &x.Price, &x.Stock, &x.ImageURL)
			return x, err
		})
		if err != nil {
			return err
		}
		*out = res
	case *[]pos.User:
		rows, err := p.DB.Query(ctx, `SELECT id, name, pin, role FROM users ORDER BY name`)
		if err != nil {
			return err
		}
		res, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (pos.User, error) {
			var x pos.User
			err := r.Scan(&x.ID, &x.Name, &x.PIN, &x.Role)
			return x, err
		})
		if err != nil {
			return err
		}
		*out = res
	case *[]pos.Customer:
		rows, err := p.DB.Query(ctx, `SELECT id, name, phone, total_spent, created_at, created_by, created_by_role
		                              FROM customers ORDER BY created_at DESC`)
		if err != nil {
			return err
		}
		res, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (pos.Customer, error) {
			var x pos.Customer
			err := r.Scan(&x.ID, &x.Name, &x.Phone, &x.TotalSpent, &x.CreatedAt, &x.CreatedBy, &x.CreatedByRole)
			return x, err
		})
		if err != nil {
			return err
		}
		*out = res
	case *[]pos.Order:
		rows, err := p.DB.Query(ctx, `SELECT id, receipt_number, user_id, user_name, total_amount, discount, items,
		                                     created_at, buyer_name, buyer_phone, customer_id
		                              FROM orders ORDER BY created_at DESC`)
		if err != nil {
			return err
		}
		res, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (pos.Order, error) {
			var x pos.Order
			var items []byte
			if err := r.Scan(&x.ID, &x.ReceiptNumber, &x.UserID, &x.UserName, &x.TotalAmount, &x.Discount, &items,
				&x.CreatedAt, &x.BuyerName, &x.BuyerPhone, &x.CustomerID); err != nil {
				return x, err
			}
			if len(items) > 0 {
				if err := json.Unmarshal(items, &x.Items); err != nil {
					return x, fmt.Errorf("order %s items: %w", x.ID, err)
				}
			}
			return x, nil
		})
		if err != nil {
			return err
		}
		*out = res
	default:
		return fmt.Errorf("%w: %T for %s", ErrUnsupportedRow, dst, c)
	}
	return nil
}

func (p *Postgres) Upsert(ctx context.Context, c pos.Collection, row any) error {
	var err error
	switch x := row.(type) {
	case pos.Product:
		_, err = p.DB.Exec(ctx, `
			INSERT INTO products(id, name, category, price, stock, image_url)
			VALUES ($1,$2,$3,$4,$5,$6)
			ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, category=EXCLUDED.category,
				price=EXCLUDED.price, stock=EXCLUDED.stock, image_url=EXCLUDED.image_url`,
			x.ID, x.Name, x.Category, x.Price, x.Stock, x.ImageURL)
	case pos.User:
		_, err = p.DB.Exec(ctx, `
			INSERT INTO users(id, name, pin, role) VALUES ($1,$2,$3,$4)
			ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, pin=EXCLUDED.pin, role=EXCLUDED.role`,
			x.ID, x.Name, x.PIN, string(x.Role))
	case pos.Customer:
		_, err = p.DB.Exec(ctx, `
			INSERT INTO customers(id, name, phone, total_spent, created_at, created_by, created_by_role)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
			ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, phone=EXCLUDED.phone,
				total_spent=EXCLUDED.total_spent, created_by=EXCLUDED.created_by,
				created_by_role=EXCLUDED.created_by_role`,
			x.ID, x.Name, x.Phone, x.TotalSpent, x.CreatedAt, x.CreatedBy, string(x.CreatedByRole))
	default:
		// order tidak punya jalur update, hanya CreateOrder
		return fmt.Errorf("%w: %T for %s", ErrUnsupportedRow, row, c)
	}
	return err
}

func (p *Postgres) Delete(ctx context.Context, c pos.Collection, ids ...string) error {
	table, err := tableFor(c)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	_, err = p.DB.Exec(ctx, `DELETE FROM `+table+` WHERE id = ANY($1)`, ids)
	return err
}

func (p *Postgres) TransferCustomers(ctx context.Context, ids []string, ownerID string, ownerRole pos.Role) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := p.DB.Exec(ctx, `UPDATE customers SET created_by=$2, created_by_role=$3 WHERE id = ANY($1)`,
		ids, ownerID, string(ownerRole))
	return err
}

// CreateOrder: insert order + kurangi stok + tambah total_spent dalam satu tx.
// Stok dikurangi di server (stock = stock - qty) jadi tidak ada lost update;
// total_spent juga di-increment di server, customerSpent dari mirror diabaikan.
func (p *Postgres) CreateOrder(ctx context.Context, o pos.Order, _ *int) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}

	tx, err := p.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `
		INSERT INTO orders(id, receipt_number, user_id, user_name, total_amount, discount, items,
		                   created_at, buyer_name, buyer_phone, customer_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		o.ID, o.ReceiptNumber, o.UserID, o.UserName, o.TotalAmount, o.Discount, items,
		o.CreatedAt, o.BuyerName, o.BuyerPhone, o.CustomerID,
	); err != nil {
		return fmt.Errorf("insert order %s: %w", o.ID, err)
	}

	for _, it := range o.Items {
		if _, err = tx.Exec(ctx, `UPDATE products SET stock = stock - $2 WHERE id=$1`, it.ID, it.Quantity); err != nil {
			return fmt.Errorf("stock %s: %w", it.ID, err)
		}
	}

	if o.CustomerID != "" {
		if _, err = tx.Exec(ctx, `UPDATE customers SET total_spent = total_spent + $2 WHERE id=$1`,
			o.CustomerID, o.TotalAmount); err != nil {
			return fmt.Errorf("customer %s: %w", o.CustomerID, err)
		}
	}
	return tx.Commit(ctx)
}
