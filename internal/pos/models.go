package pos

import "time"

type Product struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Category string `json:"category" db:"category"`
	Price    int    `json:"price" db:"price"`
	Stock    int    `json:"stock" db:"stock"` // boleh negatif, tidak ada floor
	ImageURL string `json:"image_url" db:"image_url"`
}

type User struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	PIN  string `json:"pin" db:"pin"`
	Role Role   `json:"role" db:"role"`
}

// Customer = member. CreatedBy/CreatedByRole dipakai untuk partisi visibilitas.
type Customer struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Phone         string    `json:"phone" db:"phone"`
	TotalSpent    int       `json:"total_spent" db:"total_spent"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	CreatedBy     string    `json:"created_by" db:"created_by"`
	CreatedByRole Role      `json:"created_by_role" db:"created_by_role"`
}

// CartItem: harga di-snapshot saat item masuk keranjang.
type CartItem struct {
	ID       string `json:"id"` // product id
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID            string     `json:"id" db:"id"`
	ReceiptNumber string     `json:"receipt_number" db:"receipt_number"`
	UserID        string     `json:"user_id" db:"user_id"`
	UserName      string     `json:"user_name" db:"user_name"`
	TotalAmount   int        `json:"total_amount" db:"total_amount"`
	Discount      int        `json:"discount" db:"discount"`
	Items         []CartItem `json:"items" db:"items"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	BuyerName     string     `json:"buyer_name,omitempty" db:"buyer_name"`
	BuyerPhone    string     `json:"buyer_phone,omitempty" db:"buyer_phone"`
	CustomerID    string     `json:"customer_id,omitempty" db:"customer_id"`
}

func (p Product) GetID() string  { return p.ID }
func (u User) GetID() string     { return u.ID }
func (c Customer) GetID() string { return c.ID }
func (o Order) GetID() string    { return o.ID }

// Record adalah baris yang bisa disimpan di salah satu koleksi.
type Record interface {
	Product | User | Customer | Order
	GetID() string
}
