package pos

type Collection string

const (
	CollectionProducts  Collection = "products"
	CollectionUsers     Collection = "users"
	CollectionOrders    Collection = "orders"
	CollectionCustomers Collection = "customers"
)

// MirrorKey: key di local mirror, sama dengan key localStorage versi web.
func (c Collection) MirrorKey() string { return "pos_" + string(c) }

func (c Collection) String() string { return string(c) }
