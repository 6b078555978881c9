package repositories

// NewMemoryStore builds a Store kept entirely in process memory.
// It is meant for local development and tests; data is lost on restart.
func NewMemoryStore() *Store {
	return &Store{
		Users:    NewMemoryUserRepository(),
		Products: NewMemoryProductRepository(),
		Carts:    NewMemoryCartRepository(),
		Orders:   NewMemoryOrderRepository(),
	}
}
