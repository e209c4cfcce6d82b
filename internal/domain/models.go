package domain

// Models lists every persisted entity in migration order.
func Models() []any {
	return []any{
		&User{},
		&Equipment{},
		&Reservation{},
		&Review{},
		&Report{},
	}
}
