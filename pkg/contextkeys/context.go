package contextkeys

// Custom key type avoids collisions with other context values.
type contextKey string

// DBContextKey stores the *gorm.DB (pool or transaction) in a context.
const DBContextKey = contextKey("db")
