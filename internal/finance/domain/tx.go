package domain

// Tx is the unit-of-work handle shared by the repositories. The SQL
// implementations back it with *sql.Tx; test doubles provide their own.
type Tx interface {
	Commit() error
	Rollback() error
}
