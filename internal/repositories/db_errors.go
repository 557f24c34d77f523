package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateKeyError reports whether err is a MySQL/MariaDB unique key
// violation (duplicate email, second review on a booking, ...).
func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// isForeignKeyConstraintError checks if the error corresponds to a
// MySQL/MariaDB foreign key constraint failure. This helps translate DB
// failures into clear client-facing validation responses instead of generic
// 500 errors.
func isForeignKeyConstraintError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1452
}
