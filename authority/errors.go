/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package authority

import (
	"fmt"

	"github.com/sealdb/mysqlstack/sqldb"
)

// UnknownDatabaseError is the denial raised when the target database is
// outside the grantee's visibility, or the grantee holds no grant set at
// all while a database scope was given. It is distinct from the privilege
// denial so the front-end can report "unknown database" without leaking
// which databases exist.
type UnknownDatabaseError struct {
	Database string
}

// Error impl.
func (e *UnknownDatabaseError) Error() string {
	return fmt.Sprintf("Unknown database '%s'", e.Database)
}

// ToSQLError returns the mysql wire error for the denial.
func (e *UnknownDatabaseError) ToSQLError() *sqldb.SQLError {
	return sqldb.NewSQLError(sqldb.ER_BAD_DB_ERROR, e.Database)
}

// UnauthorizedOperationError is the denial raised when the required
// privilege is missing. Privilege is empty when the statement kind has no
// privilege mapping at all, such statements are always denied.
type UnauthorizedOperationError struct {
	Privilege string
}

// Error impl.
func (e *UnauthorizedOperationError) Error() string {
	return fmt.Sprintf("Access denied; you need (at least one of) the '%s' privilege(s) for this operation", e.Privilege)
}

// ToSQLError returns the mysql wire error for the denial.
func (e *UnauthorizedOperationError) ToSQLError() *sqldb.SQLError {
	return sqldb.NewSQLError(sqldb.ER_SPECIFIC_ACCESS_DENIED_ERROR, e.Privilege)
}
