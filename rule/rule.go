/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package rule

import (
	"fmt"

	"github.com/sealdb/authority/privilege"
)

// Grantee identifies the requester of an operation as a user and host pair.
// A nil *Grantee at the checker boundary means a trusted internal caller,
// it is not the same as a grantee with empty fields.
type Grantee struct {
	User string
	Host string
}

// String returns the 'user'@'host' form.
func (g *Grantee) String() string {
	return fmt.Sprintf("'%s'@'%s'", g.User, g.Host)
}

// User is the stored credential record of a grantee.
// Password is the provisioned cipher text, compared only by a
// caller-supplied validator.
type User struct {
	Grantee  Grantee
	Password string
}

// Privileges is the grant set held by one grantee: database visibility
// plus held privilege kinds. Implementations are read-only snapshots and
// safe for concurrent use.
type Privileges interface {
	// HasDatabase returns whether the database is visible to the grantee.
	HasDatabase(database string) bool
	// HasPrivileges returns whether at least one of the privileges is held.
	HasPrivileges(privs ...privilege.PrivilegeType) bool
}

// Rule answers grantee lookups. Lookups with a nil grantee report not-found.
// The rule owns the grant data and its lifecycle, callers only read it.
type Rule interface {
	// FindUser returns the stored credential record of the grantee.
	FindUser(grantee *Grantee) (*User, bool)
	// FindPrivileges returns the grant set of the grantee.
	FindPrivileges(grantee *Grantee) (Privileges, bool)
}
