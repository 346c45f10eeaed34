/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package authority

import (
	"github.com/sealdb/authority/monitor"
	"github.com/sealdb/authority/privilege"
	"github.com/sealdb/authority/rule"
	"github.com/sealdb/authority/statement"

	"github.com/sealdb/mysqlstack/xlog"
)

// Checker decides whether the grantee may execute a statement against a
// database. It holds no mutable state, only the rule reference and the
// grantee of the session it was built for, so one checker is safe for any
// number of concurrent calls.
//
// A nil grantee marks a trusted internal caller, every check passes for it
// without consulting the rule.
type Checker struct {
	log     *xlog.Log
	rule    rule.Rule
	grantee *rule.Grantee
}

// NewChecker creates a checker for one session.
func NewChecker(log *xlog.Log, rul rule.Rule, grantee *rule.Grantee) *Checker {
	return &Checker{
		log:     log,
		rule:    rul,
		grantee: grantee,
	}
}

// IsAuthenticated compares the session cipher against the stored credential
// of the grantee via the supplied validator. The comparison algorithm is
// entirely the validator's concern, the stored value is passed through
// untouched. Returns false when no credential record exists.
func (c *Checker) IsAuthenticated(validator func(stored string, cipher string) bool, cipher string) bool {
	user, ok := c.rule.FindUser(c.grantee)
	if !ok {
		monitor.AuthenticationFailedInc()
		return false
	}
	if !validator(user.Password, cipher) {
		monitor.AuthenticationFailedInc()
		return false
	}
	return true
}

// IsAuthorized returns whether the database is visible to the grantee.
// This is the non-failing probe used for catalog listing, it never denies
// with an error. Absence of a grant set degrades to false.
func (c *Checker) IsAuthorized(database string) bool {
	if c.grantee == nil {
		return true
	}
	privs, ok := c.rule.FindPrivileges(c.grantee)
	return ok && privs.HasDatabase(database)
}

// CheckPrivileges fails with a typed denial unless the grantee may execute
// the statement. An empty database means the operation is not
// database-scoped and the visibility check is skipped.
//
// The checks run in order and stop at the first failure:
// database visibility (UnknownDatabaseError), then privilege membership
// (UnauthorizedOperationError). A statement without a privilege mapping is
// always denied, with an empty privilege name.
func (c *Checker) CheckPrivileges(database string, node statement.Statement) error {
	if c.grantee == nil {
		return nil
	}
	privs, ok := c.rule.FindPrivileges(c.grantee)
	if database != "" && (!ok || !privs.HasDatabase(database)) {
		monitor.AuthorizationDeniedInc("unknown_database")
		c.log.Warning("authority.check.database.denied[%s].grantee[%v]", database, c.grantee)
		return &UnknownDatabaseError{Database: database}
	}
	priv, mapped := privilege.Resolve(node)
	if !ok || !mapped || !privs.HasPrivileges(priv) {
		name := ""
		if mapped {
			name = priv.String()
		}
		monitor.AuthorizationDeniedInc("unauthorized_operation")
		c.log.Warning("authority.check.privilege.denied[%s].grantee[%v].database[%s]", name, c.grantee, database)
		return &UnauthorizedOperationError{Privilege: name}
	}
	monitor.AuthorizationAllowedInc()
	return nil
}
