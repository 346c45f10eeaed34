/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package privilege

import (
	"github.com/sealdb/authority/statement"
)

// Resolve maps a statement to the privilege required to execute it.
// Dispatch is two-level: first the statement category, then the exact kind,
// because new kinds arrive inside an existing category far more often than
// new categories arrive. A kind without a mapping returns ok=false, which
// is a valid outcome and not an error: policy for unmapped statements
// belongs to the caller.
func Resolve(node statement.Statement) (PrivilegeType, bool) {
	if _, ok := node.(*statement.ShowDatabases); ok {
		return ShowDBPriv, true
	}
	switch node := node.(type) {
	case statement.DMLStatement:
		return resolveDML(node)
	case statement.DDLStatement:
		return resolveDDL(node)
	}
	return NonePriv, false
}

func resolveDML(node statement.DMLStatement) (PrivilegeType, bool) {
	switch node.(type) {
	case *statement.Select:
		return SelectPriv, true
	case *statement.Insert:
		return InsertPriv, true
	case *statement.Update:
		return UpdatePriv, true
	case *statement.Delete:
		return DeletePriv, true
	}
	return NonePriv, false
}

func resolveDDL(node statement.DDLStatement) (PrivilegeType, bool) {
	switch node.(type) {
	case *statement.AlterDatabase:
		return AlterAnyDatabasePriv, true
	case *statement.AlterTable:
		return AlterPriv, true
	case *statement.CreateDatabase:
		return CreateDatabasePriv, true
	case *statement.CreateTable:
		return CreateTablePriv, true
	case *statement.CreateFunction:
		return CreateFunctionPriv, true
	case *statement.DropTable, *statement.DropDatabase:
		return DropPriv, true
	case *statement.Truncate:
		return TruncatePriv, true
	}
	return NonePriv, false
}
