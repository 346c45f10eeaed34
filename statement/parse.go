/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package statement

import (
	"github.com/sealdb/mysqlstack/sqlparser"
)

// Parse parses the query and returns its statement kind.
// Statement kinds the mysql grammar can not produce (such as CreateFunction
// or AlterDatabase) are constructed directly by the front-end instead.
func Parse(query string) (Statement, error) {
	node, err := sqlparser.Parse(query)
	if err != nil {
		return nil, err
	}
	return FromNode(node), nil
}

// FromNode converts a sqlparser node to its statement kind.
// Nodes without a typed counterpart degrade to Unsupported, they are
// never dropped.
func FromNode(node sqlparser.Statement) Statement {
	switch node := node.(type) {
	case *sqlparser.Select:
		return &Select{}
	case *sqlparser.Union:
		return &Union{}
	case *sqlparser.Insert:
		if node.Action == sqlparser.ReplaceStr {
			return &Replace{}
		}
		return &Insert{}
	case *sqlparser.Update:
		return &Update{}
	case *sqlparser.Delete:
		return &Delete{}
	case *sqlparser.DDL:
		return fromDDLNode(node)
	case *sqlparser.Show:
		switch node.Type {
		case sqlparser.ShowDatabasesStr:
			return &ShowDatabases{}
		case sqlparser.ShowTablesStr:
			return &ShowTables{}
		}
		return &Unsupported{}
	case *sqlparser.Use:
		return &Use{}
	}
	return &Unsupported{}
}

func fromDDLNode(node *sqlparser.DDL) Statement {
	switch node.Action {
	case sqlparser.CreateDBStr:
		return &CreateDatabase{}
	case sqlparser.CreateTableStr:
		return &CreateTable{}
	case sqlparser.CreateIndexStr:
		return &CreateIndex{}
	case sqlparser.DropDBStr:
		return &DropDatabase{}
	case sqlparser.DropTableStr:
		return &DropTable{}
	case sqlparser.DropIndexStr:
		return &DropIndex{}
	case sqlparser.AlterStr, sqlparser.AlterEngineStr, sqlparser.AlterCharsetStr,
		sqlparser.AlterAddColumnStr, sqlparser.AlterDropColumnStr, sqlparser.AlterModifyColumnStr:
		return &AlterTable{}
	case sqlparser.TruncateTableStr:
		return &Truncate{}
	}
	return &Unsupported{}
}
