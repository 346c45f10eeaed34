/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package statement

// Statement is a parsed SQL statement kind.
// A statement value only tags the syntactic shape of the query, it never
// carries runtime values, so the privilege required to execute it can be
// derived from the type alone.
type Statement interface {
	iStatement()
}

// DMLStatement tags the data-manipulation statement kinds.
type DMLStatement interface {
	Statement
	iDMLStatement()
}

// DDLStatement tags the data-definition statement kinds.
type DDLStatement interface {
	Statement
	iDDLStatement()
}

// Select represents a SELECT statement.
type Select struct{}

// Union represents a UNION of selects.
type Union struct{}

// Insert represents an INSERT statement.
type Insert struct{}

// Replace represents a REPLACE statement.
type Replace struct{}

// Update represents an UPDATE statement.
type Update struct{}

// Delete represents a DELETE statement.
type Delete struct{}

func (*Select) iStatement()  {}
func (*Union) iStatement()   {}
func (*Insert) iStatement()  {}
func (*Replace) iStatement() {}
func (*Update) iStatement()  {}
func (*Delete) iStatement()  {}

func (*Select) iDMLStatement()  {}
func (*Union) iDMLStatement()   {}
func (*Insert) iDMLStatement()  {}
func (*Replace) iDMLStatement() {}
func (*Update) iDMLStatement()  {}
func (*Delete) iDMLStatement()  {}

// AlterDatabase represents an ALTER DATABASE statement.
type AlterDatabase struct{}

// AlterTable represents an ALTER TABLE statement.
type AlterTable struct{}

// CreateDatabase represents a CREATE DATABASE statement.
type CreateDatabase struct{}

// CreateTable represents a CREATE TABLE statement.
type CreateTable struct{}

// CreateFunction represents a CREATE FUNCTION statement.
type CreateFunction struct{}

// CreateIndex represents a CREATE INDEX statement.
type CreateIndex struct{}

// DropDatabase represents a DROP DATABASE statement.
type DropDatabase struct{}

// DropTable represents a DROP TABLE statement.
type DropTable struct{}

// DropIndex represents a DROP INDEX statement.
type DropIndex struct{}

// Truncate represents a TRUNCATE TABLE statement.
type Truncate struct{}

func (*AlterDatabase) iStatement()  {}
func (*AlterTable) iStatement()     {}
func (*CreateDatabase) iStatement() {}
func (*CreateTable) iStatement()    {}
func (*CreateFunction) iStatement() {}
func (*CreateIndex) iStatement()    {}
func (*DropDatabase) iStatement()   {}
func (*DropTable) iStatement()      {}
func (*DropIndex) iStatement()      {}
func (*Truncate) iStatement()       {}

func (*AlterDatabase) iDDLStatement()  {}
func (*AlterTable) iDDLStatement()     {}
func (*CreateDatabase) iDDLStatement() {}
func (*CreateTable) iDDLStatement()    {}
func (*CreateFunction) iDDLStatement() {}
func (*CreateIndex) iDDLStatement()    {}
func (*DropDatabase) iDDLStatement()   {}
func (*DropTable) iDDLStatement()      {}
func (*DropIndex) iDDLStatement()      {}
func (*Truncate) iDDLStatement()       {}

// ShowDatabases represents a SHOW DATABASES statement.
type ShowDatabases struct{}

// ShowTables represents a SHOW TABLES statement.
type ShowTables struct{}

// Use represents a USE statement.
type Use struct{}

// Unsupported represents a statement kind outside the typed set.
type Unsupported struct{}

func (*ShowDatabases) iStatement() {}
func (*ShowTables) iStatement()    {}
func (*Use) iStatement()           {}
func (*Unsupported) iStatement()   {}
