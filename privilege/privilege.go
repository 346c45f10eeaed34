/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package privilege

import (
	"github.com/pkg/errors"
)

// PrivilegeType is the category of permission required to execute a class
// of statements. The set is closed: a new statement kind is added together
// with its privilege here and in the resolver, never in one place only.
type PrivilegeType int

const (
	// NonePriv is the zero value, returned when a statement has no
	// privilege mapping.
	NonePriv PrivilegeType = iota
	// SelectPriv for SELECT.
	SelectPriv
	// InsertPriv for INSERT.
	InsertPriv
	// UpdatePriv for UPDATE.
	UpdatePriv
	// DeletePriv for DELETE.
	DeletePriv
	// CreateDatabasePriv for CREATE DATABASE.
	CreateDatabasePriv
	// CreateTablePriv for CREATE TABLE.
	CreateTablePriv
	// CreateFunctionPriv for CREATE FUNCTION.
	CreateFunctionPriv
	// AlterPriv for ALTER TABLE.
	AlterPriv
	// AlterAnyDatabasePriv for ALTER DATABASE.
	AlterAnyDatabasePriv
	// DropPriv for DROP TABLE and DROP DATABASE.
	DropPriv
	// TruncatePriv for TRUNCATE TABLE.
	TruncatePriv
	// ShowDBPriv for SHOW DATABASES.
	ShowDBPriv
)

// privilegeNames is indexed by PrivilegeType.
var privilegeNames = []string{
	"",
	"SELECT",
	"INSERT",
	"UPDATE",
	"DELETE",
	"CREATE_DATABASE",
	"CREATE_TABLE",
	"CREATE_FUNCTION",
	"ALTER",
	"ALTER_ANY_DATABASE",
	"DROP",
	"TRUNCATE",
	"SHOW_DB",
}

// String returns the privilege name as reported in denial messages
// and grant configs.
func (priv PrivilegeType) String() string {
	if priv < 0 || int(priv) >= len(privilegeNames) {
		return ""
	}
	return privilegeNames[priv]
}

// ParsePrivilege returns the privilege named by s, as used in grant configs.
func ParsePrivilege(s string) (PrivilegeType, error) {
	for i, name := range privilegeNames {
		if i > 0 && name == s {
			return PrivilegeType(i), nil
		}
	}
	return NonePriv, errors.Errorf("privilege.unknown.name[%s]", s)
}
