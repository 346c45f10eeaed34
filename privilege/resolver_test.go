/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package privilege

import (
	"testing"

	"github.com/sealdb/authority/statement"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		node statement.Statement
		want PrivilegeType
	}{
		{&statement.ShowDatabases{}, ShowDBPriv},
		{&statement.Select{}, SelectPriv},
		{&statement.Insert{}, InsertPriv},
		{&statement.Update{}, UpdatePriv},
		{&statement.Delete{}, DeletePriv},
		{&statement.AlterDatabase{}, AlterAnyDatabasePriv},
		{&statement.AlterTable{}, AlterPriv},
		{&statement.CreateDatabase{}, CreateDatabasePriv},
		{&statement.CreateTable{}, CreateTablePriv},
		{&statement.CreateFunction{}, CreateFunctionPriv},
		{&statement.DropTable{}, DropPriv},
		{&statement.DropDatabase{}, DropPriv},
		{&statement.Truncate{}, TruncatePriv},
	}

	for _, test := range tests {
		got, ok := Resolve(test.node)
		assert.True(t, ok)
		assert.Equal(t, test.want, got)
	}
}

func TestResolveUnmapped(t *testing.T) {
	nodes := []statement.Statement{
		// DML kinds without a mapping.
		&statement.Union{},
		&statement.Replace{},
		// DDL kinds without a mapping.
		&statement.CreateIndex{},
		&statement.DropIndex{},
		// Kinds outside the DML/DDL/show-databases dispatch.
		&statement.ShowTables{},
		&statement.Use{},
		&statement.Unsupported{},
	}

	for _, node := range nodes {
		got, ok := Resolve(node)
		assert.False(t, ok)
		assert.Equal(t, NonePriv, got)
	}
}

func TestPrivilegeString(t *testing.T) {
	assert.Equal(t, "SELECT", SelectPriv.String())
	assert.Equal(t, "ALTER_ANY_DATABASE", AlterAnyDatabasePriv.String())
	assert.Equal(t, "SHOW_DB", ShowDBPriv.String())
	assert.Equal(t, "", NonePriv.String())
	assert.Equal(t, "", PrivilegeType(1024).String())
}

func TestParsePrivilege(t *testing.T) {
	priv, err := ParsePrivilege("TRUNCATE")
	assert.Nil(t, err)
	assert.Equal(t, TruncatePriv, priv)

	_, err = ParsePrivilege("GRANT_OPTION")
	assert.NotNil(t, err)

	_, err = ParsePrivilege("")
	assert.NotNil(t, err)
}
