/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package rule

import (
	"testing"

	"github.com/sealdb/authority/config"
	"github.com/sealdb/authority/privilege"

	"github.com/sealdb/mysqlstack/xlog"
	"github.com/stretchr/testify/assert"
)

func mockUsersConfig() []*config.UserConfig {
	return []*config.UserConfig{
		{
			User:     "alice",
			Host:     "%",
			Password: "cipher1",
			Grants: []*config.GrantConfig{
				{
					Database:   "sales",
					Privileges: []string{"SELECT"},
				},
			},
		},
		{
			User:     "bob",
			Host:     "192.168.0.1",
			Password: "cipher2",
			Grants: []*config.GrantConfig{
				{
					Database:   "hr",
					Privileges: []string{"SELECT", "INSERT", "DROP"},
				},
				{
					Database:   "sales",
					Privileges: []string{"SHOW_DB"},
				},
			},
		},
	}
}

func TestStandardFind(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))
	standard, err := NewStandard(log, mockUsersConfig())
	assert.Nil(t, err)

	// Wildcard host matches any host.
	{
		user, ok := standard.FindUser(&Grantee{User: "alice", Host: "10.0.0.7"})
		assert.True(t, ok)
		assert.Equal(t, "cipher1", user.Password)

		privs, ok := standard.FindPrivileges(&Grantee{User: "alice", Host: "10.0.0.7"})
		assert.True(t, ok)
		assert.True(t, privs.HasDatabase("sales"))
		assert.False(t, privs.HasDatabase("hr"))
		assert.True(t, privs.HasPrivileges(privilege.SelectPriv))
		assert.False(t, privs.HasPrivileges(privilege.InsertPriv))
	}

	// Exact host must match.
	{
		_, ok := standard.FindUser(&Grantee{User: "bob", Host: "192.168.0.2"})
		assert.False(t, ok)

		privs, ok := standard.FindPrivileges(&Grantee{User: "bob", Host: "192.168.0.1"})
		assert.True(t, ok)
		assert.True(t, privs.HasDatabase("hr"))
		assert.True(t, privs.HasDatabase("sales"))
		assert.True(t, privs.HasPrivileges(privilege.DropPriv))
		// At-least-one semantics.
		assert.True(t, privs.HasPrivileges(privilege.TruncatePriv, privilege.InsertPriv))
		assert.False(t, privs.HasPrivileges(privilege.TruncatePriv, privilege.AlterPriv))
	}

	// Unknown user and nil grantee.
	{
		_, ok := standard.FindUser(&Grantee{User: "carol", Host: "%"})
		assert.False(t, ok)
		_, ok = standard.FindPrivileges(nil)
		assert.False(t, ok)
		_, ok = standard.FindUser(nil)
		assert.False(t, ok)
	}
}

func TestStandardError(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))

	// Empty user name.
	{
		users := []*config.UserConfig{
			{User: ""},
		}
		_, err := NewStandard(log, users)
		assert.NotNil(t, err)
	}

	// Unknown privilege name.
	{
		users := []*config.UserConfig{
			{
				User: "alice",
				Grants: []*config.GrantConfig{
					{
						Database:   "sales",
						Privileges: []string{"FLY"},
					},
				},
			},
		}
		_, err := NewStandard(log, users)
		assert.NotNil(t, err)
	}
}

func TestMockRule(t *testing.T) {
	mock := NewMockRule()
	mock.AddUser("alice", "cipher1", &MockPrivileges{
		Databases: []string{"sales"},
		Privs:     []privilege.PrivilegeType{privilege.SelectPriv},
	})

	user, ok := mock.FindUser(&Grantee{User: "alice", Host: "%"})
	assert.True(t, ok)
	assert.Equal(t, "cipher1", user.Password)

	privs, ok := mock.FindPrivileges(&Grantee{User: "alice", Host: "%"})
	assert.True(t, ok)
	assert.True(t, privs.HasDatabase("sales"))
	assert.False(t, privs.HasPrivileges(privilege.DropPriv))

	_, ok = mock.FindUser(nil)
	assert.False(t, ok)
}
