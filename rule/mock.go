/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package rule

import (
	"github.com/sealdb/authority/privilege"
)

// MockPrivileges used to mock a grant set for tests.
type MockPrivileges struct {
	Databases []string
	Privs     []privilege.PrivilegeType
}

// HasDatabase impl.
func (m *MockPrivileges) HasDatabase(database string) bool {
	for _, db := range m.Databases {
		if db == database {
			return true
		}
	}
	return false
}

// HasPrivileges impl.
func (m *MockPrivileges) HasPrivileges(privs ...privilege.PrivilegeType) bool {
	for _, priv := range privs {
		for _, held := range m.Privs {
			if held == priv {
				return true
			}
		}
	}
	return false
}

// MockRule used to mock a rule store for tests, keyed by user name only.
type MockRule struct {
	Users map[string]*User
	Privs map[string]Privileges
}

// NewMockRule creates an empty mock rule store.
func NewMockRule() *MockRule {
	return &MockRule{
		Users: make(map[string]*User),
		Privs: make(map[string]Privileges),
	}
}

// AddUser adds a user with its grant set to the mock.
func (m *MockRule) AddUser(user string, password string, privs Privileges) {
	m.Users[user] = &User{
		Grantee: Grantee{
			User: user,
			Host: "%",
		},
		Password: password,
	}
	if privs != nil {
		m.Privs[user] = privs
	}
}

// FindUser impl.
func (m *MockRule) FindUser(grantee *Grantee) (*User, bool) {
	if grantee == nil {
		return nil, false
	}
	user, ok := m.Users[grantee.User]
	return user, ok
}

// FindPrivileges impl.
func (m *MockRule) FindPrivileges(grantee *Grantee) (Privileges, bool) {
	if grantee == nil {
		return nil, false
	}
	privs, ok := m.Privs[grantee.User]
	return privs, ok
}
