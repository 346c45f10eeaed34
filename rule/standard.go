/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package rule

import (
	"github.com/sealdb/authority/config"
	"github.com/sealdb/authority/privilege"

	"github.com/juju/errors"
	"github.com/sealdb/mysqlstack/xlog"
)

// Standard is the config-provisioned rule store.
// It is an immutable snapshot built once from the users config, a grant
// change is applied by building a new Standard and swapping the reference.
type Standard struct {
	log     *xlog.Log
	entries map[string][]*entry
}

type entry struct {
	user  *User
	privs *grantSet
}

type grantSet struct {
	databases map[string]struct{}
	privs     map[privilege.PrivilegeType]struct{}
}

// HasDatabase impl.
func (g *grantSet) HasDatabase(database string) bool {
	_, ok := g.databases[database]
	return ok
}

// HasPrivileges impl.
func (g *grantSet) HasPrivileges(privs ...privilege.PrivilegeType) bool {
	for _, priv := range privs {
		if _, ok := g.privs[priv]; ok {
			return true
		}
	}
	return false
}

// NewStandard builds the rule store from the users config.
func NewStandard(log *xlog.Log, users []*config.UserConfig) (*Standard, error) {
	standard := &Standard{
		log:     log,
		entries: make(map[string][]*entry),
	}
	for _, userConf := range users {
		if userConf.User == "" {
			return nil, errors.NotValidf("rule.user.with.empty.name")
		}
		privs := &grantSet{
			databases: make(map[string]struct{}),
			privs:     make(map[privilege.PrivilegeType]struct{}),
		}
		for _, grant := range userConf.Grants {
			privs.databases[grant.Database] = struct{}{}
			for _, name := range grant.Privileges {
				priv, err := privilege.ParsePrivilege(name)
				if err != nil {
					return nil, errors.Annotatef(err, "rule.user[%s].database[%s]", userConf.User, grant.Database)
				}
				privs.privs[priv] = struct{}{}
			}
		}
		e := &entry{
			user: &User{
				Grantee: Grantee{
					User: userConf.User,
					Host: userConf.Host,
				},
				Password: userConf.Password,
			},
			privs: privs,
		}
		standard.entries[userConf.User] = append(standard.entries[userConf.User], e)
		log.Info("rule.load.user[%v].databases.num[%d]", e.user.Grantee.String(), len(privs.databases))
	}
	return standard, nil
}

// FindUser impl.
func (s *Standard) FindUser(grantee *Grantee) (*User, bool) {
	e, ok := s.find(grantee)
	if !ok {
		return nil, false
	}
	return e.user, true
}

// FindPrivileges impl.
func (s *Standard) FindPrivileges(grantee *Grantee) (Privileges, bool) {
	e, ok := s.find(grantee)
	if !ok {
		return nil, false
	}
	return e.privs, true
}

func (s *Standard) find(grantee *Grantee) (*entry, bool) {
	if grantee == nil {
		return nil, false
	}
	for _, e := range s.entries[grantee.User] {
		if matchHost(e.user.Grantee.Host, grantee.Host) {
			return e, true
		}
	}
	return nil, false
}

// matchHost matches a provisioned host against the connecting host.
// Empty and '%' match any host, anything else matches exactly.
func matchHost(provisioned string, host string) bool {
	if provisioned == "" || provisioned == "%" {
		return true
	}
	return provisioned == host
}
