/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package v1

import (
	"github.com/sealdb/authority/config"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/sealdb/mysqlstack/xlog"
)

type userz struct {
	User   string                `json:"user"`
	Host   string                `json:"host"`
	Grants []*config.GrantConfig `json:"grants"`
}

// UserzHandler impl.
// Reports the provisioned users and their grants, passwords are omitted.
func UserzHandler(log *xlog.Log, conf *config.Config) rest.HandlerFunc {
	f := func(w rest.ResponseWriter, r *rest.Request) {
		userzHandler(log, conf, w, r)
	}
	return f
}

func userzHandler(log *xlog.Log, conf *config.Config, w rest.ResponseWriter, r *rest.Request) {
	users := make([]*userz, 0, len(conf.Users))
	for _, userConf := range conf.Users {
		users = append(users, &userz{
			User:   userConf.User,
			Host:   userConf.Host,
			Grants: userConf.Grants,
		})
	}
	w.WriteJson(users)
}
