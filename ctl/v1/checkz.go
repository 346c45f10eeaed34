/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package v1

import (
	"net/http"

	"github.com/sealdb/authority/authority"
	"github.com/sealdb/authority/privilege"
	"github.com/sealdb/authority/rule"
	"github.com/sealdb/authority/statement"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/sealdb/mysqlstack/xlog"
)

type checkzParams struct {
	User     string `json:"user"`
	Host     string `json:"host"`
	Database string `json:"database"`
	Query    string `json:"query"`
}

type checkzResult struct {
	Allowed   bool   `json:"allowed"`
	Privilege string `json:"privilege"`
	Error     string `json:"error,omitempty"`
}

// CheckzHandler impl.
// Dry-runs an authorization decision for a user and query, without
// executing anything.
func CheckzHandler(log *xlog.Log, rul rule.Rule) rest.HandlerFunc {
	f := func(w rest.ResponseWriter, r *rest.Request) {
		checkzHandler(log, rul, w, r)
	}
	return f
}

func checkzHandler(log *xlog.Log, rul rule.Rule, w rest.ResponseWriter, r *rest.Request) {
	p := checkzParams{}
	if err := r.DecodeJsonPayload(&p); err != nil {
		log.Error("api.v1.checkz.decode.error:%+v", err)
		rest.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	node, err := statement.Parse(p.Query)
	if err != nil {
		log.Error("api.v1.checkz[%v].parse.error:%+v", p.Query, err)
		rest.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := &checkzResult{}
	if priv, ok := privilege.Resolve(node); ok {
		result.Privilege = priv.String()
	}
	grantee := &rule.Grantee{User: p.User, Host: p.Host}
	checker := authority.NewChecker(log, rul, grantee)
	if err := checker.CheckPrivileges(p.Database, node); err != nil {
		result.Error = err.Error()
	} else {
		result.Allowed = true
	}
	w.WriteJson(result)
}
