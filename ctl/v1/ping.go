/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package v1

import (
	"github.com/sealdb/authority/version"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/sealdb/mysqlstack/xlog"
)

// PingHandler impl.
func PingHandler(log *xlog.Log) rest.HandlerFunc {
	f := func(w rest.ResponseWriter, r *rest.Request) {
		pingHandler(log, w, r)
	}
	return f
}

func pingHandler(log *xlog.Log, w rest.ResponseWriter, r *rest.Request) {
	type ping struct {
		Version string `json:"version"`
	}
	w.WriteJson(&ping{Version: version.GetVersion()})
}
