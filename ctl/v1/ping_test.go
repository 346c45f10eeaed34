/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package v1

import (
	"testing"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/ant0ine/go-json-rest/rest/test"
	"github.com/sealdb/mysqlstack/xlog"
)

func TestCtlV1Ping(t *testing.T) {
	log := xlog.NewStdLog(xlog.Level(xlog.PANIC))

	// server
	api := rest.NewApi()
	router, _ := rest.MakeRouter(
		rest.Get("/v1/authority/ping", PingHandler(log)),
	)
	api.SetApp(router)
	handler := api.MakeHandler()

	// client
	recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("GET", "http://localhost/v1/authority/ping", nil))
	recorded.CodeIs(200)

	// 405.
	recorded = test.RunRequest(t, handler, test.MakeSimpleRequest("POST", "http://localhost/v1/authority/ping", nil))
	recorded.CodeIs(405)
}
