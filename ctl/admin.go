/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package ctl

import (
	"net/http"

	"github.com/sealdb/authority/config"
	v1 "github.com/sealdb/authority/ctl/v1"
	"github.com/sealdb/authority/rule"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/sealdb/mysqlstack/xlog"
)

// Admin is the admin portal of the authority daemon.
type Admin struct {
	log    *xlog.Log
	conf   *config.Config
	rule   rule.Rule
	server *http.Server
}

// NewAdmin creates the admin portal.
func NewAdmin(log *xlog.Log, conf *config.Config, rul rule.Rule) *Admin {
	return &Admin{
		log:  log,
		conf: conf,
		rule: rul,
	}
}

// NewRouter creates the api router.
func (admin *Admin) NewRouter() (rest.App, error) {
	log := admin.log
	return rest.MakeRouter(
		rest.Get("/v1/authority/ping", v1.PingHandler(log)),
		rest.Get("/v1/authority/userz", v1.UserzHandler(log, admin.conf)),
		rest.Post("/v1/authority/checkz", v1.CheckzHandler(log, admin.rule)),
	)
}

// Start used to start the admin portal.
func (admin *Admin) Start() {
	log := admin.log
	api := rest.NewApi()
	router, err := admin.NewRouter()
	if err != nil {
		log.Panic("admin.make.router.error[%+v]", err)
	}
	api.SetApp(router)
	addr := admin.conf.Admin.AdminAddress
	admin.server = &http.Server{Addr: addr, Handler: api.MakeHandler()}
	go func() {
		log.Info("admin.start[%v]", addr)
		if err := admin.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("admin.start.error[%+v]", err)
		}
	}()
}

// Stop used to stop the admin portal.
func (admin *Admin) Stop() {
	if admin.server != nil {
		admin.server.Close()
	}
	admin.log.Info("admin.shutdown.complete[%v]", admin.conf.Admin.AdminAddress)
}
