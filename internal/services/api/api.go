// Package api provides the HTTP API for the application
package api

import (
	"time"

	"todotrack/internal/core/history"
	"todotrack/internal/platform/config"
	"todotrack/internal/platform/logger"
	phttp "todotrack/internal/platform/net/http"
	"todotrack/internal/platform/store"

	"todotrack/internal/modkit"
	"todotrack/internal/modkit/httpkit"
	"todotrack/internal/modkit/module"
	"todotrack/internal/modkit/repokit"
	"todotrack/internal/modkit/swaggerkit"

	activitysvc "todotrack/internal/services/activity/service"
	"todotrack/internal/services/api/docs"
	histmod "todotrack/internal/services/api/history/module"
	histsvc "todotrack/internal/services/api/history/service"
	metamod "todotrack/internal/services/api/meta/module"
	statsmod "todotrack/internal/services/api/stats/module"
	timesmod "todotrack/internal/services/api/times/module"
	todosmod "todotrack/internal/services/api/todos/module"
	identrepo "todotrack/internal/services/ident/repo"
	identsvc "todotrack/internal/services/ident/service"
)

// Prefix is where every module is mounted
const Prefix = "/api/v1"

// Options are the API options
type Options struct {
	// Config is the root config; CORE_API_, SERVICE_* and HISTORY_ are read beneath it
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	CORSOrigins    []string
	// Cache is shared with other entry points; nil gets a fresh one
	Cache *history.Cache
}

// OptionsFromConfig reads the CORE_API_ toggles
func OptionsFromConfig(root config.Conf, st *store.Store) Options {
	c := root.Prefix("CORE_API_")
	return Options{
		Config:         root,
		Store:          st,
		Logger:         logger.Named("api"),
		EnableSwagger:  c.MayBool("SWAGGER", false),
		EnableProfiler: c.MayBool("PROFILER", false),
		CORSOrigins:    c.MayCSV("CORS_ORIGINS", nil),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	if opt.Logger == nil {
		opt.Logger = logger.Named("api")
	}
	if opt.Cache == nil {
		opt.Cache = history.NewCache()
	}
	apiCfg := opt.Config.Prefix("CORE_API_")
	pgCfg := opt.Config.Prefix("SERVICE_PGSQL_")
	chCfg := opt.Config.Prefix("SERVICE_CLICKHOUSE_")

	var hooks []repokit.BeginHook
	if d := pgCfg.MayDuration("STATEMENT_TIMEOUT", 0); d > 0 {
		hooks = append(hooks, repokit.StatementTimeout(d))
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log: *opt.Logger,
		Cfg: opt.Config,
		PG:  repokit.WithBeginHooks(opt.Store.PG, hooks...),
		CH:  opt.Store.CH,
	}

	auth := identsvc.New(deps.PG, identrepo.NewPG())
	sink := activitysvc.New(deps.CH, chCfg.MayDuration("INSERT_TIMEOUT", 2*time.Second))

	// history owns the snapshot cache; todos and times drop entries through its port
	hist := histmod.New(deps, modkit.WithAuth(auth), modkit.WithPorts(histmod.Ports{Cache: opt.Cache}))
	inval := module.MustPortsOf[histsvc.Service](hist)

	mods := []modkit.Module{
		metamod.New(deps),
		todosmod.New(deps, modkit.WithAuth(auth), modkit.WithPorts(todosmod.Ports{Activity: sink, History: inval})),
		timesmod.New(deps, modkit.WithAuth(auth), modkit.WithPorts(timesmod.Ports{Activity: sink, History: inval})),
		hist,
		statsmod.New(deps, modkit.WithAuth(auth)),
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest: apiCfg.MayDuration("SLOW_REQUEST", time.Second),
		Heartbeat:   Prefix + "/ping",
	})

	// swagger and profiler sit beside the versioned api
	swaggerkit.Mount(r, opt.EnableSwagger, docs.SwaggerInfo.ReadDoc)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			opt.Logger.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
}
