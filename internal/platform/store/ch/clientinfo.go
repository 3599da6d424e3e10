package ch

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo identifies this process in system.query_log
func BuildClientInfo(app, role string) clickhouse.ClientInfo {
	if app == "" {
		app = "todotrack"
	}
	host, _ := os.Hostname()

	var info clickhouse.ClientInfo
	for _, p := range [][2]string{
		{app, revision()},
		{"role", role},
		{"go", runtime.Version()},
		{"host", host},
	} {
		info.Products = append(info.Products, struct{ Name, Version string }{
			Name:    strings.TrimSpace(p[0]),
			Version: strings.TrimSpace(p[1]),
		})
	}
	return info
}

func revision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return "dev"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return "dev"
}
