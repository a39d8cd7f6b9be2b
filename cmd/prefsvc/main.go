// 门户偏好服务守护进程
//
// 用法：
//
//	PORTALTOUR_PREFSVC_ADDR=:8391 PORTALTOUR_PREFSVC_DB=prefs.db prefsvc
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"

	"github.com/decker502/portaltour/internal/prefsvc"
)

// envConfig 进程级配置（环境变量）
type envConfig struct {
	Addr   string `env:"PORTALTOUR_PREFSVC_ADDR" envDefault:":8391"`
	DBPath string `env:"PORTALTOUR_PREFSVC_DB" envDefault:"portaltour-prefs.db"`
}

func main() {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		log.Fatalf("failed to parse environment config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := prefsvc.Run(ctx, ec.Addr, ec.DBPath); err != nil {
		log.Fatal(err)
	}
}
