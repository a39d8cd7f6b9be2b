package main

import (
	"flag"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/portaltour/pkg/app"
	"github.com/decker502/portaltour/pkg/embedded"
)

// envConfig 进程级配置（环境变量）
type envConfig struct {
	// PrefsURL 偏好服务地址；为空时进度保存在本地
	PrefsURL string `env:"PORTALTOUR_PREFS_URL"`
	// UserName 当前用户名
	UserName string `env:"PORTALTOUR_USER" envDefault:"demo"`
	// Role 当前用户角色（admin/superadmin/student，其他按教师端处理）
	Role string `env:"PORTALTOUR_ROLE" envDefault:"instructor"`
}

var (
	verbose = flag.Bool("verbose", false, "enable verbose logging")
	replay  = flag.Bool("replay", false, "replay the tour immediately, bypassing the completion check")
)

func main() {
	flag.Parse()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		log.Fatalf("failed to parse environment config: %v", err)
	}

	// 初始化嵌入资源（引导步骤配置）
	embedded.Init(assetsFS)

	portal, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		UserName:       ec.UserName,
		Role:           ec.Role,
		StartImmediate: *replay,
		PrefsURL:       ec.PrefsURL,
	})
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	ebiten.SetWindowSize(app.DefaultWindowWidth, app.DefaultWindowHeight)
	ebiten.SetWindowTitle("Campus Portal")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(portal); err != nil {
		log.Fatal(err)
	}
}
