// 引导之旅可视化验证工具
//
// 从仓库根目录运行，强制以重播模式启动引导（跳过欢迎框和完成检查），
// 进度不落盘，便于反复验证各角色目录的高亮、定位与自动滚动：
//
//	go run ./cmd/verify_tour -role admin
//	go run ./cmd/verify_tour -role student -welcome
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/portaltour/pkg/app"
)

var (
	role    = flag.String("role", "instructor", "role label: admin / superadmin / student / anything else")
	user    = flag.String("user", "verifier", "user display name")
	welcome = flag.Bool("welcome", false, "start from the welcome dialog instead of replaying immediately")
	verbose = flag.Bool("verbose", true, "enable verbose logging")
)

func main() {
	flag.Parse()

	portal, err := app.NewApp(app.Config{
		Verbose:            *verbose,
		UserName:           *user,
		Role:               *role,
		StartImmediate:     !*welcome,
		DisablePersistence: true,
	})
	if err != nil {
		log.Fatalf("failed to initialize verify app: %v", err)
	}

	ebiten.SetWindowSize(app.DefaultWindowWidth, app.DefaultWindowHeight)
	ebiten.SetWindowTitle("verify_tour - " + *role)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(portal); err != nil {
		log.Fatal(err)
	}
}
