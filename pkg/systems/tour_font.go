package systems

import (
	"bytes"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 覆盖层文本的字体管理
// 使用 ebiten 自带的 M+ 字体，避免为覆盖层单独引入字体资源

var tourFontSource *text.GoTextFaceSource

// tourFace 返回指定字号的覆盖层字体
// 字体源懒加载；加载失败返回 nil，调用方需要跳过文本绘制
func tourFace(size float64) *text.GoTextFace {
	if tourFontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
		if err != nil {
			log.Printf("[TourFont] Warning: failed to load overlay font: %v", err)
			return nil
		}
		tourFontSource = source
	}
	return &text.GoTextFace{Source: tourFontSource, Size: size}
}

// wrapText 把文本按最大像素宽度折行
// 按单词折行；单个超宽单词独占一行（不截断）
func wrapText(face *text.GoTextFace, content string, maxWidth float64) []string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		w, _ := text.Measure(candidate, face, 0)
		if w > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
