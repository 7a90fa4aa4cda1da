// shade_probe 打印一组指针位置对应的 Logo 明暗
//
// 用法:
//
//	go run ./cmd/shade_probe -width 960 -height 600 -mode dark -step 120
//	go run ./cmd/shade_probe -yaml > shades.yaml
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/shading"
	"gopkg.in/yaml.v3"
)

// sample 单个采样点
type sample struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"`
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

func main() {
	width := flag.Int("width", config.DefaultWindowWidth, "window width")
	height := flag.Int("height", config.DefaultWindowHeight, "window height")
	mode := flag.String("mode", config.DefaultThemeMode, "color mode: dark or light")
	step := flag.Float64("step", 120, "grid step in pixels")
	asYAML := flag.Bool("yaml", false, "print samples as YAML")
	flag.Parse()

	polarity, ok := shading.ParsePolarity(*mode)
	if !ok {
		log.Fatalf("未知主题: %q", *mode)
	}
	if *step <= 0 {
		log.Fatalf("-step 必须为正数，当前为 %v", *step)
	}

	layout := config.ComputeLayout(*width, *height)
	r := layout.MainLogo
	box := &shading.BoundingBox{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	if r.Empty() {
		// 没有主 Logo 元素时引擎按无包围盒处理
		box = nil
	}

	var samples []sample
	for y := 0.0; y <= float64(*height); y += *step {
		for x := 0.0; x <= float64(*width); x += *step {
			angle := shading.ComputeAngle(box, x, y)
			res := shading.Compute(box, shading.PointerPosition{X: x, Y: y}, polarity)
			samples = append(samples, sample{X: x, Y: y, Angle: math.Round(angle*1000) / 1000, Left: res.Left, Right: res.Right})
		}
	}

	if *asYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(samples); err != nil {
			log.Fatalf("YAML 输出失败: %v", err)
		}
		return
	}

	fmt.Println("==========================================================")
	fmt.Printf("Logo 明暗采样 %dx%d mode=%s\n", *width, *height, polarity)
	if box != nil {
		cx, cy := box.OpticalCenter()
		fmt.Printf("主 Logo 元素 {%.0f, %.0f, %.0f, %.0f}，光学中心 (%.1f, %.1f)\n", box.X, box.Y, box.Width, box.Height, cx, cy)
	}
	fmt.Println("==========================================================")
	fmt.Printf("%8s %8s %8s %6s %6s\n", "x", "y", "angle", "left", "right")
	for _, s := range samples {
		fmt.Printf("%8.0f %8.0f %8.3f %6.2f %6.2f\n", s.X, s.Y, s.Angle, s.Left, s.Right)
	}
}
