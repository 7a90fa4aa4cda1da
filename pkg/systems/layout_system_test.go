package systems

import (
	"testing"

	"github.com/decker502/beauty/pkg/components"
	"github.com/decker502/beauty/pkg/config"
	"github.com/decker502/beauty/pkg/ecs"
	"github.com/decker502/beauty/pkg/entities"
	"github.com/decker502/beauty/pkg/shading"
	"github.com/google/go-cmp/cmp"
)

func TestLayoutSystemBoundsBeforeLayout(t *testing.T) {
	ls := NewLayoutSystem(ecs.NewEntityManager())
	if _, ok := ls.Bounds(); ok {
		t.Error("Bounds() should not be ready before the first layout")
	}

	ls.SetScreenSize(0, 0)
	if _, ok := ls.Bounds(); ok {
		t.Error("Bounds() should not be ready for an empty window")
	}
}

func TestLayoutSystemBounds(t *testing.T) {
	_, ls := newLaidOut(960, 600)

	got, ok := ls.Bounds()
	if !ok {
		t.Fatal("Bounds() not ready after SetScreenSize")
	}
	// 主区域宽 960-288=672，Logo 元素宽 320 居中
	want := shading.BoundingBox{X: 176, Y: 0, Width: 320, Height: 600}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Bounds() mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutSystemUpdatesEntities(t *testing.T) {
	em, ls := newLaidOut(960, 600)
	mainLogo := entities.NewLogo(em, components.LogoMain, entities.SlotMainLogo, true)
	preview := entities.NewLogo(em, components.LogoPreview, entities.SlotPreviewLogo, true)
	picker := entities.NewColorPicker(em, entities.OuterLabel, "outer-color", entities.SlotOuterPicker)

	ls.Update(1.0 / 60)

	bounds, _ := ecs.GetComponent[*components.BoundsComponent](em, mainLogo)
	if !bounds.Visible || bounds.Rect != ls.Layout().MainLogo {
		t.Errorf("main logo bounds = %+v, want visible %+v", bounds, ls.Layout().MainLogo)
	}
	logo, _ := ecs.GetComponent[*components.LogoComponent](em, mainLogo)
	if logo.Transform[0] <= 0 {
		t.Errorf("main logo transform not set: %v", logo.Transform)
	}

	pb, _ := ecs.GetComponent[*components.BoundsComponent](em, preview)
	if !pb.Visible {
		t.Error("preview logo should be visible at 960x600")
	}

	pc, _ := ecs.GetComponent[*components.ColorPickerComponent](em, picker)
	if pc.Layout != ls.Layout().OuterPicker {
		t.Errorf("picker layout = %+v, want %+v", pc.Layout, ls.Layout().OuterPicker)
	}
}

func TestLayoutSystemHidesPreviewInLandscape(t *testing.T) {
	em, ls := newLaidOut(800, 400)
	preview := entities.NewLogo(em, components.LogoPreview, entities.SlotPreviewLogo, true)

	ls.Update(1.0 / 60)

	pb, _ := ecs.GetComponent[*components.BoundsComponent](em, preview)
	if pb.Visible {
		t.Error("preview logo should be hidden in compact landscape")
	}

	// 窗口变高后重新出现
	ls.SetScreenSize(800, 700)
	ls.Update(1.0 / 60)
	if !pb.Visible {
		t.Error("preview logo should reappear when the window is taller")
	}
}

func TestLayoutSystemResizeRefeedsBounds(t *testing.T) {
	_, ls := newLaidOut(960, 600)
	before, _ := ls.Bounds()

	ls.SetScreenSize(1280, 800)
	after, _ := ls.Bounds()
	if before == after {
		t.Errorf("Bounds() unchanged after resize: %+v", after)
	}
	if after.X != (1280-config.SidebarWidth-config.LogoMaxWidth)/2 {
		t.Errorf("after.X = %v", after.X)
	}
}
