package ecs

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// 测试用组件
type testRectComponent struct {
	X, Y, W, H float64
}

type testShadeComponent struct {
	Left, Right float64
}

func TestCreateEntityIDs(t *testing.T) {
	em := NewEntityManager()

	// ID 从 1 开始，0 保留为无效 ID
	want := []EntityID{1, 2, 3}
	var got []EntityID
	for range want {
		got = append(got, em.CreateEntity())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entity IDs mismatch (-want +got):\n%s", diff)
	}
	if em.EntityCount() != 3 {
		t.Errorf("EntityCount() = %d, want 3", em.EntityCount())
	}
}

func TestComponentLifecycle(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	rectType := reflect.TypeOf(&testRectComponent{})

	if em.HasComponent(id, rectType) {
		t.Fatal("new entity should have no rect")
	}

	em.AddComponent(id, &testRectComponent{X: 176, W: 320, H: 600})
	comp, ok := em.GetComponent(id, rectType)
	if !ok {
		t.Fatal("rect should be found after AddComponent")
	}
	if r := comp.(*testRectComponent); r.X != 176 || r.W != 320 || r.H != 600 {
		t.Errorf("rect = %+v", r)
	}

	// 同类型组件被替换
	em.AddComponent(id, &testRectComponent{X: 1})
	if r, _ := GetComponent[*testRectComponent](em, id); r.X != 1 {
		t.Errorf("replaced rect X = %v, want 1", r.X)
	}

	em.RemoveComponent(id, rectType)
	if em.HasComponent(id, rectType) {
		t.Error("rect should be gone after RemoveComponent")
	}
}

func TestDeferredDestroy(t *testing.T) {
	em := NewEntityManager()
	ids := []EntityID{em.CreateEntity(), em.CreateEntity(), em.CreateEntity()}
	for _, id := range ids {
		AddComponent(em, id, &testRectComponent{})
	}

	em.DestroyEntity(ids[0])
	em.DestroyEntity(ids[2])

	// 清理前实体仍存在
	if got := GetEntitiesWith1[*testRectComponent](em); len(got) != 3 {
		t.Fatalf("before cleanup got %d entities, want 3", len(got))
	}

	em.RemoveMarkedEntities()
	if diff := cmp.Diff([]EntityID{ids[1]}, GetEntitiesWith1[*testRectComponent](em)); diff != "" {
		t.Errorf("after cleanup (-want +got):\n%s", diff)
	}

	// 再次清理不会影响剩余实体
	em.RemoveMarkedEntities()
	if em.EntityCount() != 1 {
		t.Errorf("EntityCount() = %d, want 1", em.EntityCount())
	}
}

func TestGetEntitiesWithCombinations(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	AddComponent(em, both, &testRectComponent{})
	AddComponent(em, both, &testShadeComponent{})

	rectOnly := em.CreateEntity()
	AddComponent(em, rectOnly, &testRectComponent{})

	shadeOnly := em.CreateEntity()
	AddComponent(em, shadeOnly, &testShadeComponent{})

	tests := []struct {
		name string
		got  []EntityID
		want []EntityID
	}{
		{"rect", GetEntitiesWith1[*testRectComponent](em), []EntityID{both, rectOnly}},
		{"shade", GetEntitiesWith1[*testShadeComponent](em), []EntityID{both, shadeOnly}},
		{"rect+shade", GetEntitiesWith2[*testRectComponent, *testShadeComponent](em), []EntityID{both}},
		{"no types", em.GetEntitiesWith(), []EntityID{both, rectOnly, shadeOnly}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetEntitiesWithCreationOrder(t *testing.T) {
	em := NewEntityManager()

	var ids []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testRectComponent{X: float64(i)})
		ids = append(ids, id)
	}

	// 多次查询结果都按创建顺序排列（map 遍历顺序随机）
	for round := 0; round < 5; round++ {
		if diff := cmp.Diff(ids, GetEntitiesWith1[*testRectComponent](em)); diff != "" {
			t.Fatalf("round %d (-want +got):\n%s", round, diff)
		}
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testShadeComponent{Left: 0.52, Right: 1})

	shade, ok := GetComponent[*testShadeComponent](em, id)
	if !ok || shade.Left != 0.52 || shade.Right != 1 {
		t.Errorf("GetComponent = %+v, %v", shade, ok)
	}

	// 修改通过指针直接生效
	shade.Left = 0.63
	if again, _ := GetComponent[*testShadeComponent](em, id); again.Left != 0.63 {
		t.Errorf("component not shared by pointer, Left = %v", again.Left)
	}

	if _, ok := GetComponent[*testRectComponent](em, id); ok {
		t.Error("GetComponent should not find missing component")
	}

	AddComponent(em, id, &testRectComponent{})
	if got := GetEntitiesWith3[*testRectComponent, *testShadeComponent, *testRectComponent](em); len(got) != 1 {
		t.Errorf("GetEntitiesWith3 = %v", got)
	}

	RemoveComponent[*testRectComponent](em, id)
	if HasComponent[*testRectComponent](em, id) {
		t.Error("RemoveComponent did not remove rect")
	}
	if !HasComponent[*testShadeComponent](em, id) {
		t.Error("RemoveComponent removed the wrong type")
	}
}

func TestGetComponentUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	if _, ok := GetComponent[*testRectComponent](em, 42); ok {
		t.Error("unknown entity should have no components")
	}
	// 向不存在的实体添加组件是空操作
	em.AddComponent(42, &testRectComponent{})
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d, want 0", em.EntityCount())
	}
}
