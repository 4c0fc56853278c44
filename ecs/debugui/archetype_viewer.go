package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/archkit-go/archkit/ecs"
)

type archetypeInfo struct {
	typeString  string
	typ         ecs.Type
	compCount   int
	entityCount int
}

// ArchetypeViewer lists every archetype currently installed in a Registry,
// sortable by component count or row count, with a click-through that
// feeds EntityBrowser's filter. Grounded on the teacher's
// archetype_viewer.go, with its uint32 archetype id column dropped -- this
// module identifies an archetype by its Type, not a separate numeric id.
type ArchetypeViewer struct {
	cache              []archetypeInfo
	lastArchetypeCount int
	sortColumn         int
	sortAscending      bool
	selected           string
}

// Render draws the archetype viewer window and returns the Type of the
// archetype the user just clicked, or nil.
func (av *ArchetypeViewer) Render(r *ecs.Registry) *ecs.Type {
	if !imgui.BeginV("Archetype Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	av.rebuildCacheIfNeeded(r)

	maxEntities := 0
	for _, a := range av.cache {
		if a.entityCount > maxEntities {
			maxEntities = a.entityCount
		}
	}

	var clicked *ecs.Type

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ArchetypeTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Comp Count")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			av.sortColumn = int(spec.ColumnIndex())
			av.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			av.sortArchetypes()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, a := range av.cache {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := av.selected == a.typeString
			if imgui.SelectableBoolV(a.typeString, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				av.selected = a.typeString
				typ := a.typ
				clicked = &typ
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", a.compCount))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", a.entityCount))

			if maxEntities > 0 {
				barWidth := float32(a.entityCount) / float32(maxEntities) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

func (av *ArchetypeViewer) rebuildCacheIfNeeded(r *ecs.Registry) {
	count := r.ArchetypeCount()
	if av.lastArchetypeCount == count && av.cache != nil {
		av.updateEntityCounts(r)
		return
	}
	av.lastArchetypeCount = count
	av.rebuildCache(r)
}

func (av *ArchetypeViewer) rebuildCache(r *ecs.Registry) {
	archetypes := r.Archetypes()
	av.cache = make([]archetypeInfo, 0, len(archetypes))
	for _, a := range archetypes {
		av.cache = append(av.cache, archetypeInfo{
			typeString:  a.Type().String(),
			typ:         a.Type(),
			compCount:   a.Type().Len(),
			entityCount: a.Count(),
		})
	}
	av.sortArchetypes()
}

func (av *ArchetypeViewer) updateEntityCounts(r *ecs.Registry) {
	byType := make(map[string]int, len(av.cache))
	for _, a := range r.Archetypes() {
		byType[a.Type().String()] = a.Count()
	}
	for i := range av.cache {
		if count, ok := byType[av.cache[i].typeString]; ok {
			av.cache[i].entityCount = count
		}
	}
	if av.sortColumn == 2 {
		av.sortArchetypes()
	}
}

func (av *ArchetypeViewer) sortArchetypes() {
	sort.Slice(av.cache, func(i, j int) bool {
		a, b := av.cache[i], av.cache[j]
		var less bool
		switch av.sortColumn {
		case 0:
			less = a.typeString < b.typeString
		case 1:
			less = a.compCount < b.compCount
		case 2:
			less = a.entityCount < b.entityCount
		default:
			less = a.entityCount < b.entityCount
		}
		if !av.sortAscending {
			return !less
		}
		return less
	})
}
