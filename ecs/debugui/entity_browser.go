package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/archkit-go/archkit/ecs"
)

type entityInfo struct {
	id         ecs.Entity
	typeString string
	compCount  int
}

// EntityBrowser lists every live entity across every archetype, with a
// text filter, an optional archetype filter (set by clicking a row in
// ArchetypeViewer), and simple pagination. Grounded on the teacher's
// entity_browser.go, with EntityId/archetype-ID columns replaced by
// Entity/Type.String() since this module has no uint32 archetype id.
type EntityBrowser struct {
	cache              []entityInfo
	lastArchetypeCount int

	filterText         string
	filterType         *ecs.Type
	sortColumn         int
	sortAscending      bool
	selected           ecs.Entity
	maxEntitiesPerPage int
	currentPage        int
}

// Render draws the entity browser window.
func (eb *EntityBrowser) Render(r *ecs.Registry) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if eb.maxEntitiesPerPage == 0 {
		eb.maxEntitiesPerPage = 100
	}
	eb.rebuildCacheIfNeeded(r)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterType = nil
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Archetype")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		filtered := eb.filtered()

		start := eb.currentPage * eb.maxEntitiesPerPage
		end := start + eb.maxEntitiesPerPage
		if end > len(filtered) {
			end = len(filtered)
		}

		for i := start; i < end; i++ {
			e := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selected == e.id
			if imgui.SelectableBoolV(fmt.Sprintf("%d", e.id), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = e.id
			}

			imgui.TableNextColumn()
			imgui.Text(e.typeString)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", e.compCount))
		}

		imgui.EndTable()
	}

	filtered := eb.filtered()
	if len(filtered) > eb.maxEntitiesPerPage {
		totalPages := (len(filtered) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func (eb *EntityBrowser) rebuildCacheIfNeeded(r *ecs.Registry) {
	count := r.ArchetypeCount()
	if eb.lastArchetypeCount == count && eb.cache != nil {
		return
	}
	eb.lastArchetypeCount = count

	eb.cache = eb.cache[:0]
	for _, a := range r.Archetypes() {
		typeString := a.Type().String()
		compCount := a.Type().Len()
		for row := 0; row < a.Count(); row++ {
			eb.cache = append(eb.cache, entityInfo{
				id:         a.EntityAt(row),
				typeString: typeString,
				compCount:  compCount,
			})
		}
	}
	eb.sortEntities()
}

func (eb *EntityBrowser) sortEntities() {
	sort.Slice(eb.cache, func(i, j int) bool {
		a, b := eb.cache[i], eb.cache[j]
		var less bool
		switch eb.sortColumn {
		case 0:
			less = a.id < b.id
		case 1:
			less = a.typeString < b.typeString
		case 2:
			less = a.compCount < b.compCount
		default:
			less = a.id < b.id
		}
		if !eb.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowser) filtered() []entityInfo {
	if eb.filterText == "" && eb.filterType == nil {
		return eb.cache
	}

	out := make([]entityInfo, 0, len(eb.cache))
	needle := strings.ToLower(eb.filterText)
	for _, e := range eb.cache {
		if eb.filterType != nil && e.typeString != eb.filterType.String() {
			continue
		}
		if needle != "" {
			idStr := fmt.Sprintf("%d", e.id)
			if !strings.Contains(idStr, needle) && !strings.Contains(strings.ToLower(e.typeString), needle) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// Selected returns the entity currently selected in the browser, if any.
func (eb *EntityBrowser) Selected() (ecs.Entity, bool) {
	return eb.selected, eb.selected != 0
}
