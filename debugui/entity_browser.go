package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stepwise/entity"
	"github.com/plus3/stepwise/world"
)

// EntityInfo is one row of the entity browser.
type EntityInfo struct {
	ID            world.ID
	X, Y          float32
	VX, VY        float32
	Gravity       bool
	Extrapolation bool
	Physics       string
	Draw          string
}

// SystemName returns the type name of an attached system, or "-".
func SystemName(system any) string {
	if system == nil {
		return "-"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", system), "*")
}

// CollectEntities snapshots the world in spawn order.
func CollectEntities(w *world.World) []EntityInfo {
	infos := make([]EntityInfo, 0, w.Len())
	for id, e := range w.All() {
		infos = append(infos, describe(id, e))
	}
	return infos
}

func describe(id world.ID, e *entity.Entity) EntityInfo {
	velocity := e.Velocity()
	info := EntityInfo{
		ID:            id,
		X:             e.Location.X,
		Y:             e.Location.Y,
		VX:            velocity.X,
		VY:            velocity.Y,
		Gravity:       e.AffectedByGravity(),
		Extrapolation: e.ExtrapolationActive(),
		Physics:       SystemName(e.PhysicsSystem()),
		Draw:          SystemName(e.DrawSystem()),
	}
	return info
}

// FilterEntities keeps rows whose ID or system names contain text,
// case-insensitively.
func FilterEntities(infos []EntityInfo, text string) []EntityInfo {
	if text == "" {
		return infos
	}

	filterLower := strings.ToLower(text)
	filtered := make([]EntityInfo, 0, len(infos))
	for _, info := range infos {
		idStr := fmt.Sprintf("%d", info.ID)
		systems := strings.ToLower(info.Physics + " " + info.Draw)
		if !strings.Contains(idStr, filterLower) && !strings.Contains(systems, filterLower) {
			continue
		}
		filtered = append(filtered, info)
	}
	return filtered
}

// SortEntities orders rows by the browser column index. Rows with equal
// keys keep their order in both directions.
func SortEntities(infos []EntityInfo, column int, ascending bool) {
	sort.SliceStable(infos, func(i, j int) bool {
		a, b := infos[i], infos[j]
		if !ascending {
			a, b = b, a
		}

		switch column {
		case 1:
			return a.X < b.X
		case 2:
			return a.Y < b.Y
		case 3:
			return a.Physics < b.Physics
		case 4:
			return a.Draw < b.Draw
		default:
			return a.ID < b.ID
		}
	})
}

type EntityBrowser struct {
	selectedEntityId   world.ID
	filterText         string
	sortColumn         int
	sortAscending      bool
	maxEntitiesPerPage int
	currentPage        int
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		sortAscending:      true,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowser) Render(w *world.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	entities := FilterEntities(CollectEntities(w), eb.filterText)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableSetupColumn("Physics")
		imgui.TableSetupColumn("Draw")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		SortEntities(entities, eb.sortColumn, eb.sortAscending)

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		if startIdx > len(entities) {
			eb.currentPage = 0
			startIdx = 0
		}
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(entities))

		for i := startIdx; i < endIdx; i++ {
			info := entities[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == info.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = info.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f", info.X))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f", info.Y))
			imgui.TableNextColumn()
			imgui.Text(info.Physics)
			imgui.TableNextColumn()
			imgui.Text(info.Draw)
		}

		imgui.EndTable()
	}

	if len(entities) > eb.maxEntitiesPerPage {
		totalPages := (len(entities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(entities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(entities)))
	}

	imgui.End()
}

func (eb *EntityBrowser) GetSelectedEntity() world.ID {
	return eb.selectedEntityId
}
