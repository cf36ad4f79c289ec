package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
)

// FieldLine is one row of a flattened struct dump.
type FieldLine struct {
	Depth int
	Name  string
	Value string
	Group bool
}

// Describe flattens the exported fields of v, depth first.
func Describe(v any) []FieldLine {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return []FieldLine{{Value: formatValue(val)}}
	}

	var lines []FieldLine
	describeStruct(&lines, val, 0)
	return lines
}

func describeStruct(lines *[]FieldLine, val reflect.Value, depth int) {
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				*lines = append(*lines, FieldLine{Depth: depth, Name: field.Name, Value: "nil"})
				continue
			}
			fieldVal = fieldVal.Elem()
		}

		if field.IsStruct {
			*lines = append(*lines, FieldLine{Depth: depth, Name: field.Name, Group: true})
			describeStruct(lines, fieldVal, depth+1)
			continue
		}

		*lines = append(*lines, FieldLine{Depth: depth, Name: field.Name, Value: formatValue(fieldVal)})
	}
}

// GameInspector shows the live game state and can inject commands.
type GameInspector struct {
	Game  *engine.Game
	Input *loop.Queue

	CellSize float32
}

// NewGameInspector returns an inspector for g. Commands issued from the
// window are pushed to input when it is non-nil.
func NewGameInspector(g *engine.Game, input *loop.Queue) *GameInspector {
	return &GameInspector{Game: g, Input: input, CellSize: 8}
}

func (gi *GameInspector) Render() {
	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if gi.Game == nil {
		imgui.Text("No game")
		imgui.End()
		return
	}

	snap := gi.Game.Snapshot()
	renderLines(Describe(snap.Progress))
	imgui.Separator()

	if imgui.TreeNodeStr("Active Piece") {
		renderLines(Describe(snap.Active))
		imgui.Text(fmt.Sprintf("GhostY: %d", snap.GhostY))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Next / Hold") {
		imgui.Text(fmt.Sprintf("Next: %s", snap.Next.Kind))
		imgui.Text(snap.Next.Shape.String())
		if snap.Hold.Full {
			imgui.Text(fmt.Sprintf("Hold: %s (used: %t)", snap.Hold.Piece.Kind, snap.Hold.Used))
			imgui.Text(snap.Hold.Piece.Shape.String())
		} else {
			imgui.Text("Hold: empty")
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		gi.renderBoard(snap)
		imgui.TreePop()
	}

	if gi.Input != nil {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Pending commands: %d", gi.Input.Len()))
		for c := engine.MoveLeft; c <= engine.Quit; c++ {
			if c != engine.MoveLeft {
				imgui.SameLine()
			}
			if imgui.Button(c.String()) {
				gi.Input.Push(c)
			}
		}
	}

	imgui.End()
}

func (gi *GameInspector) renderBoard(snap engine.Snapshot) {
	cells := snap.Composite()
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	size := gi.CellSize

	for y := range board.Height {
		for x := range board.Width {
			c := cells[y][x]
			if c == piece.None {
				continue
			}
			topLeft := imgui.NewVec2(origin.X+float32(x)*size, origin.Y+float32(y)*size)
			bottomRight := imgui.NewVec2(topLeft.X+size-1, topLeft.Y+size-1)
			drawList.AddRectFilled(topLeft, bottomRight, imgui.ColorU32Vec4(cellColor(c)))
		}
	}

	// Reserve the drawn area so following widgets are laid out below it.
	imgui.Dummy(imgui.NewVec2(size*board.Width, size*board.Height))
}

func renderLines(lines []FieldLine) {
	for _, line := range lines {
		indent := strings.Repeat("  ", line.Depth)
		if line.Group {
			imgui.Text(fmt.Sprintf("%s%s:", indent, line.Name))
			continue
		}
		imgui.Text(fmt.Sprintf("%s%s: %s", indent, line.Name, line.Value))
	}
}

var palette = [piece.KindCount]imgui.Vec4{
	piece.I: imgui.NewVec4(0.0, 0.9, 0.9, 1),
	piece.O: imgui.NewVec4(0.9, 0.9, 0.0, 1),
	piece.T: imgui.NewVec4(0.7, 0.2, 0.9, 1),
	piece.L: imgui.NewVec4(0.95, 0.6, 0.1, 1),
	piece.J: imgui.NewVec4(0.2, 0.3, 0.95, 1),
	piece.S: imgui.NewVec4(0.2, 0.85, 0.3, 1),
	piece.Z: imgui.NewVec4(0.9, 0.2, 0.2, 1),
}

func cellColor(c piece.Color) imgui.Vec4 {
	k, ok := piece.KindOf(c)
	if !ok {
		return imgui.NewVec4(0.5, 0.5, 0.5, 1)
	}
	return palette[k]
}
