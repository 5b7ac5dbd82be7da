package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/gastropod/levelforge/internal/edit"
	"github.com/gastropod/levelforge/internal/level"
)

// Engine wraps a single gopher-lua VM for batch level transforms.
// Single-goroutine access only. A transform script defines a global
// `transform()` and mutates the current level through the `level`
// API table.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
	ed  *edit.Editor // bound for the duration of one RunFile
}

// NewEngine creates a Lua engine with the level API registered.
func NewEngine(log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	e.registerAPI()
	return e
}

func (e *Engine) Close() {
	e.vm.Close()
}

// RunFile loads a transform script and calls its transform() against
// the given editor's level.
func (e *Engine) RunFile(ed *edit.Editor, path string) error {
	e.ed = ed
	defer func() { e.ed = nil }()

	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	fn := e.vm.GetGlobal("transform")
	if fn == lua.LNil {
		return fmt.Errorf("%s: no transform() function", path)
	}
	if err := e.vm.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	return nil
}

// layer resolves a tag against the bound level, logging and returning
// nil when the tag is absent so scripts degrade to no-ops instead of
// aborting the batch.
func (e *Engine) layer(tag string) *level.TileLayer {
	tl, ok := e.ed.Level.Layer(tag)
	if !ok {
		e.log.Warn("腳本引用了不存在的圖層", zap.String("layer", tag))
		return nil
	}
	return tl
}

// actor resolves a 1-based script index into the actor list.
func (e *Engine) actor(L *lua.LState, idx int) *level.Actor {
	actors := e.ed.Level.Actors
	if idx < 1 || idx > len(actors) {
		L.RaiseError("actor index %d out of range (1..%d)", idx, len(actors))
		return nil
	}
	return actors[idx-1]
}

func (e *Engine) registerAPI() {
	api := e.vm.NewTable()
	e.vm.SetGlobal("level", api)
	e.vm.SetFuncs(api, map[string]lua.LGFunction{
		"fill": func(L *lua.LState) int {
			if tl := e.layer(L.CheckString(1)); tl != nil {
				tl.Fill(L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), L.CheckInt(5), int32(L.CheckInt(6)))
			}
			return 0
		},
		"move": func(L *lua.LState) int {
			if tl := e.layer(L.CheckString(1)); tl != nil {
				tl.Move(L.CheckInt(2), L.CheckInt(3))
			}
			return 0
		},
		"resize": func(L *lua.LState) int {
			if tl := e.layer(L.CheckString(1)); tl != nil {
				tl.Resize(L.CheckInt(2), L.CheckInt(3))
			}
			return 0
		},
		"clear": func(L *lua.LState) int {
			if tl := e.layer(L.CheckString(1)); tl != nil {
				tl.Clear()
			}
			return 0
		},
		"tile": func(L *lua.LState) int {
			var code int32
			if tl := e.layer(L.CheckString(1)); tl != nil {
				code = tl.At(L.CheckInt(2), L.CheckInt(3))
			}
			L.Push(lua.LNumber(code))
			return 1
		},
		"set_tile": func(L *lua.LState) int {
			if tl := e.layer(L.CheckString(1)); tl != nil {
				tl.Set(L.CheckInt(2), L.CheckInt(3), int32(L.CheckInt(4)))
			}
			return 0
		},
		"set_theme": func(L *lua.LState) int {
			if err := e.ed.SetTheme(L.CheckString(1)); err != nil {
				L.RaiseError("%v", err)
			}
			return 0
		},
		"add_actor": func(L *lua.LState) int {
			pos := level.Vec2{X: float32(L.CheckNumber(2)), Y: float32(L.CheckNumber(3))}
			if _, err := e.ed.AddActor(L.CheckString(1), pos); err != nil {
				L.RaiseError("%v", err)
			}
			L.Push(lua.LNumber(len(e.ed.Level.Actors)))
			return 1
		},
		"add_checkpoint": func(L *lua.LState) int {
			pos := level.Vec2{X: float32(L.CheckNumber(1)), Y: float32(L.CheckNumber(2))}
			e.ed.AddCheckpoint(pos, L.OptBool(3, false))
			L.Push(lua.LNumber(len(e.ed.Level.Actors)))
			return 1
		},
		"connect": func(L *lua.LState) int {
			from := e.actor(L, L.CheckInt(1))
			to := e.actor(L, L.CheckInt(2))
			e.ed.Connect(from, to)
			return 0
		},
		"actor_count": func(L *lua.LState) int {
			L.Push(lua.LNumber(len(e.ed.Level.Actors)))
			return 1
		},
		"actor_type": func(L *lua.LState) int {
			a := e.actor(L, L.CheckInt(1))
			L.Push(lua.LString(a.Type))
			return 1
		},
		"get_field": func(L *lua.LState) int {
			a := e.actor(L, L.CheckInt(1))
			L.Push(lua.LString(a.Value(L.CheckString(2))))
			return 1
		},
		"set_field": func(L *lua.LState) int {
			a := e.actor(L, L.CheckInt(1))
			a.SetValue(L.CheckString(2), L.CheckString(3))
			return 0
		},
		"scale": func(L *lua.LState) int {
			e.ed.Level.Scale(float32(L.CheckNumber(1)), float32(L.CheckNumber(2)))
			return 0
		},
	})
}
