// Package edit provides the high-level mutations callers perform on
// a loaded level: theme switching, actor placement, checkpoint
// wiring. Structural problems these operations notice are advisory
// only: they are logged and the operation proceeds.
package edit

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gastropod/levelforge/internal/content"
	"github.com/gastropod/levelforge/internal/level"
)

// Editor bundles a level with the theme table and a logger.
type Editor struct {
	Level  *level.Level
	Themes *content.ThemeTable
	log    *zap.Logger
}

func New(lvl *level.Level, themes *content.ThemeTable, log *zap.Logger) *Editor {
	return &Editor{Level: lvl, Themes: themes, log: log}
}

// NewLevel builds an empty level of the given tile dimensions with
// every layer of the theme allocated.
func NewLevel(name string, width, height int, themeName string, themes *content.ThemeTable, log *zap.Logger) (*Editor, error) {
	theme, ok := themes.Get(themeName)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", themeName)
	}
	lvl := &level.Level{
		FormatVersion: level.CurrentVersion,
		Name:          name,
		Theme:         theme.Name,
	}
	for _, tag := range theme.Layers {
		lvl.Layers = append(lvl.Layers, level.NewTileLayer(tag, width, height))
	}
	ed := New(lvl, themes, log)
	ed.checkTileSize(theme)
	return ed, nil
}

// SetTheme switches the level to another theme and reconciles the
// layer list: layers the new theme needs are appended empty, sized
// like the level's first layer. Layers the theme does not name are
// kept; their content indices may still mean something to whoever
// removes them.
func (e *Editor) SetTheme(name string) error {
	theme, ok := e.Themes.Get(name)
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	e.Level.Theme = theme.Name

	w, h := 0, 0
	if len(e.Level.Layers) > 0 {
		w, h = e.Level.Layers[0].Width, e.Level.Layers[0].Height
	}
	for _, tag := range theme.Layers {
		if _, ok := e.Level.Layer(tag); !ok {
			e.Level.Layers = append(e.Level.Layers, level.NewTileLayer(tag, w, h))
		}
	}
	e.checkTileSize(theme)
	return nil
}

// checkTileSize warns when layer dimensions do not divide evenly by
// the theme's tile size. The level still loads and renders, just with
// a ragged edge.
func (e *Editor) checkTileSize(theme *content.Theme) {
	if theme.TileSize <= 1 {
		return
	}
	for _, tl := range e.Level.Layers {
		if tl.Width%theme.TileSize != 0 || tl.Height%theme.TileSize != 0 {
			e.log.Warn("圖層尺寸不是主題磚塊大小的倍數",
				zap.String("layer", tl.Tag),
				zap.Int("width", tl.Width),
				zap.Int("height", tl.Height),
				zap.Int("tile_size", theme.TileSize),
			)
		}
	}
}

// AddActor constructs an actor of the given kind at pos and appends
// it to the level. Placing a theme-restricted kind into the wrong
// theme is allowed but logged.
func (e *Editor) AddActor(kind string, pos level.Vec2) (*level.Actor, error) {
	shape := level.ShapeFor(kind)
	if shape == nil {
		return nil, fmt.Errorf("unknown actor kind %q", kind)
	}
	if theme, ok := e.Themes.Get(e.Level.Theme); ok && !theme.AllowsActor(kind, e.Themes) {
		e.log.Warn("物件種類不屬於目前主題",
			zap.String("kind", kind),
			zap.String("theme", e.Level.Theme),
		)
	}
	a := shape.New()
	a.Pos = pos
	e.Level.AddActor(a)
	return a, nil
}

// AddCheckpoint places a checkpoint with the next free ID. A second
// start checkpoint is accepted with a warning; the game uses the
// first one it finds.
func (e *Editor) AddCheckpoint(pos level.Vec2, isStart bool) *level.Actor {
	if isStart {
		for _, cp := range e.Level.Checkpoints() {
			if level.IsStartCheckpoint(cp) {
				e.log.Warn("關卡已有起始檢查點", zap.Int("existing_id", level.CheckpointID(cp)))
				break
			}
		}
	}
	a := e.Level.NewCheckpoint(pos)
	if isStart {
		a.SetValue("IsStart", level.FormatBool(true))
	}
	return a
}

// Connect wires checkpoint from to checkpoint to in the successor
// graph.
func (e *Editor) Connect(from, to *level.Actor) {
	level.Connect(from, to)
}
