// levelforge is the level toolkit CLI: inspect level files, convert
// them between format versions, publish/fetch them against the level
// database, and run Lua transform scripts over them.
//
// Usage:
//
//	levelforge info <file>
//	levelforge new -name <name> -theme <theme> -width W -height H <file>
//	levelforge convert -version N <in> <out>
//	levelforge script <script.lua> <in> <out>
//	levelforge publish <file>
//	levelforge fetch -id N <file>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gastropod/levelforge/internal/config"
	"github.com/gastropod/levelforge/internal/content"
	"github.com/gastropod/levelforge/internal/edit"
	"github.com/gastropod/levelforge/internal/level"
	"github.com/gastropod/levelforge/internal/scripting"
	"github.com/gastropod/levelforge/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Console display helpers ───────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            levelforge  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m        關卡檔案工具 · Go 版本             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	displayWidth := 0
	for _, r := range title {
		if r > 0x7F {
			displayWidth += 2
		} else {
			displayWidth++
		}
	}
	lineLen := 46 - displayWidth - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label, value string) {
	displayWidth := 0
	for _, r := range label {
		if r > 0x7F {
			displayWidth += 2
		} else {
			displayWidth++
		}
	}
	dotsLen := 42 - displayWidth - len(value)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), value)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

// ── Command dispatch ──────────────────────────────────────────────

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: levelforge <info|new|convert|script|publish|fetch> ...")
	}

	cfgPath := "config/levelforge.toml"
	if p := os.Getenv("LEVELFORGE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadOrDefaults(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner()

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "info":
		return cmdInfo(cfg, log, args)
	case "new":
		return cmdNew(cfg, log, args)
	case "convert":
		return cmdConvert(cfg, log, args)
	case "script":
		return cmdScript(cfg, log, args)
	case "publish":
		return cmdPublish(cfg, log, args)
	case "fetch":
		return cmdFetch(cfg, log, args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// ── Level file helpers ────────────────────────────────────────────

func loadLevel(path string, log *zap.Logger) (*level.Level, error) {
	fs := store.NewFileStore(filepath.Dir(path))
	packed, err := fs.Read(filepath.Base(path))
	if err != nil {
		return nil, err
	}
	raw, err := store.Unpack(packed)
	if err != nil {
		return nil, err
	}
	return level.NewDecoder(log).Decode(raw)
}

func saveLevel(path string, lvl *level.Level, version, compressionLevel int) error {
	enc := level.NewEncoder()
	if version > 0 {
		enc.Version = version
	}
	packed, err := store.Pack(enc.Encode(lvl), compressionLevel)
	if err != nil {
		return err
	}
	fs := store.NewFileStore(filepath.Dir(path))
	return fs.Write(filepath.Base(path), packed)
}

func loadThemes(cfg *config.Config) (*content.ThemeTable, error) {
	return content.LoadThemeTable(filepath.Join(cfg.Paths.DataDir, "theme_list.yaml"))
}

// ── Commands ──────────────────────────────────────────────────────

func cmdInfo(cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return fmt.Errorf("usage: levelforge info <file>")
	}
	lvl, err := loadLevel(fs.Arg(0), log)
	if err != nil {
		return err
	}

	printSection("關卡資訊")
	printStat("名稱", lvl.Name)
	printStat("作者", lvl.Author)
	printStat("格式版本", fmt.Sprintf("%d", lvl.FormatVersion))
	printStat("主題", lvl.Theme)
	printStat("物件", fmt.Sprintf("%d", len(lvl.Actors)))
	printStat("圖層", fmt.Sprintf("%d", len(lvl.Layers)))
	if lvl.Singleplayer {
		printStat("炸彈倒數", fmt.Sprintf("%d", lvl.BombTimer))
	}
	if lvl.PublishedID != 0 {
		printStat("發佈編號", fmt.Sprintf("%d", lvl.PublishedID))
	}
	fmt.Println()

	printSection("圖層")
	for _, tl := range lvl.Layers {
		printStat(tl.Tag, fmt.Sprintf("%dx%d", tl.Width, tl.Height))
	}
	fmt.Println()
	return nil
}

func cmdNew(cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	name := fs.String("name", "untitled", "level name")
	theme := fs.String("theme", "", "theme name")
	width := fs.Int("width", 64, "width in tiles")
	height := fs.Int("height", 36, "height in tiles")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 || *theme == "" {
		return fmt.Errorf("usage: levelforge new -name <name> -theme <theme> [-width W -height H] <file>")
	}

	themes, err := loadThemes(cfg)
	if err != nil {
		return err
	}
	ed, err := edit.NewLevel(*name, *width, *height, *theme, themes, log)
	if err != nil {
		return err
	}
	// Every level starts with exactly one start checkpoint.
	ed.AddCheckpoint(level.Vec2{X: 1, Y: 1}, true)

	if err := saveLevel(fs.Arg(0), ed.Level, cfg.Codec.TargetVersion, cfg.Codec.CompressionLevel); err != nil {
		return err
	}
	printOK(fmt.Sprintf("已建立關卡 %s", fs.Arg(0)))
	return nil
}

func cmdConvert(cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	version := fs.Int("version", level.CurrentVersion, "target format version")
	if err := fs.Parse(args); err != nil || fs.NArg() != 2 {
		return fmt.Errorf("usage: levelforge convert -version N <in> <out>")
	}
	lvl, err := loadLevel(fs.Arg(0), log)
	if err != nil {
		return err
	}
	if err := saveLevel(fs.Arg(1), lvl, *version, cfg.Codec.CompressionLevel); err != nil {
		return err
	}
	printOK(fmt.Sprintf("已轉換為版本 %d:%s", *version, fs.Arg(1)))
	return nil
}

func cmdScript(cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("script", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil || fs.NArg() != 3 {
		return fmt.Errorf("usage: levelforge script <script.lua> <in> <out>")
	}
	lvl, err := loadLevel(fs.Arg(1), log)
	if err != nil {
		return err
	}
	themes, err := loadThemes(cfg)
	if err != nil {
		return err
	}

	engine := scripting.NewEngine(log)
	defer engine.Close()

	ed := edit.New(lvl, themes, log)
	if err := engine.RunFile(ed, fs.Arg(0)); err != nil {
		return err
	}
	if err := saveLevel(fs.Arg(2), lvl, cfg.Codec.TargetVersion, cfg.Codec.CompressionLevel); err != nil {
		return err
	}
	printOK(fmt.Sprintf("腳本執行完成:%s", fs.Arg(2)))
	return nil
}

func cmdPublish(cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return fmt.Errorf("usage: levelforge publish <file>")
	}
	lvl, err := loadLevel(fs.Arg(0), log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	printSection("資料庫")
	db, err := store.Open(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()
	printOK("PostgreSQL 連線成功")

	// Publish at the current version so the stored payload carries
	// the freshest metadata, then stamp the assigned ID into the
	// local file.
	repo := store.NewLevelRepo(db)
	enc := level.NewEncoder()
	id, err := repo.Publish(ctx, lvl.Name, lvl.Author, enc.Version, mustPack(enc.Encode(lvl), cfg.Codec.CompressionLevel))
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	lvl.PublishedID = id
	if err := saveLevel(fs.Arg(0), lvl, cfg.Codec.TargetVersion, cfg.Codec.CompressionLevel); err != nil {
		return err
	}
	printStat("發佈編號", fmt.Sprintf("%d", id))
	return nil
}

func cmdFetch(cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	id := fs.Uint64("id", 0, "published level id")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 || *id == 0 {
		return fmt.Errorf("usage: levelforge fetch -id N <file>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	printSection("資料庫")
	db, err := store.Open(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()
	printOK("PostgreSQL 連線成功")

	repo := store.NewLevelRepo(db)
	row, err := repo.Fetch(ctx, *id)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if row == nil {
		return fmt.Errorf("level %d not found", *id)
	}
	if store.ContentHash(row.Data) != row.ContentHash {
		return fmt.Errorf("level %d: content hash mismatch", *id)
	}

	out := store.NewFileStore(filepath.Dir(fs.Arg(0)))
	if err := out.Write(filepath.Base(fs.Arg(0)), row.Data); err != nil {
		return err
	}
	printOK(fmt.Sprintf("已下載關卡 %d → %s", *id, fs.Arg(0)))
	return nil
}

func mustPack(data []byte, compressionLevel int) []byte {
	packed, err := store.Pack(data, compressionLevel)
	if err != nil {
		// Pack only fails on an invalid compression level.
		panic(err)
	}
	return packed
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var lv zapcore.Level
	if err := lv.UnmarshalText([]byte(cfg.Level)); err != nil {
		lv = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lv)

	return zapCfg.Build()
}
