// vgotool is a CLI utility for exporting, importing and inspecting VGO files.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/univgo/internal/config"
	"github.com/Faultbox/univgo/internal/logger"
	"github.com/Faultbox/univgo/pkg/scene"
	"github.com/Faultbox/univgo/pkg/schema"
	"github.com/Faultbox/univgo/pkg/vgo"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "export", "x":
		cmdExport(args)
	case "import", "i":
		cmdImport(args)
	case "materials", "mat":
		cmdMaterials(args)
	case "watch":
		cmdWatch(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vgotool - VGO (glTF + engine extensions) utility

Usage:
  vgotool <command> [options]

Commands:
  info <file.vgo>                     Show version, rights and counts
  export <scene.yaml> [out.vgo]       Export a scene description
  import [file.vgo]                   Import a file and print its object tree
  materials <file.vgo>                Dump material records as JSON
  watch <dir>                         Re-export *.vgo.yaml files when they change

Options (all commands):
  -config <path>    config file (default ./vgotool.yaml, then user config dir)
  -debug            debug logging
  -format png|webp  texture format for re-encoded textures
  -strict           fail on collider shape mismatches
  -log <path>       also write logs to a rotated file
  -debounce <dur>   watch debounce interval

Examples:
  vgotool export room.vgo.yaml room.vgo
  vgotool import room.vgo
  vgotool materials -debug room.vgo
  vgotool watch -format webp ./assets`)
}

// setup parses the shared flags, loads the config and starts logging.
func setup(name string, args []string) (*flag.FlagSet, *config.Config) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitWithFileConfig(cfg.Logging.Level, cfg.FileConfig(), true); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return fs, cfg
}

func fail(err error) {
	logger.Error("command failed", zap.Error(err))
	logger.Sync()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdInfo(args []string) {
	fs, _ := setup("info", args)
	defer logger.Sync()

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vgotool info <file.vgo>")
		os.Exit(1)
	}

	doc, err := gltf.Open(fs.Arg(0))
	if err != nil {
		fail(err)
	}

	fmt.Printf("File:       %s\n", fs.Arg(0))
	fmt.Printf("Generator:  %s\n", doc.Asset.Generator)

	root, err := schema.Get[schema.Root](doc.Extensions, schema.ExtVGO)
	if err != nil {
		fail(err)
	}
	if root == nil {
		fmt.Println("VGO:        (none, plain glTF)")
	} else {
		fmt.Printf("VGO:        %s\n", root.GenVersion)
		if r := root.Right; r != nil {
			printField("Title", r.Title)
			printField("Author", r.Author)
			printField("Organization", r.Organization)
			printField("Version", r.Version)
			printField("License", r.LicenseURL)
		}
	}

	fmt.Println()
	fmt.Printf("Nodes:      %d\n", len(doc.Nodes))
	fmt.Printf("Meshes:     %d\n", len(doc.Meshes))
	fmt.Printf("Materials:  %d\n", len(doc.Materials))
	fmt.Printf("Textures:   %d\n", len(doc.Textures))
	fmt.Printf("Images:     %d\n", len(doc.Images))

	shaders := make(map[string]int)
	for _, gm := range doc.Materials {
		name, err := vgo.ShaderName(gm)
		if err != nil {
			name = "(invalid)"
		}
		shaders[name]++
	}
	if len(shaders) > 0 {
		fmt.Println()
		fmt.Println("Materials by shader:")
		names := make([]string, 0, len(shaders))
		for name := range shaders {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-30s %d\n", name, shaders[name])
		}
	}

	if len(doc.ExtensionsUsed) > 0 {
		fmt.Println()
		fmt.Printf("Extensions: %s\n", strings.Join(doc.ExtensionsUsed, ", "))
	}
}

func printField(label, value string) {
	if value != "" {
		fmt.Printf("  %-12s %s\n", label+":", value)
	}
}

func cmdExport(args []string) {
	fs, cfg := setup("export", args)
	defer logger.Sync()

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vgotool export <scene.yaml> [out.vgo]")
		os.Exit(1)
	}

	out := ""
	if fs.NArg() > 1 {
		out = fs.Arg(1)
	}
	path, err := exportFile(cfg, fs.Arg(0), out)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Exported: %s\n", path)
}

// exportFile exports a scene description. An empty out derives the output
// path from src and the configured extension.
func exportFile(cfg *config.Config, src, out string) (string, error) {
	s, err := scene.LoadFile(src)
	if err != nil {
		return "", err
	}

	exp, err := cfg.Exporter()
	if err != nil {
		return "", err
	}
	exp.Log = logger.Named("export")

	doc, err := exp.ExportScene(s)
	if err != nil {
		return "", err
	}

	if out == "" {
		out = outputPath(src, cfg.Export.OutputExt)
	}
	if err := vgo.Save(doc, out); err != nil {
		return "", err
	}
	return out, nil
}

func cmdImport(args []string) {
	fs, cfg := setup("import", args)
	defer logger.Sync()

	path := fs.Arg(0)
	if path == "" {
		var err error
		path, err = dialog.File().
			Filter("VGO files", "vgo", "glb", "gltf").
			Filter("All Files", "*").
			Title("Open VGO File").
			Load()
		if err != nil {
			if errors.Is(err, dialog.ErrCancelled) {
				return
			}
			fail(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	im := &vgo.Importer{Log: logger.Named("import")}
	s, err := im.Load(ctx, path, cfg.ImportOptions())
	if err != nil {
		fail(err)
	}

	fmt.Printf("Scene: %s (VGO %s)\n", s.Name, s.Version)
	s.Walk(func(obj *scene.GameObject, depth int) {
		fmt.Printf("%s%s%s\n", strings.Repeat("  ", depth+1), obj.Name, describe(obj))
	})

	if len(s.Materials) > 0 {
		fmt.Println()
		fmt.Println("Materials:")
		for _, m := range s.Materials {
			fmt.Printf("  %-24s %s\n", m.Name, m.Shader)
		}
	}
}

// describe returns a bracketed component summary of obj.
func describe(obj *scene.GameObject) string {
	var parts []string
	if !obj.Active {
		parts = append(parts, "inactive")
	}
	if obj.Tag != "" && obj.Tag != "Untagged" {
		parts = append(parts, "tag="+obj.Tag)
	}
	for _, c := range obj.Colliders {
		parts = append(parts, string(c.Shape())+"Collider")
	}
	if obj.Rigidbody != nil {
		parts = append(parts, "Rigidbody")
	}
	if r := obj.Renderer; r != nil {
		parts = append(parts, fmt.Sprintf("Renderer(%s, %d materials)", r.Mesh, len(r.Materials)))
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, ", ") + "]"
}

type materialDump struct {
	Index      int             `json:"index"`
	Name       string          `json:"name"`
	Shader     string          `json:"shader"`
	AlphaMode  string          `json:"alphaMode"`
	Extensions gltf.Extensions `json:"extensions,omitempty"`
}

func cmdMaterials(args []string) {
	fs, _ := setup("materials", args)
	defer logger.Sync()

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vgotool materials <file.vgo>")
		os.Exit(1)
	}

	doc, err := gltf.Open(fs.Arg(0))
	if err != nil {
		fail(err)
	}

	dump := make([]materialDump, 0, len(doc.Materials))
	for i, gm := range doc.Materials {
		name, err := vgo.ShaderName(gm)
		if err != nil {
			fail(fmt.Errorf("material %d: %w", i, err))
		}
		dump = append(dump, materialDump{
			Index:      i,
			Name:       gm.Name,
			Shader:     name,
			AlphaMode:  alphaModeName(gm.AlphaMode),
			Extensions: gm.Extensions,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		fail(err)
	}
}

func alphaModeName(m gltf.AlphaMode) string {
	switch m {
	case gltf.AlphaMask:
		return "MASK"
	case gltf.AlphaBlend:
		return "BLEND"
	default:
		return "OPAQUE"
	}
}

func cmdWatch(args []string) {
	fs, cfg := setup("watch", args)
	defer logger.Sync()

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vgotool watch <dir>")
		os.Exit(1)
	}
	dir, err := filepath.Abs(fs.Arg(0))
	if err != nil {
		fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := &watcher{
		dir:      dir,
		pattern:  cfg.Watch.Pattern,
		debounce: cfg.Watch.Debounce,
		log:      logger.Named("watch"),
		export: func(src string) (string, error) {
			return exportFile(cfg, src, "")
		},
	}
	fmt.Fprintf(os.Stderr, "Watching %s for %s (Ctrl+C to stop)\n", dir, cfg.Watch.Pattern)
	if err := w.run(ctx); err != nil {
		fail(err)
	}
}
