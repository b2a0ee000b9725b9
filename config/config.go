// Package config reads and writes the pad's TOML configuration.
package config

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	AppName  = "pencilpad"
	FileName = "config.toml"
)

type Config struct {
	Window Window
	Canvas Canvas
	Camera Camera
	Assets Assets
	Stroke Stroke
	Intro  Intro
	Margin float32
	// ExportDir is where Ctrl+S writes the drawing.
	ExportDir string
}

type Window struct {
	Title  string
	Width  int
	Height int
}

// Canvas is the fixed size of the 3D render target, centered in the window.
type Canvas struct {
	Width  int
	Height int
}

type Camera struct {
	Distance float32
	Fovy     float32
}

type Assets struct {
	PencilOBJ string
	PencilMTL string
	ShadowSVG string
	CacheDir  string
}

type Stroke struct {
	Color       string
	MinDistance float32
	MaxDistance float32
	Angle       float32
	Smoothing   float32
}

type Intro struct {
	Delay   float32
	Caption string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{Title: "Pencil Pad", Width: 1280, Height: 800},
		Canvas: Canvas{Width: 1920, Height: 1080},
		Camera: Camera{Distance: 25, Fovy: 45},
		Assets: Assets{
			PencilOBJ: "https://s3-us-west-2.amazonaws.com/s.cdpn.io/356608/PENCIL.obj",
			PencilMTL: "https://s3-us-west-2.amazonaws.com/s.cdpn.io/356608/PENCIL.mtl",
			ShadowSVG: "https://s3-us-west-2.amazonaws.com/s.cdpn.io/356608/shadow.svg",
			CacheDir:  filepath.Join(cacheHome(), AppName),
		},
		Stroke: Stroke{
			Color:       "#424242",
			MinDistance: 5,
			MaxDistance: 30,
			Angle:       10,
			Smoothing:   10,
		},
		Intro:     Intro{Delay: 2, Caption: "Loading pencil..."},
		Margin:    50,
		ExportDir: ".",
	}
}

// Dir returns the directory the config file lives in.
func Dir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), AppName)
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), FileName)
}

// InitializeIfNot writes the default config to file if it doesn't exist yet.
func InitializeIfNot(file string) error {
	ok, err := exists(file)
	if err != nil {
		return fmt.Errorf("check config file: %w", err)
	}
	if ok {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	log.Println("Initializing config")
	conf := Default()
	return Write(file, &conf)
}

// Read loads file on top of the defaults, so missing keys keep their
// default values.
func Read(file string) (*Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(file, &conf); err != nil {
		return nil, fmt.Errorf("read config %s: %w", file, err)
	}
	if _, err := ParseColor(conf.Stroke.Color); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Write stores conf in file.
func Write(file string, conf *Config) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(file, buffer.Bytes(), 0o644)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("want #rrggbb")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return c, nil
}

func cacheHome() string {
	return xdgOrFallback("XDG_CACHE_HOME", filepath.Join(os.Getenv("HOME"), ".cache"))
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			return dir
		}
	}
	return fallback
}
