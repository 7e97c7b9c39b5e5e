package gconf

import (
	"dragchess/src/base"
	"dragchess/src/logic/convert/convfen"
	"encoding/json"
	"fmt"
	"os"
)

const DefaultFile = "dragchess.json"

const minSquareSize = 32

type Config struct {
	Theme      string `json:"theme"`       // light/dark
	Lang       string `json:"language"`    // key of the message catalogue
	LangDir    string `json:"lang_dir"`    // optional yaml overrides
	Title      string `json:"title"`       // empty: taken from the language file
	SquareSize int    `json:"square_size"` // pixels, window is 10 squares wide
	StartFEN   string `json:"start_fen"`   // placement field
	PiecesDir  string `json:"pieces_dir"`  // <color>-<type>.png or .svg
	FontPath   string `json:"font_path"`   // ttf for board labels
	LogLevel   string `json:"log_level"`   // debug/info/warn/error
	Debug      bool   `json:"debug"`       // true/false

	path string
}

func defaultConfig() Config {
	return Config{
		Theme:      "light",
		Lang:       "en",
		SquareSize: 60,
		StartFEN:   base.START_FEN,
		PiecesDir:  "assets/pieces",
		FontPath:   "assets/fonts/Lexend-Regular.ttf",
		LogLevel:   "info",
		Debug:      false,
	}
}

// NewGUIConfig reads file, or returns the defaults when it does not exist.
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		def.path = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	c := defaultConfig()
	if err := json.NewDecoder(conf).Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	c.path = file

	return &c, nil
}

func (c *Config) Path() string {
	return c.path
}

// WindowSize is ten squares: the board plus a square of margin per side.
func (c *Config) WindowSize() int {
	return c.SquareSize * (base.BoardSide + 2)
}

// ToggleTheme switches between the light and dark palettes and returns the
// new theme name. The file is not written; call Save.
func (c *Config) ToggleTheme() string {
	if c.Theme == "dark" {
		c.Theme = "light"
	} else {
		c.Theme = "dark"
	}
	return c.Theme
}

func (c *Config) Save() error {
	file := c.path
	if file == "" {
		file = DefaultFile
	}
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang == "" {
		c.Lang = def.Lang
	}
	if c.SquareSize < minSquareSize {
		c.SquareSize = def.SquareSize
	}
	if _, _, err := convfen.LoadPosition(c.StartFEN); err != nil {
		c.StartFEN = def.StartFEN
	}
	if c.PiecesDir == "" {
		c.PiecesDir = def.PiecesDir
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = def.LogLevel
	}
}
