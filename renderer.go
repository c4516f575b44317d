package main

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gorilla/websocket"
)

// This file renders a post-game GIF of a finished match by replaying the
// official engine's websocket event stream — a side diagnostic, never on
// the move-decision path. It keeps its own lightweight frame types rather
// than the internal Board/Snake (those use an integer serpent id assigned
// at intake; the websocket feed reports the adapter's own string ids).

const (
	canvasWidth  = 64
	canvasHeight = 32
	cellSize     = 3
)

type frameSnake struct {
	ID       string  `json:"ID"`
	Name     string  `json:"Name"`
	Body     []Point `json:"Body"`
	Health   int     `json:"Health"`
	Color    string  `json:"Color"`
	HeadType string  `json:"HeadType"`
	TailType string  `json:"TailType"`
	Death    *struct {
		Cause string `json:"Cause"`
	} `json:"Death"`
}

type frameEvent struct {
	Type string `json:"Type"`
	Data struct {
		ID     string       `json:"ID"`
		Turn   int          `json:"Turn"`
		Snakes []frameSnake `json:"Snakes"`
		Food   []Point      `json:"Food"`
		Width  int          `json:"Width"`
		Height int          `json:"Height"`
	} `json:"Data"`
}

type renderFrame struct {
	width, height int
	snakes        []frameSnake
	food          []Point
}

// RenderGameRecording connects to the official engine's event stream for
// gameID, replays it into a GIF, and returns the encoded bytes. youName
// identifies which snake's survival decides the win/lose screen colour.
func RenderGameRecording(gameID, youName string) ([]byte, error) {
	wsURL := fmt.Sprintf("wss://engine.battlesnake.com/games/%s/events", gameID)

	frames, won, err := collectGameFrames(wsURL, youName)
	if err != nil {
		return nil, fmt.Errorf("collect game frames: %w", err)
	}
	slog.Info("collected game frames", "turns", len(frames))

	return renderFramesToGIF(frames, won)
}

func collectGameFrames(wsURL, youName string) ([]renderFrame, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("dial websocket: %w", err)
	}
	defer conn.Close()

	var frames []renderFrame
	var width, height int
	var lastEvent frameEvent

	for {
		_, message, err := conn.ReadMessage()
		if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("read websocket message: %w", err)
		}

		var event frameEvent
		if err := json.Unmarshal(message, &event); err != nil {
			slog.Error("unmarshal frame event", "error", err)
			continue
		}

		if event.Type == "game_end" {
			width = event.Data.Width
			height = event.Data.Height
			break
		}
		lastEvent = event
		frames = append(frames, renderFrame{snakes: event.Data.Snakes, food: event.Data.Food})
	}

	won := false
	for _, s := range lastEvent.Data.Snakes {
		if s.Name == youName && s.Death == nil {
			won = true
			break
		}
	}

	for i := range frames {
		frames[i].width = width
		frames[i].height = height
	}
	return frames, won, nil
}

func generateColor(name string) color.RGBA {
	h := sha1.New()
	h.Write([]byte(name))
	hash := h.Sum(nil)
	return color.RGBA{hash[0], hash[1], hash[2], 255}
}

func lighten(c color.RGBA) color.RGBA {
	lightened := func(v uint8) uint8 {
		if int(v)+30 > 255 {
			return 255
		}
		return v + 30
	}
	return color.RGBA{R: lightened(c.R), G: lightened(c.G), B: lightened(c.B), A: c.A}
}

func renderFrameToImage(f renderFrame) (*image.RGBA, []color.Color) {
	palette := []color.Color{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 255, 255, 255},
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{0, 0, 255, 255},
		color.RGBA{100, 100, 100, 255},
	}

	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	black := color.RGBA{0, 0, 0, 255}
	draw.Draw(img, img.Bounds(), &image.Uniform{black}, image.Point{}, draw.Src)

	offsetX := canvasWidth - f.width*cellSize
	offsetY := 0

	yOffset := 10
	for _, snake := range f.snakes {
		bodyColor, err := hexToRGBA(snake.Color)
		if err != nil {
			bodyColor = generateColor(snake.Name)
		}
		headColor := lighten(bodyColor)
		palette = append(palette, bodyColor, headColor)

		for i, segment := range snake.Body {
			flippedY := f.height - 1 - segment.Y
			if i == 0 {
				drawCell(img, offsetX+segment.X*cellSize, offsetY+flippedY*cellSize, headColor)
			} else {
				drawCell(img, offsetX+segment.X*cellSize, offsetY+flippedY*cellSize, bodyColor)
			}
		}

		addScaledLabel(img, 10, yOffset, fmt.Sprintf("%3d", len(snake.Body)), bodyColor)
		yOffset += 20
	}

	green := color.RGBA{0, 255, 0, 255}
	for _, food := range f.food {
		flippedY := f.height - 1 - food.Y
		drawCell(img, offsetX+food.X*cellSize, offsetY+flippedY*cellSize, green)
	}

	return img, palette
}

func addScaledLabel(img *image.RGBA, x, y int, label string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}

func hexToRGBA(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color format: %s", hex)
	}
	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return color.RGBA{}, err
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return color.RGBA{}, err
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}, nil
}

func drawCell(img *image.RGBA, x, y int, c color.RGBA) {
	for i := 0; i < cellSize; i++ {
		for j := 0; j < cellSize; j++ {
			if y+j < canvasHeight {
				img.Set(x+i, y+j, c)
			}
		}
	}
}

func renderFramesToGIF(frames []renderFrame, won bool) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames to render")
	}

	const totalDurationMs = 13000
	const maxDelayPerFrame = 20
	delayPerFrame := totalDurationMs / len(frames) / 10
	if delayPerFrame > maxDelayPerFrame {
		delayPerFrame = maxDelayPerFrame
	}

	var images []*image.Paletted
	var delays []int
	for i, f := range frames {
		img, palette := renderFrameToImage(f)
		paletted := image.NewPaletted(img.Bounds(), palette)
		draw.FloydSteinberg.Draw(paletted, img.Bounds(), img, image.Point{})

		images = append(images, paletted)
		if i == len(frames)-1 {
			delays = append(delays, 200)
		} else {
			delays = append(delays, delayPerFrame)
		}
	}

	var winPalette color.Palette
	if won {
		winPalette = color.Palette{color.RGBA{0, 255, 0, 255}}
	} else {
		winPalette = color.Palette{color.RGBA{255, 0, 0, 255}}
	}
	finalScreen := image.NewPaletted(image.Rect(0, 0, canvasWidth, canvasHeight), winPalette)
	images = append(images, finalScreen)
	delays = append(delays, 100)

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, &gif.GIF{Image: images, Delay: delays}); err != nil {
		return nil, fmt.Errorf("encode gif: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeBase64 is a small helper used by callers that push frames to Tidbyt
// instead of archiving them to a bucket.
func encodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
