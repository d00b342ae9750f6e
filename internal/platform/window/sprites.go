package window

import (
	"image"
	"image/color"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Pixel art, one string per row, '#' lit. Every frame of a sprite has the
// same size; the renderer stretches it over the entity's box.
var bitmaps = map[invaders.Sprite][][]string{
	invaders.SpriteDefender: {{
		"......#......",
		".....###.....",
		".....###.....",
		".###########.",
		"#############",
		"#############",
		"#############",
		"#############",
	}},
	invaders.SpriteDefenderExplosion: {{
		"....#........",
		".........#...",
		"....#..#.....",
		".#...#....#..",
		"...#.###.#...",
		"..#########..",
		".###########.",
		"#############",
	}, {
		"#.....#...#..",
		"...#.........",
		".#...##..#..#",
		"...#####.....",
		".###.####..#.",
		"#.#########.#",
		".###########.",
		"#############",
	}},
	invaders.SpriteBullet: {{
		"#",
		"#",
		"#",
		"#",
	}},
	invaders.SpriteBulletExplosion: {{
		"#...#..#",
		"..#....#",
		".######.",
		"########",
		"########",
		".######.",
		"..#..#..",
		"#..#...#",
	}},
	invaders.SpriteSquid: {{
		"...##...",
		"..####..",
		".######.",
		"##.##.##",
		"########",
		"..#..#..",
		".#.##.#.",
		"#.#..#.#",
	}, {
		"...##...",
		"..####..",
		".######.",
		"##.##.##",
		"########",
		".#.##.#.",
		"#......#",
		".#....#.",
	}},
	invaders.SpriteCrab: {{
		"..#.....#..",
		"...#...#...",
		"..#######..",
		".##.###.##.",
		"###########",
		"#.#######.#",
		"#.#.....#.#",
		"...##.##...",
	}, {
		"..#.....#..",
		"#..#...#..#",
		"#.#######.#",
		"###.###.###",
		"###########",
		".#########.",
		"..#.....#..",
		".#.......#.",
	}},
	invaders.SpriteOctopus: {{
		"....####....",
		".##########.",
		"############",
		"###..##..###",
		"############",
		"...##..##...",
		"..##.##.##..",
		"##........##",
	}, {
		"....####....",
		".##########.",
		"############",
		"###..##..###",
		"############",
		"..###..###..",
		".##..##..##.",
		"..##....##..",
	}},
	invaders.SpriteAlienExplosion: {{
		"....#...#....",
		".#...#.#...#.",
		"..#.......#..",
		"...#.....#...",
		"##.........##",
		"...#.....#...",
		"..#.#...#.#..",
		".#...#.#...#.",
	}},
	invaders.SpriteBombA: {
		{".#.", "#..", ".#.", "..#", ".#.", "#..", ".#."},
		{".#.", "..#", ".#.", "#..", ".#.", "..#", ".#."},
		{".#.", "#..", ".#.", "..#", ".#.", "#..", ".#."},
		{".#.", "..#", ".#.", "#..", ".#.", "..#", ".#."},
	},
	invaders.SpriteBombB: {
		{".#.", ".#.", ".#.", ".#.", ".#.", "###", ".#."},
		{".#.", ".#.", ".#.", "###", ".#.", ".#.", ".#."},
		{".#.", "###", ".#.", ".#.", ".#.", ".#.", ".#."},
		{"###", ".#.", ".#.", ".#.", ".#.", ".#.", ".#."},
	},
	invaders.SpriteBombC: {
		{".#.", ".##", ".#.", "##.", ".#.", ".##", ".#."},
		{".#.", "##.", ".#.", ".##", ".#.", "##.", ".#."},
		{".#.", ".##", ".#.", "##.", ".#.", ".##", ".#."},
		{".#.", "##.", ".#.", ".##", ".#.", "##.", ".#."},
	},
	invaders.SpriteBombExplosion: {{
		".#..#.",
		"#..#..",
		".####.",
		"######",
		".####.",
		"#.##.#",
		"..#..#",
		"#....#",
	}},
}

var (
	colorWhite = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	colorGreen = color.RGBA{0x30, 0xe0, 0x40, 0xff}
	colorRed   = color.RGBA{0xf0, 0x40, 0x30, 0xff}
	colorGray  = color.RGBA{0x60, 0x60, 0x60, 0xff}
)

// spriteColor is the tint of a sprite, as on the cabinet's color overlay.
func spriteColor(s invaders.Sprite) color.RGBA {
	switch s {
	case invaders.SpriteDefender:
		return colorGreen
	case invaders.SpriteDefenderExplosion, invaders.SpriteBombExplosion:
		return colorRed
	default:
		return colorWhite
	}
}

// bitmap rasterizes one frame of a sprite. The frame wraps around.
func bitmap(s invaders.Sprite, frame int) *image.RGBA {
	frames, ok := bitmaps[s]
	if !ok {
		return nil
	}
	rows := frames[frame%len(frames)]
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	clr := spriteColor(s)
	for y, row := range rows {
		for x, px := range row {
			if px == '#' {
				img.SetRGBA(x, y, clr)
			}
		}
	}
	return img
}
