package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type drawable struct {
	entry *donburi.Entry
	depth float64
}

// DrawWorld renders every positioned entity as a debug shape, lowest depth
// first. World coordinates map directly to screen coordinates.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	var items []drawable
	components.Transform.Each(ecs.World, func(e *donburi.Entry) {
		items = append(items, drawable{entry: e, depth: components.Transform.Get(e).Depth})
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].depth < items[j].depth
	})

	for _, it := range items {
		e := it.entry
		pos := components.Transform.Get(e).Position
		x, y := float32(pos.X), float32(pos.Y)

		switch {
		case e.HasComponent(tags.Wall):
			t := float32(cfg.Map.TileSize)
			vector.FillRect(screen, x-t, y-t, t*2, t*2, cfg.UI.WallColor, false)
		case e.HasComponent(components.Drop):
			drawDrop(screen, e, x, y)
		case e.HasComponent(components.Pig):
			vector.DrawFilledCircle(screen, x, y, 6, cfg.UI.PigColor, true)
		case e.HasComponent(components.Enemy):
			enemy := components.Enemy.Get(e)
			drawPolygon(screen, x, y, float32(enemy.Radius), enemy.Sides, cfg.UI.EnemyColor)
		case e.HasComponent(components.Projectile):
			s := float32(cfg.Projectile.Size)
			vector.FillRect(screen, x-s/2, y-s/2, s, s, cfg.UI.ProjectileColor, false)
		case e.HasComponent(components.Player):
			r := float32(components.Player.Get(e).Radius)
			vector.FillRect(screen, x-r, y-r, r*2, r*2, cfg.UI.PlayerColor, false)
		}
	}
}

func drawDrop(screen *ebiten.Image, e *donburi.Entry, x, y float32) {
	dropType := components.Drop.Get(e).Type
	c, ok := cfg.UI.DropColors[string(dropType)]
	if !ok {
		c = cfg.White
	}
	if e.HasComponent(components.Bob) {
		y -= components.Bob.Get(e).Offset
	}
	vector.DrawFilledCircle(screen, x, y, 3, c, true)
}

// drawPolygon outlines a regular polygon with the given circumradius.
func drawPolygon(screen *ebiten.Image, cx, cy, r float32, sides int, c color.Color) {
	if sides < 3 {
		sides = 3
	}
	step := 2 * math.Pi / float64(sides)
	for i := 0; i < sides; i++ {
		a0 := float64(i)*step - math.Pi/2
		a1 := a0 + step
		x0 := cx + r*float32(math.Cos(a0))
		y0 := cy + r*float32(math.Sin(a0))
		x1 := cx + r*float32(math.Cos(a1))
		y1 := cy + r*float32(math.Sin(a1))
		vector.StrokeLine(screen, x0, y0, x1, y1, 1.5, c, true)
	}
}
