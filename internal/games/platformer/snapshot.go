package platformer

// Snapshot contains the observable game state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	Mode       string
	LevelIndex int
	ElapsedMs  int64
	Deaths     int

	// Player state
	PlayerX, PlayerY   float64
	PlayerVX, PlayerVY float64
	OnGround           bool
	Platform           uint32

	CameraX     float64
	Platforms   int
	Chunks      int
	Checkpoints int // Activated checkpoints

	// Platform positions (each platform is 3 values: ID, X, Y)
	PlatformData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Mode:       g.mode.String(),
		LevelIndex: g.levelIndex,
		ElapsedMs:  g.elapsed.Milliseconds(),
		Deaths:     g.deaths,
		CameraX:    g.cameraX,
	}
	if g.player != nil {
		s.PlayerX, s.PlayerY = g.player.X, g.player.Y
		s.PlayerVX, s.PlayerVY = g.player.VX, g.player.VY
		s.OnGround = g.player.OnGround
		s.Platform = uint32(g.player.LastPlatform)
	}
	if g.level != nil {
		all := g.level.Platforms.All()
		s.Platforms = len(all)
		s.PlatformData = make([]float64, 0, len(all)*3)
		for _, p := range all {
			s.PlatformData = append(s.PlatformData, float64(p.ID), p.X, p.Y)
		}
		for _, cp := range g.level.Checkpoints {
			if cp.Activated {
				s.Checkpoints++
			}
		}
	}
	if g.ledger != nil {
		s.Chunks = g.ledger.Len()
	}
	return s
}
