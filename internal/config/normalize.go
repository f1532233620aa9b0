package config

// Normalize clamps malformed values into their usable ranges.
// A hand-edited config never fails to load; it just gets pulled back in bounds.
func (c *NightwalkConfig) Normalize() {
	t := &c.Terrain
	t.Width = maxInt(t.Width, 7)
	if t.TileSize <= 0 {
		t.TileSize = 48
	}
	t.ViewRows = maxInt(t.ViewRows, 6)
	t.ExtraRows = maxInt(t.ExtraRows, 2)
	t.TrailingRows = clampF(t.TrailingRows, 0, float64(t.ExtraRows))
	t.Lights.MinSpacing = maxInt(t.Lights.MinSpacing, 1)
	t.Lights.Span = maxInt(t.Lights.Span, 0)
	t.Lights.InitialSpan = maxInt(t.Lights.InitialSpan, 0)
	t.Benches.Height = maxInt(t.Benches.Height, 1)
	t.Benches.MinSpacing = maxInt(t.Benches.MinSpacing, t.Benches.Height+1)
	t.Benches.Span = maxInt(t.Benches.Span, 0)
	t.Benches.Band = clampF(t.Benches.Band, 0, 2)
	t.Benches.Reach = clampF(t.Benches.Reach, 0, 4)

	// Median features must stay inside the walkable lane
	cols := t.Benches.Columns[:0]
	for _, bc := range t.Benches.Columns {
		if bc.Column < 1 || bc.Column > t.Width-2 {
			continue
		}
		if bc.Blocks != "left" && bc.Blocks != "right" {
			bc.Blocks = ""
		}
		cols = append(cols, bc)
	}
	t.Benches.Columns = cols
	grass := t.GrassColumns[:0]
	for _, gc := range t.GrassColumns {
		if gc >= 1 && gc <= t.Width-2 {
			grass = append(grass, gc)
		}
	}
	t.GrassColumns = grass

	l := &c.Lighting
	l.Floor = clampF(l.Floor, 0, 1)
	l.Peak = clampF(l.Peak, l.Floor, 1)
	if l.Range <= 0 {
		l.Range = 8.5
	}
	if l.Step <= 0 {
		l.Step = 0.25
	}

	c.Scroll.BaseSpeed = clampF(c.Scroll.BaseSpeed, 0, 2000)
	c.Scroll.SlowdownFactor = clampF(c.Scroll.SlowdownFactor, 0, 1)

	if c.Meters.Max <= 0 {
		c.Meters.Max = 5
	}
	c.Scroll.SlowdownThreshold = clampF(c.Scroll.SlowdownThreshold, 0, c.Meters.Max)

	a := &c.Avatar
	a.MinRow = clampInt(a.MinRow, 0, t.ViewRows-2)
	a.BottomMargin = clampInt(a.BottomMargin, 1, t.ViewRows-a.MinRow-1)

	s := &c.Hazards.Structure
	normalizeWindow(&s.Spawn)
	s.Rate = clampF(s.Rate, 0, 100)
	s.Radius = clampF(s.Radius, 0, float64(t.Width))
	s.PullFactor = clampF(s.PullFactor, 0, 1)
	s.Width = clampInt(s.Width, 1, t.Width/2)
	s.Height = maxInt(s.Height, 1)
	s.DisableRadius = clampF(s.DisableRadius, 0, float64(t.Width))

	ag := &c.Hazards.Agent
	normalizeWindow(&ag.Spawn)
	ag.Rate = clampF(ag.Rate, 0, 100)
	ag.Radius = clampF(ag.Radius, 0, float64(t.Width))
	if ag.MoveMs <= 0 {
		ag.MoveMs = 500
	}
	ag.FlipChance = clampF(ag.FlipChance, 0, 1)

	b := &c.Benefits
	b.DispenseRadius = clampF(b.DispenseRadius, 0, float64(t.Width))
	b.Width = clampInt(b.Width, 1, t.Width/2)
	b.Height = maxInt(b.Height, 1)
	for i := range b.Shops {
		normalizeWindow(&b.Shops[i].Spawn)
		if b.Shops[i].Dispenses == "" {
			b.Shops[i].Dispenses = b.Shops[i].Kind
		}
	}

	col := &c.Collectibles
	col.PickupRadius = clampF(col.PickupRadius, 0, 2)
	col.Gain = clampF(col.Gain, 0, c.Meters.Max)
	if col.Values == nil {
		col.Values = map[string]int{}
	}
	normalizeWindow(&col.Zine)

	st := &c.States
	st.EmpowerMs = clampF(st.EmpowerMs, 0, 600000)
	st.MaxTransformations = maxInt(st.MaxTransformations, 1)
	st.ScorePerMs = clampF(st.ScorePerMs, 0, 10)

	if len(c.Catalog.Universities) == 0 {
		c.Catalog.Universities = DefaultCatalog().Universities
	}
	unis := c.Catalog.Universities[:0]
	for _, u := range c.Catalog.Universities {
		if u.Name != "" && len(u.Houses) > 0 {
			unis = append(unis, u)
		}
	}
	if len(unis) == 0 {
		unis = DefaultCatalog().Universities
	}
	c.Catalog.Universities = unis
	if _, ok := c.Catalog.FindUniversity(c.Catalog.University); !ok {
		c.Catalog.University = ""
	}

	c.Difficulty.InitialLevel = clampF(c.Difficulty.InitialLevel, 0, 1)
}

func normalizeWindow(w *SpawnWindow) {
	w.MinMs = clampF(w.MinMs, 1, 3600000)
	w.SpanMs = clampF(w.SpanMs, 0, 3600000)
}

func maxInt(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
