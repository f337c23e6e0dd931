package blockbuilder

import (
	"image"
	"math"
	"runtime"
	"sync"
)

// Match assigns a block to every pixel of working. Fully transparent pixels
// become Air; every other pixel gets the candidate whose reference color
// has the smallest truncated distance to it under metric. Ties go to the
// block that comes first in the enumeration.
//
// The candidate scan of each pixel is split across workers goroutines
// (GOMAXPROCS when workers < 1). Pixels are handled one after another.
func Match(working *image.NRGBA, palette *Palette, metric Metric, workers int) *Grid {
	b := working.Rect
	if b.Empty() {
		panic("blockbuilder: match on an empty working image")
	}
	m := newMatcher(palette, metric, workers)
	defer m.close()

	g := &Grid{
		width:  b.Dx(),
		height: b.Dy(),
		cells:  make([]Block, b.Dx()*b.Dy()),
	}
	memo := make(map[[3]uint8]Block)
	for y := range g.height {
		for x := range g.width {
			px := working.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			if px.A == 0 {
				g.cells[y*g.width+x] = Air
				continue
			}
			key := [3]uint8{px.R, px.G, px.B}
			block, ok := memo[key]
			if !ok {
				block = m.best(ColorOf(px))
				memo[key] = block
			}
			g.cells[y*g.width+x] = block
		}
	}
	return g
}

type chunkResult struct {
	pos   int // index into matcher.cands
	score int
}

type scoreJob struct {
	sample Color
	lo, hi int
	out    *chunkResult
}

type matcher struct {
	cands   []Block
	refs    []Color
	metric  Metric
	bounds  [][2]int
	results []chunkResult
	jobs    chan scoreJob
	wg      sync.WaitGroup
}

func newMatcher(palette *Palette, metric Metric, workers int) *matcher {
	cands := palette.Candidates()
	if len(cands) == 0 {
		panic("blockbuilder: palette has no colored blocks")
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(cands))

	m := &matcher{
		cands:  cands,
		refs:   make([]Color, len(cands)),
		metric: metric,
		jobs:   make(chan scoreJob, workers),
	}
	for i, b := range cands {
		m.refs[i], _ = palette.ReferenceColor(b)
	}
	// Contiguous chunks keep the lowest-index tie-break a simple ordered
	// reduction over chunk results.
	step := (len(cands) + workers - 1) / workers
	for lo := 0; lo < len(cands); lo += step {
		m.bounds = append(m.bounds, [2]int{lo, min(lo+step, len(cands))})
	}
	m.results = make([]chunkResult, len(m.bounds))

	for range workers {
		go m.work()
	}
	return m
}

func (m *matcher) work() {
	for job := range m.jobs {
		best := chunkResult{pos: -1, score: math.MaxInt}
		for i := job.lo; i < job.hi; i++ {
			s := truncate(m.metric(m.refs[i], job.sample))
			if s < best.score {
				best = chunkResult{pos: i, score: s}
			}
		}
		*job.out = best
		m.wg.Done()
	}
}

func (m *matcher) best(sample Color) Block {
	m.wg.Add(len(m.bounds))
	for i, r := range m.bounds {
		m.jobs <- scoreJob{sample: sample, lo: r[0], hi: r[1], out: &m.results[i]}
	}
	m.wg.Wait()

	best := m.results[0]
	for _, r := range m.results[1:] {
		if r.score < best.score {
			best = r
		}
	}
	return m.cands[best.pos]
}

func (m *matcher) close() {
	close(m.jobs)
}

// truncate floors a distance to whole metric units. NaN scores sort last.
func truncate(d float64) int {
	if math.IsNaN(d) || d >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Floor(d))
}
