package physics

import "math"

// Obstacle is a geometric primitive a particle collides with (spec
// §3 "Obstacle (tagged variant)"). Dispatch is by interface + type
// switch; see package doc in particle.go for the same rationale.
type Obstacle interface {
	// Name returns the obstacle's human-readable label.
	Name() string
	// NormalAt returns the unit outward normal at pos (toward the
	// pflag==true side, for ray-splittable obstacles).
	NormalAt(pos Vec2) Vec2
	// Distance returns a signed scalar: positive means pos is on the
	// correct side of the obstacle (negative: penetrated). PeriodicWall
	// inverts this convention (spec §4.F).
	Distance(pos Vec2) float64
	// CollisionTime returns the non-negative time until p next
	// contacts this obstacle, or +Inf if it never will.
	CollisionTime(p Particle) float64
}

// PFlagged is implemented by obstacles that carry a mutable
// propagation flag for ray-splitting (spec §3: Antidot, SplitterWall).
type PFlagged interface {
	Obstacle
	PFlag() bool
	SetPFlag(bool)
}

const geomEps = 1e-12

// --- InfiniteWall ---------------------------------------------------

// InfiniteWall is an infinite line obstacle; only its direction and a
// point on it matter for collision solving.
type InfiniteWall struct {
	OName       string
	Start, End  Vec2
	NormalVec   Vec2 // unit, points into the billiard interior
}

func (w *InfiniteWall) Name() string          { return w.OName }
func (w *InfiniteWall) NormalAt(Vec2) Vec2    { return w.NormalVec }
func (w *InfiniteWall) Distance(pos Vec2) float64 {
	return pos.Sub(w.Start).Dot(w.NormalVec)
}

// CollisionTime solves the straight/magnetic line intersection (spec
// §4.B "Straight x line (walls)" and "Magnetic x Disk/Wall").
func (w *InfiniteWall) CollisionTime(p Particle) float64 {
	switch pt := p.(type) {
	case *StraightParticle:
		return straightLineTime(pt.position, pt.velocity, w.Start, w.NormalVec)
	case *MagneticParticle:
		return magneticLineTime(pt, w.Start, w.NormalVec, nil)
	default:
		return math.Inf(1)
	}
}

func straightLineTime(pos, vel, start, normal Vec2) float64 {
	d := vel.Dot(normal)
	if d >= 0 {
		return math.Inf(1)
	}
	t := start.Sub(pos).Dot(normal) / d
	if t <= geomEps {
		return math.Inf(1)
	}
	return t
}

// segmentCheck reports whether pos lies within the finite wall's
// segment, parameterized by t in [0,1] along Start->End.
func segmentCheck(start, end, pos Vec2) bool {
	seg := end.Sub(start)
	segLenSq := seg.Dot(seg)
	if segLenSq == 0 {
		return true
	}
	t := pos.Sub(start).Dot(seg) / segLenSq
	return t >= -geomEps && t <= 1+geomEps
}

// --- FiniteWall -------------------------------------------------------

// FiniteWall is a wall segment; collision requires the intersection
// point to fall within [Start, End].
type FiniteWall struct {
	OName      string
	Start, End Vec2
	NormalVec  Vec2
	IsDoor     bool // marks an escape boundary
}

func (w *FiniteWall) Name() string       { return w.OName }
func (w *FiniteWall) NormalAt(Vec2) Vec2 { return w.NormalVec }
func (w *FiniteWall) Distance(pos Vec2) float64 {
	return pos.Sub(w.Start).Dot(w.NormalVec)
}

func (w *FiniteWall) CollisionTime(p Particle) float64 {
	switch pt := p.(type) {
	case *StraightParticle:
		t := straightLineTime(pt.position, pt.velocity, w.Start, w.NormalVec)
		if math.IsInf(t, 1) {
			return t
		}
		hit := pt.position.Add(pt.velocity.Scale(t))
		if !segmentCheck(w.Start, w.End, hit) {
			return math.Inf(1)
		}
		return t
	case *MagneticParticle:
		return magneticLineTime(pt, w.Start, w.NormalVec, func(hit Vec2) bool {
			return segmentCheck(w.Start, w.End, hit)
		})
	default:
		return math.Inf(1)
	}
}

// --- PeriodicWall -----------------------------------------------------

// PeriodicWall teleports the particle by NormalVec on collision; its
// Distance sign convention is inverted relative to standard obstacles
// (spec §4.F).
type PeriodicWall struct {
	OName      string
	Start, End Vec2
	NormalVec  Vec2 // length equals the translation applied on collision
}

func (w *PeriodicWall) Name() string       { return w.OName }
func (w *PeriodicWall) NormalAt(Vec2) Vec2 { return w.NormalVec.Normalize() }
func (w *PeriodicWall) Distance(pos Vec2) float64 {
	return pos.Sub(w.Start).Dot(w.NormalVec.Normalize())
}

func (w *PeriodicWall) CollisionTime(p Particle) float64 {
	n := w.NormalVec.Normalize()
	switch pt := p.(type) {
	case *StraightParticle:
		return straightLineTime(pt.position, pt.velocity, w.Start, n)
	case *MagneticParticle:
		return magneticLineTime(pt, w.Start, n, nil)
	default:
		return math.Inf(1)
	}
}

// --- RandomWall ---------------------------------------------------

// RandomWall behaves like InfiniteWall for collision-time purposes;
// its resolution (random_specular!) differs, see resolve.go.
type RandomWall struct {
	OName      string
	Start, End Vec2
	NormalVec  Vec2
}

func (w *RandomWall) Name() string       { return w.OName }
func (w *RandomWall) NormalAt(Vec2) Vec2 { return w.NormalVec }
func (w *RandomWall) Distance(pos Vec2) float64 {
	return pos.Sub(w.Start).Dot(w.NormalVec)
}
func (w *RandomWall) CollisionTime(p Particle) float64 {
	switch pt := p.(type) {
	case *StraightParticle:
		return straightLineTime(pt.position, pt.velocity, w.Start, w.NormalVec)
	case *MagneticParticle:
		return magneticLineTime(pt, w.Start, w.NormalVec, nil)
	default:
		return math.Inf(1)
	}
}

// --- Disk ---------------------------------------------------------

// Disk is a circular obstacle.
type Disk struct {
	OName  string
	Center Vec2
	Radius float64
}

func (d *Disk) Name() string { return d.OName }
func (d *Disk) NormalAt(pos Vec2) Vec2 {
	return pos.Sub(d.Center).Normalize()
}
func (d *Disk) Distance(pos Vec2) float64 {
	return pos.Sub(d.Center).Length() - d.Radius
}

func (d *Disk) CollisionTime(p Particle) float64 {
	switch pt := p.(type) {
	case *StraightParticle:
		return straightDiskTime(pt.position, pt.velocity, d.Center, d.Radius)
	case *MagneticParticle:
		return magneticCircleTime(pt, d.Center, d.Radius, nil)
	default:
		return math.Inf(1)
	}
}

// straightDiskTime solves |pos + t*vel - center|^2 = r^2 (spec §4.B
// "Straight x Disk").
func straightDiskTime(pos, vel, center Vec2, radius float64) float64 {
	rel := pos.Sub(center)
	b := 2 * vel.Dot(rel)
	c := rel.Dot(rel) - radius*radius
	disc := b*b - 4*c
	if disc < 0 {
		return math.Inf(1)
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / 2
	t2 := (-b + sq) / 2
	best := math.Inf(1)
	if t1 > geomEps && t1 < best {
		best = t1
	}
	if t2 > geomEps && t2 < best {
		best = t2
	}
	return best
}

// --- RandomDisk -----------------------------------------------------

// RandomDisk behaves like Disk for collision time; random_specular!
// replaces specular! on resolution.
type RandomDisk struct {
	OName  string
	Center Vec2
	Radius float64
}

func (d *RandomDisk) Name() string { return d.OName }
func (d *RandomDisk) NormalAt(pos Vec2) Vec2 {
	return pos.Sub(d.Center).Normalize()
}
func (d *RandomDisk) Distance(pos Vec2) float64 {
	return pos.Sub(d.Center).Length() - d.Radius
}
func (d *RandomDisk) CollisionTime(p Particle) float64 {
	switch pt := p.(type) {
	case *StraightParticle:
		return straightDiskTime(pt.position, pt.velocity, d.Center, d.Radius)
	case *MagneticParticle:
		return magneticCircleTime(pt, d.Center, d.Radius, nil)
	default:
		return math.Inf(1)
	}
}

// --- Semicircle -----------------------------------------------------

// Semicircle is a Disk restricted to the half-plane defined by
// FaceDir (a unit vector).
type Semicircle struct {
	OName   string
	Center  Vec2
	Radius  float64
	FaceDir Vec2 // unit vector
}

func (s *Semicircle) Name() string { return s.OName }
func (s *Semicircle) NormalAt(pos Vec2) Vec2 {
	return pos.Sub(s.Center).Normalize()
}
func (s *Semicircle) Distance(pos Vec2) float64 {
	return pos.Sub(s.Center).Length() - s.Radius
}

func (s *Semicircle) inHalfPlane(pos Vec2) bool {
	return pos.Sub(s.Center).Dot(s.FaceDir) >= -geomEps
}

func (s *Semicircle) CollisionTime(p Particle) float64 {
	switch pt := p.(type) {
	case *StraightParticle:
		// As Disk, but require the hit point in the half-plane;
		// try both quadratic roots in ascending order.
		rel := pt.position.Sub(s.Center)
		b := 2 * pt.velocity.Dot(rel)
		c := rel.Dot(rel) - s.Radius*s.Radius
		disc := b*b - 4*c
		if disc < 0 {
			return math.Inf(1)
		}
		sq := math.Sqrt(disc)
		roots := [2]float64{(-b - sq) / 2, (-b + sq) / 2}
		if roots[0] > roots[1] {
			roots[0], roots[1] = roots[1], roots[0]
		}
		for _, t := range roots {
			if t <= geomEps {
				continue
			}
			hit := pt.position.Add(pt.velocity.Scale(t))
			if s.inHalfPlane(hit) {
				return t
			}
		}
		return math.Inf(1)
	case *MagneticParticle:
		return magneticCircleTime(pt, s.Center, s.Radius, s.inHalfPlane)
	default:
		return math.Inf(1)
	}
}

// --- Antidot --------------------------------------------------------

// Antidot is a ray-splittable circular obstacle: geometry of a Disk
// plus a mutable pflag tracking which side the particle currently
// occupies (spec §3).
type Antidot struct {
	OName  string
	Center Vec2
	Radius float64
	Flag   bool
}

func (a *Antidot) Name() string { return a.OName }
func (a *Antidot) PFlag() bool  { return a.Flag }
func (a *Antidot) SetPFlag(v bool) {
	a.Flag = v
}
func (a *Antidot) NormalAt(pos Vec2) Vec2 {
	n := pos.Sub(a.Center).Normalize()
	if !a.Flag {
		return n.Scale(-1)
	}
	return n
}
func (a *Antidot) Distance(pos Vec2) float64 {
	d := pos.Sub(a.Center).Length() - a.Radius
	if !a.Flag {
		return -d
	}
	return d
}
func (a *Antidot) CollisionTime(p Particle) float64 {
	switch pt := p.(type) {
	case *StraightParticle:
		return straightDiskTime(pt.position, pt.velocity, a.Center, a.Radius)
	case *MagneticParticle:
		return magneticCircleTime(pt, a.Center, a.Radius, nil)
	default:
		return math.Inf(1)
	}
}

// --- SplitterWall -----------------------------------------------------

// SplitterWall is a ray-splittable straight wall, geometry of an
// InfiniteWall plus a mutable pflag.
type SplitterWall struct {
	OName     string
	Start, End Vec2
	NormalVec Vec2
	Flag      bool
}

func (w *SplitterWall) Name() string { return w.OName }
func (w *SplitterWall) PFlag() bool  { return w.Flag }
func (w *SplitterWall) SetPFlag(v bool) {
	w.Flag = v
}
func (w *SplitterWall) NormalAt(Vec2) Vec2 {
	if !w.Flag {
		return w.NormalVec.Scale(-1)
	}
	return w.NormalVec
}
func (w *SplitterWall) Distance(pos Vec2) float64 {
	d := pos.Sub(w.Start).Dot(w.NormalVec)
	if !w.Flag {
		return -d
	}
	return d
}
func (w *SplitterWall) CollisionTime(p Particle) float64 {
	n := w.NormalVec
	if !w.Flag {
		n = n.Scale(-1)
	}
	switch pt := p.(type) {
	case *StraightParticle:
		return straightLineTime(pt.position, pt.velocity, w.Start, n)
	case *MagneticParticle:
		return magneticLineTime(pt, w.Start, n, nil)
	default:
		return math.Inf(1)
	}
}
