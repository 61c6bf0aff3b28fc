package acttrie

// fullCapacity is the sentinel capacity value meaning "directly-indexed,
// 256-wide" rather than a sorted sparse tier.
const fullCapacity = -1

// tier describes one capacity rung of a SizePolicy's ladder: the number
// of children a compressed node of this tier can hold, the capacity to
// promote to on overflow, the capacity to demote to once the child count
// falls at or below downThreshold, and that threshold itself.
type tier struct {
	capacity      int
	up            int
	down          int
	downThreshold int
}

// SizePolicy is a parameter table governing how compressed interior
// nodes grow and shrink as children are added and removed. Three
// policies are provided (SmallPolicy, MediumPolicy and FastPolicy),
// differing only in their numeric tiers.
type SizePolicy struct {
	name    string
	tiers   []tier
	initial int
}

func (p *SizePolicy) tierFor(capacity int) tier {
	for _, t := range p.tiers {
		if t.capacity == capacity {
			return t
		}
	}
	panic("acttrie: capacity not part of size policy " + p.name)
}

// up returns the capacity a node of the given capacity should grow to
// once an insertion would overflow it. fullCapacity means "promote to a
// directly-indexed node".
func (p *SizePolicy) up(capacity int) int { return p.tierFor(capacity).up }

// down returns the capacity a node should shrink to once its child
// count falls at or below downThreshold(capacity). A value equal to
// capacity itself means there is no smaller tier to shrink to.
func (p *SizePolicy) down(capacity int) int { return p.tierFor(capacity).down }

// downThreshold returns the child count at or below which a node of the
// given capacity should shrink.
func (p *SizePolicy) downThreshold(capacity int) int { return p.tierFor(capacity).downThreshold }

// Initial returns the capacity a freshly allocated compressed interior
// node should start at.
func (p *SizePolicy) Initial() int { return p.initial }

// Name identifies the policy, e.g. for diagnostics.
func (p *SizePolicy) Name() string { return p.name }

// SmallPolicy favors memory density over branching speed: capacities
// {2,4,8,16,32,full}, starting at 2. Good default for tries with many
// sparse branches and a premium on per-node memory.
var SmallPolicy = &SizePolicy{
	name: "small",
	tiers: []tier{
		{capacity: 2, up: 4, down: 2, downThreshold: 0},
		{capacity: 4, up: 8, down: 2, downThreshold: 1},
		{capacity: 8, up: 16, down: 4, downThreshold: 2},
		{capacity: 16, up: 32, down: 8, downThreshold: 4},
		{capacity: 32, up: fullCapacity, down: 16, downThreshold: 8},
		{capacity: fullCapacity, up: fullCapacity, down: 32, downThreshold: 16},
	},
	initial: 2,
}

// MediumPolicy trades a little memory for fewer resize operations:
// capacities {4,16,full}, starting at 4.
var MediumPolicy = &SizePolicy{
	name: "medium",
	tiers: []tier{
		{capacity: 4, up: 16, down: 4, downThreshold: 0},
		{capacity: 16, up: fullCapacity, down: 4, downThreshold: 2},
		{capacity: fullCapacity, up: fullCapacity, down: 16, downThreshold: 8},
	},
	initial: 4,
}

// FastPolicy minimizes tier transitions at the cost of memory:
// capacities {8,full}, starting at 8.
var FastPolicy = &SizePolicy{
	name: "fast",
	tiers: []tier{
		{capacity: 8, up: fullCapacity, down: 8, downThreshold: 0},
		{capacity: fullCapacity, up: fullCapacity, down: 8, downThreshold: 4},
	},
	initial: 8,
}
