package domain

// Role markers. They carry no data; they only make NetWeight, TareWeight
// and GrossWeight distinct types.
type (
	Net   struct{}
	Tare  struct{}
	Gross struct{}
)

func (Net) Label() string   { return "NetWeight" }
func (Tare) Label() string  { return "TareWeight" }
func (Gross) Label() string { return "GrossWeight" }

// WeightRole is satisfied by the three role markers only.
type WeightRole interface {
	Net | Tare | Gross
	Label() string
}

// RoleWeight is a validated Weight tagged with what it measures.
type RoleWeight[R WeightRole] struct {
	weight Weight
}

type (
	// Weight of the contents alone.
	NetWeight = RoleWeight[Net]
	// Weight of the empty packaging.
	TareWeight = RoleWeight[Tare]
	// Contents plus packaging.
	GrossWeight = RoleWeight[Gross]
)

func NewNetWeight(w Weight) NetWeight     { return NetWeight{weight: w} }
func NewTareWeight(w Weight) TareWeight   { return TareWeight{weight: w} }
func NewGrossWeight(w Weight) GrossWeight { return GrossWeight{weight: w} }

func (r RoleWeight[R]) Weight() Weight { return r.weight }

func (r RoleWeight[R]) Label() string {
	var role R
	return role.Label()
}

func (r RoleWeight[R]) Equal(other RoleWeight[R]) bool {
	return r.weight.Equal(other.weight)
}

// String renders the codec record "<Label>: <value> <unit>".
func (r RoleWeight[R]) String() string {
	return r.Label() + ": " + r.weight.String()
}
